package pullzoom

import (
	"log"
	"os"
)

// NewStderrLogger returns the logger used by SetDebugMode: "[pullzoom]"
// prefixed lines on stderr with microsecond timestamps.
func NewStderrLogger() *log.Logger {
	return log.New(os.Stderr, "[pullzoom] ", log.Ltime|log.Lmicroseconds)
}

// SetLogger routes transition traces to l. nil disables them.
func (c *Controller) SetLogger(l *log.Logger) {
	c.logger = l
}

// SetDebugMode toggles transition traces on stderr.
func (c *Controller) SetDebugMode(enabled bool) {
	if enabled {
		c.logger = NewStderrLogger()
	} else {
		c.logger = nil
	}
}

// debugf prints a trace line when a logger is set.
func (c *Controller) debugf(format string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Printf(format, args...)
}
