package pullzoom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sinkLog records dispatched samples.
type sinkLog struct {
	samples []Sample
}

func (s *sinkLog) Dispatch(smp Sample) bool {
	s.samples = append(s.samples, smp)
	return true
}

func TestPollerInjectDrag(t *testing.T) {
	sink := &sinkLog{}
	p := NewPoller(sink)

	// Drag from (10,10) to (10,50) over 5 frames:
	// press, moves to 20, 30, 40, release at 50.
	p.InjectDrag(10, 10, 10, 50, 5)
	if p.Pending() != 5 {
		t.Fatalf("expected 5 queued samples, got %d", p.Pending())
	}
	for i := 0; i < 5; i++ {
		p.Update()
		if len(sink.samples) != i+1 {
			t.Fatalf("frame %d: expected one sample per frame, got %d total", i, len(sink.samples))
		}
	}

	want := []Sample{
		{Action: ActionDown, X: 10, Y: 10},
		{Action: ActionMove, X: 10, Y: 20},
		{Action: ActionMove, X: 10, Y: 30},
		{Action: ActionMove, X: 10, Y: 40},
		{Action: ActionUp, X: 10, Y: 50},
	}
	if diff := cmp.Diff(want, sink.samples); diff != "" {
		t.Errorf("samples (-want +got):\n%s", diff)
	}
	if p.down {
		t.Error("pointer should be up after the release")
	}
}

func TestPollerInjectDragMinimumFrames(t *testing.T) {
	p := NewPoller(nil)
	p.InjectDrag(0, 0, 100, 100, 1)
	if p.Pending() != 2 {
		t.Errorf("expected press + release, got %d samples", p.Pending())
	}
}

func TestPollerInjectCancel(t *testing.T) {
	sink := &sinkLog{}
	p := NewPoller(sink)
	p.InjectPress(5, 5)
	p.InjectCancel(5, 5)
	p.Update()
	if !p.down {
		t.Error("pointer should be down after the press")
	}
	p.Update()
	if p.down {
		t.Error("pointer should be up after the cancel")
	}
	if got := sink.samples[1].Action; got != ActionCancel {
		t.Errorf("second sample = %v, want cancel", got)
	}
}

func TestPollerProcessPointer(t *testing.T) {
	sink := &sinkLog{}
	p := NewPoller(sink)

	p.processPointer(1, 10, 10, true)
	p.processPointer(1, 10, 10, true) // held still: no sample
	p.processPointer(1, 10, 30, true)
	p.processPointer(1, 10, 30, false)
	p.processPointer(1, 10, 30, false) // hover: no sample

	want := []Sample{
		{Action: ActionDown, X: 10, Y: 10, PointerID: 1},
		{Action: ActionMove, X: 10, Y: 30, PointerID: 1},
		{Action: ActionUp, X: 10, Y: 30, PointerID: 1},
	}
	if diff := cmp.Diff(want, sink.samples); diff != "" {
		t.Errorf("samples (-want +got):\n%s", diff)
	}
}

func TestPollerDrivesController(t *testing.T) {
	c, r := newTestController(ModelHeader, 8)
	p := NewPoller(NewDispatcher(c, nil))

	p.InjectPress(100, 100)
	p.InjectMove(100, 140)
	p.InjectMove(100, 180)
	p.InjectRelease(100, 180)
	for p.Pending() > 0 {
		p.Update()
	}

	want := []string{"start", "apply -32", "zooming -32", "snap", "end -32"}
	if diff := cmp.Diff(want, r.events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}
