package pullzoom

import "testing"

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "press", "x": 100, "y": 100},
			{"action": "move", "x": 100, "y": 140},
			{"action": "wait", "frames": 3},
			{"action": "release", "x": 100, "y": 140}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "move" || runner.steps[1].Y != 140 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "fling"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptRunnerPull(t *testing.T) {
	c, r := newTestController(ModelHeader, 8)
	p := NewPoller(NewDispatcher(c, nil))

	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 100, "fromY": 100, "toX": 100, "toY": 180, "frames": 3},
		{"action": "wait", "frames": 2}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// drag: 3 frames of samples; wait: 2 frames. Allow a few extra frames.
	for i := 0; i < 10 && !runner.Done(); i++ {
		runner.Step(p)
		if p.Pending() > 0 {
			p.Update()
		}
	}
	if !runner.Done() {
		t.Fatal("runner should be done")
	}
	if p.Pending() != 0 {
		t.Errorf("expected an empty queue, got %d", p.Pending())
	}
	// press (100,100), move (100,140) claims, release: captured but never
	// moved, so only the start fires.
	if len(r.events) != 1 || r.events[0] != "start" {
		t.Errorf("events = %v, want [start]", r.events)
	}
}

func TestScriptRunnerWait(t *testing.T) {
	p := NewPoller(nil)
	runner, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	frames := 0
	for !runner.Done() && frames < 10 {
		runner.Step(p)
		frames++
	}
	// 3 wait frames plus the frame that observes the end.
	if frames != 4 {
		t.Errorf("runner finished after %d frames, want 4", frames)
	}
}
