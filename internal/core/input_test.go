package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionFlap) {
		t.Error("empty frame should not have Flap")
	}

	f.Set(ActionFlap)
	f.Set(ActionNone)

	if !f.Has(ActionFlap) {
		t.Error("frame should have Flap after Set")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone must never be recorded")
	}

	f.Clear()
	if f.Has(ActionFlap) {
		t.Error("Clear should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionConfirm.String() != "Confirm" || ActionFlap.String() != "Flap" || Action(99).String() != "Unknown" {
		t.Error("unexpected Action.String() output")
	}
}
