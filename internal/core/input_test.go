package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionFire, ActionSelect2)

	if !f.Has(ActionFire) || !f.Has(ActionSelect2) {
		t.Errorf("NewInputFrame() should contain its initial actions, got %v", f.Actions)
	}
	if f.Has(ActionDeploy) {
		t.Error("Has(ActionDeploy) = true, expected false")
	}

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Empty() after Clear = false, expected true")
	}
	if !clone.Has(ActionFire) {
		t.Error("Clone should not share state with the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionFire) {
		t.Error("zero InputFrame should have no actions")
	}
	if !f.Empty() {
		t.Error("zero InputFrame should be empty")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set() on zero InputFrame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionFire, "Fire"},
		{ActionSelect4, "Select4"},
		{ActionKnowledge, "Knowledge"},
		{ActionPause, "Pause"},
		{Action(999), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
