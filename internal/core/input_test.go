package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Clear should drop actions")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.LastPointer(); ok {
		t.Error("empty frame should have no pointer event")
	}

	f.AddPointer(PointerEvent{Kind: PointerPress, X: 3, Y: 4})
	f.AddPointer(PointerEvent{Kind: PointerDrag, X: 5, Y: 4})

	last, ok := f.LastPointer()
	if !ok || last.Kind != PointerDrag || last.X != 5 {
		t.Errorf("LastPointer() = %+v, %v", last, ok)
	}

	clone := f.Clone()
	f.Clear()
	if len(f.Pointer) != 0 {
		t.Error("Clear should drop pointer events")
	}
	if len(clone.Pointer) != 2 {
		t.Errorf("clone should keep its events, got %d", len(clone.Pointer))
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:     "None",
		ActionRotateCW: "RotateCW",
		ActionDelete:   "Delete",
		ActionConfirm:  "Confirm",
		Action(999):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
