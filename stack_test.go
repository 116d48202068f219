package renderstate

import "testing"

func TestNewStack(t *testing.T) {
	st := NewStack(640, 480)

	if got := st.SaveCount(); got != 1 {
		t.Errorf("SaveCount() = %d, want 1", got)
	}
	root := st.Current()
	if root.Previous() != nil {
		t.Error("root snapshot has a parent")
	}
	if got, want := root.Viewport(), RectLTRB(0, 0, 640, 480); got != want {
		t.Errorf("Viewport() = %v, want %v", got, want)
	}
	if got, want := root.ClipRect(), RectLTRB(0, 0, 640, 480); got != want {
		t.Errorf("ClipRect() = %v, want %v", got, want)
	}
	if root.SurfaceHeight() != 480 {
		t.Errorf("SurfaceHeight() = %v, want 480", root.SurfaceHeight())
	}
}

func TestStackSaveReturnsPriorCount(t *testing.T) {
	st := NewStack(100, 100)

	if got := st.Save(SaveAll); got != 1 {
		t.Errorf("first Save() = %d, want 1", got)
	}
	if got := st.Save(SaveAll); got != 2 {
		t.Errorf("second Save() = %d, want 2", got)
	}
	if got := st.SaveCount(); got != 3 {
		t.Errorf("SaveCount() = %d, want 3", got)
	}
}

func TestStackRestore(t *testing.T) {
	st := NewStack(100, 100)
	root := st.Current()

	st.Save(SaveAll)
	child := st.Current()
	if child == root {
		t.Fatal("Save() did not push a new snapshot")
	}

	st.Restore()
	if st.Current() != root {
		t.Error("Restore() did not resume at the parent snapshot")
	}
	if got := st.SaveCount(); got != 1 {
		t.Errorf("SaveCount() = %d, want 1", got)
	}
}

func TestStackRestoreAtBottomIsNoOp(t *testing.T) {
	st := NewStack(100, 100)
	root := st.Current()

	st.Restore()
	st.Restore()

	if st.Current() != root {
		t.Error("Restore() at the bottom replaced the root snapshot")
	}
	if got := st.SaveCount(); got != 1 {
		t.Errorf("SaveCount() = %d, want 1", got)
	}
}

func TestStackRestoreToCount(t *testing.T) {
	st := NewStack(100, 100)
	root := st.Current()

	count := st.Save(SaveAll)
	st.Save(SaveAll)
	st.Save(SaveAll)

	st.RestoreToCount(count)
	if st.Current() != root {
		t.Error("RestoreToCount() did not unwind back to the root")
	}
	if got := st.SaveCount(); got != 1 {
		t.Errorf("SaveCount() = %d, want 1", got)
	}
}

func TestStackRestoreToCountClamps(t *testing.T) {
	st := NewStack(100, 100)
	root := st.Current()
	st.Save(SaveAll)

	// Counts below the bottom unwind to the bottom, never past it.
	st.RestoreToCount(0)
	if st.Current() != root {
		t.Error("RestoreToCount(0) did not stop at the root")
	}
	if got := st.SaveCount(); got != 1 {
		t.Errorf("SaveCount() = %d, want 1", got)
	}

	// Counts at or above the current level are no-ops.
	st.Save(SaveAll)
	st.RestoreToCount(5)
	if got := st.SaveCount(); got != 2 {
		t.Errorf("SaveCount() after RestoreToCount(5) = %d, want 2", got)
	}
}

func TestStackPartialUnwind(t *testing.T) {
	st := NewStack(100, 100)

	st.Save(SaveAll)
	st.Current().Clip(10, 10, 90, 90, ClipIntersect)
	mid := st.Current()
	count := st.Save(SaveAll)
	st.Save(SaveAll)

	st.RestoreToCount(count)
	if st.Current() != mid {
		t.Error("RestoreToCount() did not stop at the middle save level")
	}
	if got, want := st.Current().ClipRect(), RectLTRB(10, 10, 90, 90); got != want {
		t.Errorf("ClipRect() = %v, want %v", got, want)
	}
}
