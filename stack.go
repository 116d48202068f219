package renderstate

// Stack is a convenience owner for the "current" snapshot pointer of
// one rendering context, with SkCanvas-style save counts.
//
// Snapshot itself exposes save and restore as pure handle operations
// (NewSnapshotOf and Previous); Stack layers the bookkeeping a renderer
// usually wants on top: a monotonically tracked save count and
// restore-to-count unwinding. The bottom snapshot is never popped.
//
// A Stack is tied to one rendering context and must be confined to the
// goroutine driving it; it performs no locking of its own.
type Stack struct {
	current   *Snapshot
	saveCount int
}

// NewStack creates a stack whose root snapshot covers a surface of the
// given size: viewport and clip are (0, 0, width, height).
func NewStack(width, height float64, opts ...Option) *Stack {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithViewport(width, height))
	all = append(all, opts...)

	return &Stack{
		current:   NewSnapshot(all...),
		saveCount: 1,
	}
}

// Save pushes a new save level deriving from the current one and
// returns the save count to pass to RestoreToCount to unwind back to
// the state before this call.
func (st *Stack) Save(flags SaveFlags) int {
	count := st.saveCount
	st.current = NewSnapshotOf(st.current, flags)
	st.saveCount++
	return count
}

// Restore pops the current save level, resuming at its parent.
// Restoring at the bottom of the stack is a no-op.
func (st *Stack) Restore() {
	if st.current.previous == nil {
		return
	}
	st.current = st.current.previous
	st.saveCount--
}

// RestoreToCount pops save levels until the save count returns to
// count. Counts below the bottom level restore to the bottom.
func (st *Stack) RestoreToCount(count int) {
	if count < 1 {
		count = 1
	}
	for st.saveCount > count && st.current.previous != nil {
		st.current = st.current.previous
		st.saveCount--
	}
}

// Current returns the snapshot drawing operations should consult.
func (st *Stack) Current() *Snapshot {
	return st.current
}

// SaveCount returns the number of save levels on the stack, 1 when only
// the bottom snapshot exists.
func (st *Stack) SaveCount() int {
	return st.saveCount
}
