package input

// Source produces one Snapshot per outer-loop iteration.
// Implementations decode backend events (keyboard state, terminal keys)
// and must not block: Poll returns the current intent immediately.
type Source interface {
	Poll() Snapshot
}

// SourceFunc adapts a plain function to a Source
type SourceFunc func() Snapshot

func (f SourceFunc) Poll() Snapshot { return f() }
