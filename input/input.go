// Package input defines the per-tick input snapshot the simulation consumes
// and the sources that produce it.
package input

// Snapshot is the input state polled once per tick. Left and Right are held
// keys; Jump, Quit and Restart are edge-triggered presses.
type Snapshot struct {
	Left    bool
	Right   bool
	Jump    bool
	Quit    bool
	Restart bool
}

// MoveX folds the held directions into -1, 0 or 1.
func (s Snapshot) MoveX() float64 {
	var x float64
	if s.Left {
		x--
	}
	if s.Right {
		x++
	}
	return x
}

// Source is polled exactly once per tick.
type Source interface {
	Poll() Snapshot
}

// SourceFunc adapts a function to Source.
type SourceFunc func() Snapshot

func (f SourceFunc) Poll() Snapshot { return f() }

// Script replays a fixed sequence of snapshots, then reports no input.
type Script struct {
	frames []Snapshot
	next   int
}

func NewScript(frames ...Snapshot) *Script {
	return &Script{frames: frames}
}

func (s *Script) Poll() Snapshot {
	if s == nil || s.next >= len(s.frames) {
		return Snapshot{}
	}
	f := s.frames[s.next]
	s.next++
	return f
}

// Done reports whether every scripted frame has been consumed.
func (s *Script) Done() bool {
	return s == nil || s.next >= len(s.frames)
}

// Repeat returns n copies of snap, for building scripts.
func Repeat(snap Snapshot, n int) []Snapshot {
	out := make([]Snapshot, n)
	for i := range out {
		out[i] = snap
	}
	return out
}
