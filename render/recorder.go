package render

// Recorder is a Surface that keeps the last presented frame in memory.
type Recorder struct {
	Frames int

	pending   []Command
	presented []Command
}

func (r *Recorder) Clear() {
	r.pending = r.pending[:0]
}

func (r *Recorder) Draw(cmd Command) {
	r.pending = append(r.pending, cmd)
}

func (r *Recorder) Present() error {
	r.presented = append(r.presented[:0], r.pending...)
	r.Frames++
	return nil
}

// Commands returns the draw commands of the last presented frame.
func (r *Recorder) Commands() []Command {
	return r.presented
}

// Count returns how many commands of the given style the last frame held.
func (r *Recorder) Count(s Style) int {
	n := 0
	for _, c := range r.presented {
		if c.Style == s {
			n++
		}
	}
	return n
}
