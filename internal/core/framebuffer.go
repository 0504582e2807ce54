package core

// FrameBuffer is the current/previous grid pair used for diff rendering.
// Current is what the next frame should look like; Previous is what the
// terminal is believed to show. Both always share the same dimensions.
type FrameBuffer struct {
	Current  *Grid
	Previous *Grid
}

// NewFrameBuffer allocates a pair of blank grids.
func NewFrameBuffer(rows, cols int) (*FrameBuffer, error) {
	fb := &FrameBuffer{}
	if err := fb.Resize(rows, cols); err != nil {
		return nil, err
	}
	return fb, nil
}

// Rows returns the buffer height.
func (f *FrameBuffer) Rows() int {
	if f.Current == nil {
		return 0
	}
	return f.Current.Rows()
}

// Cols returns the buffer width.
func (f *FrameBuffer) Cols() int {
	if f.Current == nil {
		return 0
	}
	return f.Current.Cols()
}

// Resize reallocates both grids, discarding their content.
// On failure the existing grids are left untouched.
func (f *FrameBuffer) Resize(rows, cols int) error {
	cur, err := NewGrid(rows, cols)
	if err != nil {
		return err
	}
	prev, err := NewGrid(rows, cols)
	if err != nil {
		return err
	}
	f.Current = cur
	f.Previous = prev
	return nil
}

// Sync makes Previous an exact copy of Current.
func (f *FrameBuffer) Sync() {
	copy(f.Previous.cells, f.Current.cells)
}

// Converged reports whether Previous already matches Current.
func (f *FrameBuffer) Converged() bool {
	return f.Current.Equal(f.Previous)
}
