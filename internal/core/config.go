package core

import "time"

// RuntimeConfig contains the timing and screen settings the animation loop runs with.
type RuntimeConfig struct {
	ScreenW    int           // Initial screen width in characters
	ScreenH    int           // Initial screen height in characters
	FrameRate  int           // Target frames per second (default 60)
	ResizePoll time.Duration // How often the terminal size is re-read
	MaxFrames  int           // Stop after this many frames (0 = run until stopped)
	AltScreen  bool          // Use the alternate screen buffer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		FrameRate:  60,
		ResizePoll: 250 * time.Millisecond,
		AltScreen:  true,
	}
}

// FrameInterval returns the target duration of a single frame.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.FrameRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
