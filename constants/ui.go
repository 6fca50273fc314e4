package constants

import "time"

// Terminal backend timing
const (
	// FrameUpdateInterval is the terminal frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// KeyHoldWindow is how long a terminal key press counts as held.
	// Terminals report presses and auto-repeat, never releases.
	KeyHoldWindow = 120 * time.Millisecond

	// EventQueueSize bounds buffered terminal events between polls
	EventQueueSize = 256
)

// Terminal glyphs
const (
	BlockGlyph = '█'
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "pong.log"
)
