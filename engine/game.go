package engine

import (
	"log"

	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render"
)

// Platform is a presentation backend: it owns the display, reports held keys and paces frames
type Platform interface {
	render.Renderer

	// PollIntents returns the intents held this frame
	PollIntents() input.Intent
	// ShouldClose reports a pending close request (window close button, Escape, terminal closed)
	ShouldClose() bool
	// RequestClose asks the backend to end the loop after the current frame
	RequestClose()
}

// Loop drives input, update, draw and present until the platform asks to close
type Loop struct {
	Platform Platform
	State    *State

	// FrameLimit stops the loop after that many frames; 0 runs until close
	FrameLimit uint64
}

// NewLoop creates an unlimited loop over the platform
func NewLoop(p Platform, s *State) *Loop {
	return &Loop{Platform: p, State: s}
}

// Run executes frames and returns how many completed
func (l *Loop) Run() uint64 {
	var frames uint64
	for !l.Platform.ShouldClose() {
		if l.FrameLimit > 0 && frames >= l.FrameLimit {
			break
		}
		l.Step()
		frames++
	}
	log.Printf("loop exit after %d frames (ball %.3f,%.3f)", frames, l.State.BallOffsetX, l.State.BallOffsetY)
	return frames
}

// Step runs a single frame
func (l *Loop) Step() {
	intent := l.Platform.PollIntents()
	if intent.Has(input.IntentQuit) {
		log.Printf("quit requested at frame %d", l.State.Frame)
		l.Platform.RequestClose()
	}

	l.State.ApplyInput(intent)
	l.State.Update()

	l.Platform.Draw(l.State.Scene())
	l.Platform.Present()
}
