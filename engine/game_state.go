package engine

import (
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/core"
)

// Tuning holds the per-frame speeds and the heuristic knobs of one match
type Tuning struct {
	PaddleSpeed float32
	BallSpeedX  float32
	BallSpeedY  float32

	// AIEngageX is the ball offset below which the left paddle reacts
	AIEngageX float32
	// AIReactionFactor scales BallSpeedY into the left paddle step
	AIReactionFactor float32
	// AIClampBottom keeps the left paddle above the bottom wall; off by default to match the upward-only clamp
	AIClampBottom bool

	// CollisionNudge adds an extra BallSpeedX push on the paddle-hit frame,
	// on top of the regular integration step
	CollisionNudge bool
}

// DefaultTuning returns the stock speeds and heuristic
func DefaultTuning() Tuning {
	return Tuning{
		PaddleSpeed:      constants.PaddleSpeed,
		BallSpeedX:       constants.BallSpeedX,
		BallSpeedY:       constants.BallSpeedY,
		AIEngageX:        constants.AIEngageX,
		AIReactionFactor: constants.AIReactionFactor,
		AIClampBottom:    false,
		CollisionNudge:   true,
	}
}

// State is the whole mutable game. Blocks are base positions and never change;
// motion lives in the offsets and direction fields
type State struct {
	LPaddle core.Block
	RPaddle core.Block
	Ball    core.Block

	LOffsetY    float32
	ROffsetY    float32
	BallOffsetX float32
	BallOffsetY float32

	DirX core.Direction
	DirY core.Direction

	Tuning Tuning

	// Frame counts completed Update calls
	Frame uint64
}

// NewState creates a state with the stock court geometry and zeroed offsets
func NewState(tuning Tuning) *State {
	return &State{
		LPaddle: core.Block{
			X: constants.LeftPaddleX, Y: constants.PaddleBaseY,
			Width: constants.PaddleWidth, Height: constants.PaddleHeight,
		},
		RPaddle: core.Block{
			X: constants.RightPaddleX, Y: constants.PaddleBaseY,
			Width: constants.PaddleWidth, Height: constants.PaddleHeight,
		},
		Ball: core.Block{
			X: constants.BallBaseX, Y: constants.BallBaseY,
			Width: constants.BallSize, Height: constants.BallSize,
		},
		Tuning: tuning,
	}
}

// LeftPaddle returns the left paddle at its current position
func (s *State) LeftPaddle() core.Block { return s.LPaddle.Translate(0, s.LOffsetY) }

// RightPaddle returns the right paddle at its current position
func (s *State) RightPaddle() core.Block { return s.RPaddle.Translate(0, s.ROffsetY) }

// BallAt returns the ball at its current position
func (s *State) BallAt() core.Block { return s.Ball.Translate(s.BallOffsetX, s.BallOffsetY) }

// Blocks returns the base blocks in draw order: left paddle, right paddle, ball
func (s *State) Blocks() []core.Block {
	return []core.Block{s.LPaddle, s.RPaddle, s.Ball}
}
