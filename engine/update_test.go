package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/pong/core"
)

const epsilon = 1e-6

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

// TestUpdateFromServe verifies one frame from the starting position moves the ball by one step on each axis
func TestUpdateFromServe(t *testing.T) {
	s := NewState(DefaultTuning())
	s.Update()

	if !approx(s.BallOffsetX, 0.007) || !approx(s.BallOffsetY, 0.01) {
		t.Errorf("ball offset = (%v, %v), want (0.007, 0.01)", s.BallOffsetX, s.BallOffsetY)
	}
	if s.DirX != core.DirPositive || s.DirY != core.DirPositive {
		t.Errorf("directions changed: %v, %v", s.DirX, s.DirY)
	}
	if s.LOffsetY != 0 {
		t.Errorf("left paddle moved to %v with the ball inside its span", s.LOffsetY)
	}
	if s.Frame != 1 {
		t.Errorf("Frame = %d, want 1", s.Frame)
	}
}

func TestUpdateDeterministic(t *testing.T) {
	a := NewState(DefaultTuning())
	b := NewState(DefaultTuning())

	for i := 0; i < 2000; i++ {
		a.Update()
		b.Update()
	}

	if *a != *b {
		t.Errorf("states diverged:\n%+v\n%+v", *a, *b)
	}
}

func TestBounceWalls(t *testing.T) {
	tests := []struct {
		name    string
		offsetY float32
		dirY    core.Direction
		want    core.Direction
	}{
		{"inside court", 0.5, core.DirPositive, core.DirPositive},
		{"past top wall", 0.99, core.DirPositive, core.DirNegative},
		{"past bottom wall", -0.99, core.DirNegative, core.DirPositive},
		{"near top wall", 0.9, core.DirPositive, core.DirPositive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(DefaultTuning())
			s.BallOffsetY = tt.offsetY
			s.DirY = tt.dirY

			s.bounceWalls()

			if s.DirY != tt.want {
				t.Errorf("DirY = %v, want %v", s.DirY, tt.want)
			}
		})
	}
}

// TestCollideLeftAtPaddleFace places the ball's left edge exactly on the paddle's right edge
func TestCollideLeftAtPaddleFace(t *testing.T) {
	s := NewState(DefaultTuning())
	start := s.LPaddle.Right() - s.Ball.X
	s.BallOffsetX = start
	s.BallOffsetY = 0.1
	s.DirX = core.DirNegative

	if left, face := s.BallAt().Left(), s.LeftPaddle().Right(); left > face {
		t.Fatalf("ball left %v, paddle face %v: not touching", left, face)
	}

	s.collideLeft()

	if s.DirX != core.DirPositive {
		t.Errorf("DirX = %v, want positive after paddle hit", s.DirX)
	}
	if want := start + s.Tuning.BallSpeedX; s.BallOffsetX != want {
		t.Errorf("BallOffsetX = %v, want %v", s.BallOffsetX, want)
	}
}

func TestCollideLeftMissesOutsideSpan(t *testing.T) {
	s := NewState(DefaultTuning())
	s.BallOffsetX = -0.87
	s.BallOffsetY = 0.5
	s.DirX = core.DirNegative

	s.collideLeft()

	if s.DirX != core.DirNegative || s.BallOffsetX != -0.87 {
		t.Errorf("ball above the paddle was reflected: dir=%v x=%v", s.DirX, s.BallOffsetX)
	}
}

func TestCollideLeftFollowsPaddleOffset(t *testing.T) {
	s := NewState(DefaultTuning())
	s.LOffsetY = 0.4
	s.BallOffsetX = -0.87
	s.BallOffsetY = 0.5
	s.DirX = core.DirNegative

	s.collideLeft()

	if s.DirX != core.DirPositive {
		t.Error("ball inside the moved paddle span was not reflected")
	}
}

func TestCollideRight(t *testing.T) {
	s := NewState(DefaultTuning())
	s.BallOffsetX = 0.885 // right edge 0.905, past the paddle face at 0.9
	s.BallOffsetY = 0.1

	s.collideRight()

	if s.DirX != core.DirNegative {
		t.Errorf("DirX = %v, want negative", s.DirX)
	}
	if !approx(s.BallOffsetX, 0.885-0.007) {
		t.Errorf("BallOffsetX = %v, want nudge back by BallSpeedX", s.BallOffsetX)
	}
}

func TestCollisionNudgeDisabled(t *testing.T) {
	tuning := DefaultTuning()
	tuning.CollisionNudge = false
	s := NewState(tuning)
	s.BallOffsetX = 0.885
	s.BallOffsetY = 0.1

	s.Update()

	// Single step back after the flip, no extra push
	if !approx(s.BallOffsetX, 0.885-0.007) {
		t.Errorf("BallOffsetX = %v, want 0.878", s.BallOffsetX)
	}
}

func TestCollisionFrameDoubleStep(t *testing.T) {
	s := NewState(DefaultTuning())
	s.BallOffsetX = 0.885
	s.BallOffsetY = 0.1

	s.Update()

	if !approx(s.BallOffsetX, 0.885-2*0.007) {
		t.Errorf("BallOffsetX = %v, want nudge plus integration step", s.BallOffsetX)
	}
}

func TestResetIfOut(t *testing.T) {
	tests := []struct {
		name    string
		offsetX float32
	}{
		{"past right wall", 0.99},
		{"past left wall", -0.99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(DefaultTuning())
			s.BallOffsetX = tt.offsetX
			s.BallOffsetY = 0.6

			s.resetIfOut()

			if s.BallOffsetX != 0 || s.BallOffsetY != 0 {
				t.Errorf("offsets after reset = (%v, %v), want (0, 0)", s.BallOffsetX, s.BallOffsetY)
			}
			if s.DirX != core.DirNegative {
				t.Errorf("DirX = %v, want flipped", s.DirX)
			}
		})
	}
}

func TestResetServesFromCenter(t *testing.T) {
	s := NewState(DefaultTuning())
	s.BallOffsetX = 0.99
	s.BallOffsetY = 0.6 // above the right paddle, no save

	s.Update()

	if !approx(s.BallOffsetX, -0.007) || !approx(s.BallOffsetY, 0.01) {
		t.Errorf("ball after serve = (%v, %v), want (-0.007, 0.01)", s.BallOffsetX, s.BallOffsetY)
	}
}

func TestSteerAIUp(t *testing.T) {
	s := NewState(DefaultTuning())
	s.BallOffsetX = 0.69
	s.BallOffsetY = 0.5

	s.steerAI()

	if want := s.Tuning.BallSpeedY * s.Tuning.AIReactionFactor; s.LOffsetY != want {
		t.Errorf("LOffsetY = %v, want %v", s.LOffsetY, want)
	}
}

func TestSteerAIClampsAtTop(t *testing.T) {
	s := NewState(DefaultTuning())
	s.LOffsetY = 0.795
	s.BallOffsetX = 0.69
	s.BallOffsetY = 0.95

	s.steerAI()

	if want := 1 - s.LPaddle.Height; !approx(s.LOffsetY, want) {
		t.Errorf("LOffsetY = %v, want clamp at %v", s.LOffsetY, want)
	}
	if s.LeftPaddle().Top() > 1 {
		t.Errorf("paddle top %v above the wall", s.LeftPaddle().Top())
	}
}

func TestSteerAIIdleOnFarSide(t *testing.T) {
	s := NewState(DefaultTuning())
	s.BallOffsetX = 0.75
	s.BallOffsetY = 0.5

	s.steerAI()

	if s.LOffsetY != 0 {
		t.Errorf("LOffsetY = %v, paddle moved with ball out of reach", s.LOffsetY)
	}
}

func TestSteerAIDown(t *testing.T) {
	tests := []struct {
		name        string
		clampBottom bool
		want        float32
	}{
		{"unclamped", false, -0.995 - 0.0095},
		{"clamped", true, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tuning.AIClampBottom = tt.clampBottom
			s := NewState(tuning)
			s.LOffsetY = -0.995
			s.BallOffsetX = -0.5
			s.BallOffsetY = -0.999

			s.steerAI()

			if !approx(s.LOffsetY, tt.want) {
				t.Errorf("LOffsetY = %v, want %v", s.LOffsetY, tt.want)
			}
		})
	}
}

func BenchmarkUpdate(b *testing.B) {
	s := NewState(DefaultTuning())
	for i := 0; i < b.N; i++ {
		s.Update()
	}
}
