package config

import (
	"fmt"
	"time"

	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
)

// Backend names
const (
	BackendGL       = "gl"
	BackendTerminal = "terminal"
)

// Config is the full runtime configuration. Keys absent from a file keep their defaults
type Config struct {
	Backend  string         `toml:"backend" yaml:"backend"`
	Debug    bool           `toml:"debug" yaml:"debug"`
	Window   WindowConfig   `toml:"window" yaml:"window"`
	Shaders  ShaderConfig   `toml:"shaders" yaml:"shaders"`
	Physics  PhysicsConfig  `toml:"physics" yaml:"physics"`
	AI       AIConfig       `toml:"ai" yaml:"ai"`
	Terminal TerminalConfig `toml:"terminal" yaml:"terminal"`
}

type WindowConfig struct {
	Width     int    `toml:"width" yaml:"width"`
	Height    int    `toml:"height" yaml:"height"`
	Title     string `toml:"title" yaml:"title"`
	GLMajor   int    `toml:"gl_major" yaml:"gl_major"`
	GLMinor   int    `toml:"gl_minor" yaml:"gl_minor"`
	Resizable bool   `toml:"resizable" yaml:"resizable"`
	VSync     bool   `toml:"vsync" yaml:"vsync"`
}

// ShaderConfig holds shader source paths; empty uses the embedded sources
type ShaderConfig struct {
	Vertex   string `toml:"vertex" yaml:"vertex"`
	Fragment string `toml:"fragment" yaml:"fragment"`
}

type PhysicsConfig struct {
	PaddleSpeed    float32 `toml:"paddle_speed" yaml:"paddle_speed"`
	BallSpeedX     float32 `toml:"ball_speed_x" yaml:"ball_speed_x"`
	BallSpeedY     float32 `toml:"ball_speed_y" yaml:"ball_speed_y"`
	CollisionNudge bool    `toml:"collision_nudge" yaml:"collision_nudge"`
}

type AIConfig struct {
	EngageX        float32 `toml:"engage_x" yaml:"engage_x"`
	ReactionFactor float32 `toml:"reaction_factor" yaml:"reaction_factor"`
	ClampBottom    bool    `toml:"clamp_bottom" yaml:"clamp_bottom"`
}

type TerminalConfig struct {
	FrameIntervalMs int `toml:"frame_interval_ms" yaml:"frame_interval_ms"`
	KeyHoldMs       int `toml:"key_hold_ms" yaml:"key_hold_ms"`
}

// Default returns the stock configuration
func Default() Config {
	tuning := engine.DefaultTuning()
	return Config{
		Backend: BackendGL,
		Window: WindowConfig{
			Width:   constants.WindowWidth,
			Height:  constants.WindowHeight,
			Title:   constants.WindowTitle,
			GLMajor: constants.GLVersionMajor,
			GLMinor: constants.GLVersionMinor,
			VSync:   true,
		},
		Physics: PhysicsConfig{
			PaddleSpeed:    tuning.PaddleSpeed,
			BallSpeedX:     tuning.BallSpeedX,
			BallSpeedY:     tuning.BallSpeedY,
			CollisionNudge: tuning.CollisionNudge,
		},
		AI: AIConfig{
			EngageX:        tuning.AIEngageX,
			ReactionFactor: tuning.AIReactionFactor,
			ClampBottom:    tuning.AIClampBottom,
		},
		Terminal: TerminalConfig{
			FrameIntervalMs: int(constants.FrameUpdateInterval / time.Millisecond),
			KeyHoldMs:       int(constants.KeyHoldWindow / time.Millisecond),
		},
	}
}

// Validate checks values that can be changed after loading (flag overrides)
func (c Config) Validate() error {
	switch c.Backend {
	case BackendGL, BackendTerminal:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendGL, BackendTerminal)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Physics.PaddleSpeed <= 0 || c.Physics.BallSpeedX <= 0 || c.Physics.BallSpeedY <= 0 {
		return fmt.Errorf("speeds must be positive")
	}
	return nil
}

// Tuning converts the physics and AI sections into engine tuning
func (c Config) Tuning() engine.Tuning {
	return engine.Tuning{
		PaddleSpeed:      c.Physics.PaddleSpeed,
		BallSpeedX:       c.Physics.BallSpeedX,
		BallSpeedY:       c.Physics.BallSpeedY,
		AIEngageX:        c.AI.EngageX,
		AIReactionFactor: c.AI.ReactionFactor,
		AIClampBottom:    c.AI.ClampBottom,
		CollisionNudge:   c.Physics.CollisionNudge,
	}
}

func (c TerminalConfig) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMs) * time.Millisecond
}

func (c TerminalConfig) KeyHold() time.Duration {
	return time.Duration(c.KeyHoldMs) * time.Millisecond
}
