package engine

import (
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render"
)

// ScriptedPlatform is a headless Platform that replays a fixed intent sequence and records scenes.
// After the script runs out it reports IntentNone
type ScriptedPlatform struct {
	Script   []input.Intent
	Scenes   []render.Scene
	Presents int

	closed bool
	polls  int
}

// NewScriptedPlatform creates a platform that replays script one intent per frame
func NewScriptedPlatform(script ...input.Intent) *ScriptedPlatform {
	return &ScriptedPlatform{Script: script}
}

func (p *ScriptedPlatform) PollIntents() input.Intent {
	defer func() { p.polls++ }()
	if p.polls < len(p.Script) {
		return p.Script[p.polls]
	}
	return input.IntentNone
}

func (p *ScriptedPlatform) ShouldClose() bool { return p.closed }
func (p *ScriptedPlatform) RequestClose()     { p.closed = true }

func (p *ScriptedPlatform) Draw(scene render.Scene) {
	p.Scenes = append(p.Scenes, append(render.Scene(nil), scene...))
}

func (p *ScriptedPlatform) Present() { p.Presents++ }
