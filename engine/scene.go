package engine

import "github.com/lixenwraith/pong/render"

// Scene returns the frame's draw calls, in the vertex order of Blocks
func (s *State) Scene() render.Scene {
	return render.Scene{
		render.BlockCall(0, 0, s.LOffsetY),
		render.BlockCall(1, 0, s.ROffsetY),
		render.BlockCall(2, s.BallOffsetX, s.BallOffsetY),
	}
}
