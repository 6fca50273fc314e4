package engine

import (
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/input"
)

// ApplyInput moves the right paddle for the held direction keys.
// A step never carries the paddle past a wall
func (s *State) ApplyInput(intent input.Intent) {
	if intent.Has(input.IntentUp) && s.RightPaddle().Top() < constants.CourtMax {
		s.ROffsetY += s.Tuning.PaddleSpeed
		if maxOffset := constants.CourtMax - s.RPaddle.Top(); s.ROffsetY > maxOffset {
			s.ROffsetY = maxOffset
		}
	}
	if intent.Has(input.IntentDown) && s.RightPaddle().Bottom() > constants.CourtMin {
		s.ROffsetY -= s.Tuning.PaddleSpeed
		if minOffset := constants.CourtMin - s.RPaddle.Bottom(); s.ROffsetY < minOffset {
			s.ROffsetY = minOffset
		}
	}
}
