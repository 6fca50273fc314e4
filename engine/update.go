package engine

import "github.com/lixenwraith/pong/constants"

// Update advances the ball one frame and lets the left paddle react.
// Step order matters: collisions are tested on the pre-move position
func (s *State) Update() {
	s.bounceWalls()
	s.collideLeft()
	s.collideRight()
	s.resetIfOut()
	s.integrate()
	s.steerAI()
	s.Frame++
}

// bounceWalls flips vertical travel when the ball crosses the top or bottom wall
func (s *State) bounceWalls() {
	ball := s.BallAt()
	if ball.Top() > constants.CourtMax || ball.Bottom() < constants.CourtMin {
		s.DirY = s.DirY.Flip()
	}
}

// collideLeft reflects the ball off the computer paddle.
// The paddle test runs regardless of travel direction, so a ball already behind the face flips every frame
func (s *State) collideLeft() {
	ball := s.BallAt()
	paddle := s.LeftPaddle()
	if ball.Left() <= paddle.Right() && s.withinSpan(paddle.Bottom(), paddle.Top()) {
		s.DirX = s.DirX.Flip()
		if s.Tuning.CollisionNudge {
			s.BallOffsetX += s.Tuning.BallSpeedX
		}
	}
}

// collideRight reflects the ball off the player paddle
func (s *State) collideRight() {
	ball := s.BallAt()
	paddle := s.RightPaddle()
	if ball.Right() >= paddle.Left() && s.withinSpan(paddle.Bottom(), paddle.Top()) {
		s.DirX = s.DirX.Flip()
		if s.Tuning.CollisionNudge {
			s.BallOffsetX -= s.Tuning.BallSpeedX
		}
	}
}

// withinSpan tests the ball's vertical center against a paddle span, inclusive
func (s *State) withinSpan(bottom, top float32) bool {
	y := s.BallAt().CenterY()
	return y >= bottom && y <= top
}

// resetIfOut serves again from the center when the ball leaves the court sideways
func (s *State) resetIfOut() {
	ball := s.BallAt()
	if ball.Right() > constants.CourtMax || ball.Left() < constants.CourtMin {
		s.BallOffsetX = 0
		s.BallOffsetY = 0
		s.DirX = s.DirX.Flip()
	}
}

func (s *State) integrate() {
	s.BallOffsetX += s.DirX.Sign() * s.Tuning.BallSpeedX
	s.BallOffsetY += s.DirY.Sign() * s.Tuning.BallSpeedY
}

// steerAI chases the ball with the left paddle while the ball is on its side of the court
func (s *State) steerAI() {
	if s.BallOffsetX >= s.Tuning.AIEngageX {
		return
	}

	step := s.Tuning.BallSpeedY * s.Tuning.AIReactionFactor
	paddle := s.LeftPaddle()

	switch {
	case s.BallOffsetY > paddle.CenterY():
		s.LOffsetY += step
		if maxOffset := constants.CourtMax - s.LPaddle.Top(); s.LOffsetY > maxOffset {
			s.LOffsetY = maxOffset
		}
	case s.BallOffsetY < paddle.Bottom():
		s.LOffsetY -= step
		if s.Tuning.AIClampBottom {
			if minOffset := constants.CourtMin - s.LPaddle.Bottom(); s.LOffsetY < minOffset {
				s.LOffsetY = minOffset
			}
		}
	}
}
