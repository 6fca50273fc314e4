package constants

// Court geometry in normalized device coordinates, [-1, 1] on both axes
const (
	CourtMin float32 = -1.0
	CourtMax float32 = 1.0
)

// Paddle geometry (base position is the bottom-left corner)
const (
	PaddleWidth  float32 = 0.02
	PaddleHeight float32 = 0.2

	LeftPaddleX  float32 = -0.9
	RightPaddleX float32 = 0.9
	PaddleBaseY  float32 = 0.0
)

// Ball geometry, centered on the origin
const (
	BallSize  float32 = 0.04
	BallBaseX float32 = -BallSize / 2
	BallBaseY float32 = -BallSize / 2
)

// Per-frame displacement
const (
	// PaddleSpeed is the player paddle step while a direction key is held
	PaddleSpeed float32 = 0.015

	BallSpeedX float32 = 0.007
	BallSpeedY float32 = 0.01
)

// Computer paddle heuristic
const (
	// AIEngageX is the ball offset below which the left paddle reacts
	AIEngageX float32 = 0.75

	// AIReactionFactor scales BallSpeedY into the left paddle step
	AIReactionFactor float32 = 0.95
)
