package engine

import (
	"time"

	"github.com/lixenwraith/pong/input"
)

var _ input.Clock = (*TimeProvider)(nil)

// TimeProvider is the wall clock used by backends that latch key presses
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time, including the monotonic reading used for hold windows
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
