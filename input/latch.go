package input

import "time"

// Clock is the time source of a Latch
type Clock interface {
	Now() time.Time
}

// Latch turns key press events into held-key state for backends that never report releases.
// A key counts as held for the hold window after its latest press; auto-repeat keeps renewing it
type Latch[K comparable] struct {
	clock   Clock
	hold    time.Duration
	pressed map[K]time.Time
}

// NewLatch creates a latch with the given hold window
func NewLatch[K comparable](clock Clock, hold time.Duration) *Latch[K] {
	return &Latch[K]{
		clock:   clock,
		hold:    hold,
		pressed: make(map[K]time.Time),
	}
}

// Press records a press of key now
func (l *Latch[K]) Press(key K) {
	l.pressed[key] = l.clock.Now()
}

// Held reports whether key was pressed within the hold window. Expired entries are dropped
func (l *Latch[K]) Held(key K) bool {
	at, ok := l.pressed[key]
	if !ok {
		return false
	}
	if l.clock.Now().Sub(at) >= l.hold {
		delete(l.pressed, key)
		return false
	}
	return true
}

// Release forgets every press
func (l *Latch[K]) Release() {
	clear(l.pressed)
}
