package input

import (
	"testing"
	"time"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func TestLatchHoldWindow(t *testing.T) {
	clock := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	latch := NewLatch[string](clock, 100*time.Millisecond)

	if latch.Held("w") {
		t.Fatal("unpressed key reported held")
	}

	latch.Press("w")
	if !latch.Held("w") {
		t.Fatal("key not held right after press")
	}

	clock.now = clock.now.Add(99 * time.Millisecond)
	if !latch.Held("w") {
		t.Error("key released before the hold window ended")
	}

	clock.now = clock.now.Add(time.Millisecond)
	if latch.Held("w") {
		t.Error("key still held at the end of the hold window")
	}
}

func TestLatchRepeatRenews(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0)}
	latch := NewLatch[string](clock, 100*time.Millisecond)

	latch.Press("up")
	for i := 0; i < 5; i++ {
		clock.now = clock.now.Add(60 * time.Millisecond)
		latch.Press("up")
	}
	clock.now = clock.now.Add(60 * time.Millisecond)
	if !latch.Held("up") {
		t.Error("auto-repeat did not keep the key held")
	}
}

func TestLatchRelease(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0)}
	latch := NewLatch[string](clock, time.Second)

	latch.Press("s")
	latch.Press("down")
	latch.Release()

	if latch.Held("s") || latch.Held("down") {
		t.Error("Release left keys held")
	}
}
