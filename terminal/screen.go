package terminal

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render"
)

// Options configures the terminal backend
type Options struct {
	// FrameInterval paces Present; 0 presents without waiting
	FrameInterval time.Duration
	// KeyHold is how long a press counts as held
	KeyHold time.Duration
	// Clock drives the key latch; nil uses the wall clock
	Clock input.Clock
	// EventQueue bounds events buffered between polls; 0 uses the default
	EventQueue int
}

// Screen is the terminal presentation backend
type Screen struct {
	screen tcell.Screen
	blocks []core.Block
	style  tcell.Style

	latch   *input.Latch[Key]
	pending input.Intent
	events  chan tcell.Event
	done    chan struct{}
	stopped chan struct{}

	ticker *time.Ticker
	closed bool

	finiOnce sync.Once
	doneOnce sync.Once
}

// Open creates a screen on the controlling terminal
func Open(blocks []core.Block, opts Options) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return New(screen, blocks, opts)
}

// New initializes screen and starts reading its events. blocks are the base positions
// that draw calls index into, in the same order as the GL vertex buffer
func New(screen tcell.Screen, blocks []core.Block, opts Options) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()
	screen.EnableFocus()

	clock := opts.Clock
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	hold := opts.KeyHold
	if hold <= 0 {
		hold = constants.KeyHoldWindow
	}
	queue := opts.EventQueue
	if queue <= 0 {
		queue = constants.EventQueueSize
	}

	s := &Screen{
		screen:  screen,
		blocks:  blocks,
		style:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		latch:   input.NewLatch[Key](clock, hold),
		events:  make(chan tcell.Event, queue),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	if opts.FrameInterval > 0 {
		s.ticker = time.NewTicker(opts.FrameInterval)
	}

	core.SetCrashCleanup(s.fini)
	core.Go(s.readEvents)

	w, h := screen.Size()
	log.Printf("terminal %dx%d", w, h)
	return s, nil
}

// readEvents forwards tcell events until the screen is finalized or closed
func (s *Screen) readEvents() {
	defer close(s.stopped)
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// PollIntents drains pending events without blocking and resolves held keys
func (s *Screen) PollIntents() input.Intent {
drain:
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.closed = true
				break drain
			}
			s.handle(ev)
		default:
			break drain
		}
	}

	intent := s.pending | Keys.Resolve(s.latch.Held)
	s.pending = input.IntentNone
	return intent
}

func (s *Screen) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key := KeyOf(ev)
		intent, ok := Keys.Lookup(key)
		if !ok {
			return
		}
		if intent == input.IntentQuit {
			s.pending |= intent
			return
		}
		s.latch.Press(key)
	case *tcell.EventResize:
		// Presses from before a resize or focus change are stale
		s.latch.Release()
		s.screen.Sync()
	case *tcell.EventFocus:
		if !ev.Focused {
			s.latch.Release()
		}
	}
}

// Draw fills each translated block with the block glyph
func (s *Screen) Draw(scene render.Scene) {
	s.screen.Clear()
	cols, rows := s.screen.Size()

	for _, call := range scene {
		i := call.BlockIndex()
		if i < 0 || i >= len(s.blocks) {
			continue
		}
		r, ok := BlockCells(s.blocks[i].Translate(call.OffsetX, call.OffsetY), cols, rows)
		if !ok {
			continue
		}
		for y := r.Y0; y <= r.Y1; y++ {
			for x := r.X0; x <= r.X1; x++ {
				s.screen.SetContent(x, y, constants.BlockGlyph, nil, s.style)
			}
		}
	}
}

// Present shows the frame and waits for the next tick
func (s *Screen) Present() {
	s.screen.Show()
	if s.ticker != nil {
		<-s.ticker.C
	}
}

func (s *Screen) ShouldClose() bool { return s.closed }

func (s *Screen) RequestClose() { s.closed = true }

// Close restores the terminal and waits for the event reader to exit
func (s *Screen) Close() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	core.SetCrashCleanup(nil)
	s.doneOnce.Do(func() { close(s.done) })
	s.fini()
	<-s.stopped
}

func (s *Screen) fini() {
	s.finiOnce.Do(s.screen.Fini)
}
