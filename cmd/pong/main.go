package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/terminal"
	"github.com/lixenwraith/pong/window"
)

// Process exit codes
const (
	exitOK          = 0
	exitInitFailure = -1
)

var (
	configFlag  = flag.String("config", "", "Config file: .toml, .yaml or .yml")
	backendFlag = flag.String("backend", "", "Presentation backend: gl, terminal (overrides config)")
	debugFlag   = flag.Bool("debug", false, "Write debug log to "+logDir+"/"+logFileName)
)

func main() {
	os.Exit(run())
}

func run() int {
	// Panic recovery: restore the display before printing the crash
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return exitInitFailure
	}
	if *backendFlag != "" {
		cfg.Backend = *backendFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		return exitInitFailure
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting pong: backend=%s config=%q", cfg.Backend, *configFlag)

	state := engine.NewState(cfg.Tuning())

	platform, closePlatform, err := openPlatform(cfg, state)
	if err != nil {
		fmt.Fprint(os.Stderr, initFailureMessage(err))
		log.Printf("init failed: %v", err)
		return exitInitFailure
	}
	defer closePlatform()

	frames := engine.NewLoop(platform, state).Run()
	log.Printf("pong closed after %d frames", frames)
	return exitOK
}

// openPlatform starts the configured backend and returns it with its release function
func openPlatform(cfg config.Config, state *engine.State) (engine.Platform, func(), error) {
	switch cfg.Backend {
	case config.BackendTerminal:
		screen, err := terminal.Open(state.Blocks(), terminal.Options{
			FrameInterval: cfg.Terminal.FrameInterval(),
			KeyHold:       cfg.Terminal.KeyHold(),
		})
		if err != nil {
			return nil, nil, err
		}
		return screen, screen.Close, nil
	default:
		win, err := window.Open(cfg.Window, cfg.Shaders, state.Blocks())
		if err != nil {
			return nil, nil, err
		}
		return win, win.Close, nil
	}
}

// Headlines printed ahead of the error detail for bootstrap failures
var initFailureHeadlines = []struct {
	err      error
	headline string
}{
	{window.ErrWindowCreate, "Failed to create GLFW window"},
	{window.ErrLoaderInit, "Failed to initialize OpenGL"},
}

// initFailureMessage formats a platform init error for stderr
func initFailureMessage(err error) string {
	for _, f := range initFailureHeadlines {
		if errors.Is(err, f.err) {
			return fmt.Sprintf("%s\n%v\n", f.headline, err)
		}
	}
	return fmt.Sprintf("%v\n", err)
}
