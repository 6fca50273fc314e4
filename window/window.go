// Package window bootstraps a GLFW window with an OpenGL core context and draws scenes into it.
// GLFW requires every call on the main OS thread; the package locks it at init.
package window

import (
	"errors"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/lixenwraith/pong/asset"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/shader"
)

func init() {
	runtime.LockOSThread()
}

// Bootstrap failures
var (
	ErrWindowCreate = errors.New("failed to create GLFW window")
	ErrLoaderInit   = errors.New("failed to initialize OpenGL")
)

// Keys maps GLFW keys to intents
var Keys = input.KeyTable[glfw.Key]{
	glfw.KeyUp:     input.IntentUp,
	glfw.KeyW:      input.IntentUp,
	glfw.KeyDown:   input.IntentDown,
	glfw.KeyS:      input.IntentDown,
	glfw.KeyEscape: input.IntentQuit,
}

// Window is the GL presentation backend
type Window struct {
	win     *glfw.Window
	program *shader.Program
	vao     uint32
	vbo     uint32
}

// Open creates the window and context, builds the shader program and bakes the block vertices
func Open(cfg config.WindowConfig, shaders config.ShaderConfig, blocks []core.Block) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrLoaderInit, err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	// Framebuffer can differ from window size on HiDPI displays
	fbWidth, fbHeight := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	program, err := loadProgram(shaders)
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	w := &Window{win: win, program: program}
	w.bake(blocks)
	w.program.Use()
	gl.BindVertexArray(w.vao)

	return w, nil
}

func loadProgram(cfg config.ShaderConfig) (*shader.Program, error) {
	if cfg.Vertex == "" && cfg.Fragment == "" {
		return shader.New(asset.DefaultVertexShader, asset.DefaultFragmentShader)
	}
	if cfg.Vertex == "" || cfg.Fragment == "" {
		return nil, fmt.Errorf("shader paths must both be set or both be empty")
	}
	log.Printf("loading shaders %s, %s", cfg.Vertex, cfg.Fragment)
	return shader.Load(cfg.Vertex, cfg.Fragment)
}

// bake uploads the block corners once; blocks move through uniforms, never through the buffer
func (w *Window) bake(blocks []core.Block) {
	vertices := render.Vertices(blocks...)

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, render.FloatsPerVertex, gl.FLOAT, false, render.FloatsPerVertex*4, 0)
	gl.EnableVertexAttribArray(0)
}

// Draw clears the frame and issues one triangle strip per draw call
func (w *Window) Draw(scene render.Scene) {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	for _, call := range scene {
		w.program.SetFloat(constants.UniformOffsetX, call.OffsetX)
		w.program.SetFloat(constants.UniformOffsetY, call.OffsetY)
		gl.DrawArrays(gl.TRIANGLE_STRIP, call.First, call.Count)
	}
}

// Present swaps buffers and pumps window events
func (w *Window) Present() {
	w.win.SwapBuffers()
	glfw.PollEvents()
}

func (w *Window) PollIntents() input.Intent {
	return Keys.Resolve(func(k glfw.Key) bool {
		return w.win.GetKey(k) == glfw.Press
	})
}

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

func (w *Window) RequestClose() { w.win.SetShouldClose(true) }

// Close releases GL resources, then the window and GLFW
func (w *Window) Close() {
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
	}
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
	}
	w.program.Delete()
	w.win.Destroy()
	glfw.Terminate()
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
