// Package shader compiles and links GLSL programs and sets their uniforms.
// All functions require a current GL context on the calling thread.
package shader

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is a linked vertex/fragment shader pair
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// Load reads both shader sources from disk and builds a program
func Load(vertexPath, fragmentPath string) (*Program, error) {
	vertexSrc, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("read vertex shader: %w", err)
	}
	fragmentSrc, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("read fragment shader: %w", err)
	}
	return New(string(vertexSrc), string(fragmentSrc))
}

// New compiles and links a program from sources
func New(vertexSrc, fragmentSrc string) (*Program, error) {
	vertex, err := compile(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compile(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragment)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertex)
	gl.AttachShader(id, fragment)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		msg := infoLog(logLength, func(buf *uint8) { gl.GetProgramInfoLog(id, logLength, nil, buf) })
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("link failed: %s", msg)
	}

	return &Program{id: id, uniforms: make(map[string]int32)}, nil
}

// Use activates the program for subsequent draws
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// SetFloat sets a float uniform on the active program. Unknown names are ignored by GL
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

// Delete releases the program
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// location caches uniform lookups; GL returns -1 for names optimized out
func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(cString(name)))
	p.uniforms[name] = loc
	return loc
}

func compile(kind uint32, src string) (uint32, error) {
	id := gl.CreateShader(kind)
	csource, free := gl.Strs(cString(src))
	gl.ShaderSource(id, 1, csource, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		msg := infoLog(logLength, func(buf *uint8) { gl.GetShaderInfoLog(id, logLength, nil, buf) })
		gl.DeleteShader(id)
		return 0, fmt.Errorf("compile failed: %s", msg)
	}
	return id, nil
}

func infoLog(length int32, fill func(*uint8)) string {
	if length <= 0 {
		return "no info log"
	}
	buf := make([]uint8, length+1)
	fill(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

// cString appends the NUL terminator GL string arguments need
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
