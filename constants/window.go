package constants

// Window and GL context
const (
	WindowWidth  = 600
	WindowHeight = 600
	WindowTitle  = "Pong"

	GLVersionMajor = 4
	GLVersionMinor = 6
)

// Shader uniform names
const (
	UniformOffsetX = "offsetX"
	UniformOffsetY = "offsetY"
)

// Vertices per block in the triangle strip
const VerticesPerBlock = 4
