package render

// Renderer draws one frame of a scene. Implemented by the GL window and the terminal screen
type Renderer interface {
	Draw(scene Scene)
	Present()
}
