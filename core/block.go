package core

import "github.com/go-gl/mathgl/mgl32"

// Block is an axis-aligned rectangle in normalized device coordinates.
// X, Y is the bottom-left corner; blocks never move, offsets translate them at draw time
type Block struct {
	X, Y          float32
	Width, Height float32
}

func (b Block) Left() float32   { return b.X }
func (b Block) Right() float32  { return b.X + b.Width }
func (b Block) Bottom() float32 { return b.Y }
func (b Block) Top() float32    { return b.Y + b.Height }

// CenterY returns the vertical midpoint
func (b Block) CenterY() float32 { return b.Y + b.Height/2 }

// Translate returns the block moved by dx, dy
func (b Block) Translate(dx, dy float32) Block {
	b.X += dx
	b.Y += dy
	return b
}

// Corners returns the four vertices in triangle-strip order:
// bottom-left, bottom-right, top-left, top-right
func (b Block) Corners() [4]mgl32.Vec2 {
	return [4]mgl32.Vec2{
		{b.Left(), b.Bottom()},
		{b.Right(), b.Bottom()},
		{b.Left(), b.Top()},
		{b.Right(), b.Top()},
	}
}
