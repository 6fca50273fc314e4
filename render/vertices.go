package render

import (
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/core"
)

// FloatsPerVertex is the vec2 position stride
const FloatsPerVertex = 2

// Vertices packs the corners of each block, in order, as triangle strips of x, y pairs
func Vertices(blocks ...core.Block) []float32 {
	out := make([]float32, 0, len(blocks)*constants.VerticesPerBlock*FloatsPerVertex)
	for _, b := range blocks {
		for _, c := range b.Corners() {
			out = append(out, c.X(), c.Y())
		}
	}
	return out
}
