package render

import "github.com/lixenwraith/pong/constants"

// DrawCall draws one block from the baked vertex buffer, translated by an offset
type DrawCall struct {
	// First is the index of the block's first vertex
	First int32
	// Count is the number of triangle-strip vertices
	Count int32

	OffsetX float32
	OffsetY float32
}

// Scene is the ordered list of draw calls for one frame
type Scene []DrawCall

// BlockCall returns the draw call for the block at index i of the vertex buffer
func BlockCall(i int, offsetX, offsetY float32) DrawCall {
	return DrawCall{
		First:   int32(i * constants.VerticesPerBlock),
		Count:   constants.VerticesPerBlock,
		OffsetX: offsetX,
		OffsetY: offsetY,
	}
}

// BlockIndex returns the block index a draw call refers to
func (d DrawCall) BlockIndex() int {
	return int(d.First) / constants.VerticesPerBlock
}
