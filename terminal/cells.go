package terminal

import (
	"math"

	"github.com/lixenwraith/pong/core"
)

// CellRect is an inclusive cell rectangle, row 0 at the top
type CellRect struct {
	X0, Y0 int
	X1, Y1 int
}

// Contains reports whether cell x, y lies inside the rectangle
func (r CellRect) Contains(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// BlockCells maps a block in normalized device coordinates onto a cols×rows grid.
// Every visible block covers at least one cell; ok is false when it lies entirely off-grid
func BlockCells(b core.Block, cols, rows int) (r CellRect, ok bool) {
	if cols <= 0 || rows <= 0 {
		return CellRect{}, false
	}

	r.X0 = int(math.Floor(toGrid(float64(b.Left()), cols)))
	r.X1 = int(math.Ceil(toGrid(float64(b.Right()), cols))) - 1
	// NDC y grows upward, rows grow downward
	r.Y0 = int(math.Floor(toGrid(-float64(b.Top()), rows)))
	r.Y1 = int(math.Ceil(toGrid(-float64(b.Bottom()), rows))) - 1

	if r.X1 < r.X0 {
		r.X1 = r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y1 = r.Y0
	}

	r.X0, r.X1 = max(r.X0, 0), min(r.X1, cols-1)
	r.Y0, r.Y1 = max(r.Y0, 0), min(r.Y1, rows-1)
	if r.X0 > r.X1 || r.Y0 > r.Y1 {
		return CellRect{}, false
	}
	return r, true
}

// toGrid maps [-1, 1] onto [0, n]
func toGrid(v float64, n int) float64 {
	return (v + 1) / 2 * float64(n)
}
