package terminal

import (
	"testing"

	"github.com/lixenwraith/pong/core"
)

func TestBlockCells(t *testing.T) {
	tests := []struct {
		name  string
		block core.Block
		want  CellRect
		ok    bool
	}{
		{
			name:  "exact quarter block",
			block: core.Block{X: -0.5, Y: 0.5, Width: 0.25, Height: 0.25},
			want:  CellRect{X0: 10, Y0: 2, X1: 14, Y1: 4},
			ok:    true,
		},
		{
			name:  "centered ball",
			block: core.Block{X: -0.02, Y: -0.02, Width: 0.04, Height: 0.04},
			want:  CellRect{X0: 19, Y0: 9, X1: 20, Y1: 10},
			ok:    true,
		},
		{
			name:  "tiny block still covers a cell",
			block: core.Block{X: 0, Y: 0, Width: 0.001, Height: 0.001},
			want:  CellRect{X0: 20, Y0: 9, X1: 20, Y1: 9},
			ok:    true,
		},
		{
			name:  "clipped at the right edge",
			block: core.Block{X: 0.5, Y: -0.5, Width: 1, Height: 0.25},
			want:  CellRect{X0: 30, Y0: 12, X1: 39, Y1: 14},
			ok:    true,
		},
		{
			name:  "entirely off grid",
			block: core.Block{X: 1.5, Y: 0, Width: 0.25, Height: 0.25},
			ok:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BlockCells(tt.block, 40, 20)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("BlockCells = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBlockCellsEmptyGrid(t *testing.T) {
	if _, ok := BlockCells(core.Block{Width: 1, Height: 1}, 0, 10); ok {
		t.Error("zero-width grid reported a visible block")
	}
}

func TestCellRectContains(t *testing.T) {
	r := CellRect{X0: 1, Y0: 2, X1: 3, Y1: 4}
	if !r.Contains(1, 2) || !r.Contains(3, 4) {
		t.Error("corners not contained")
	}
	if r.Contains(0, 2) || r.Contains(3, 5) {
		t.Error("outside cells contained")
	}
}
