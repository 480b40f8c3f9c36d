package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestGeometryFor(t *testing.T) {
	grid := config.DefaultSnakeConfig().Grid

	tests := []struct {
		name     string
		w, h     int
		wantCols int
		wantRows int
		wantOK   bool
	}{
		{"narrow terminal", 50, 20, 20, 10, true},
		{"standard terminal", 80, 24, 30, 15, true},
		{"wide terminal", 200, 50, 40, 20, true},
		{"short terminal caps rows", 120, 12, 40, 8, true},
		{"too narrow", 15, 24, 6, 6, false},
		{"too short", 80, 9, 30, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, ok := GeometryFor(tc.w, tc.h, grid)
			if ok != tc.wantOK {
				t.Errorf("ok = %v, expected %v", ok, tc.wantOK)
			}
			if g.Cols != tc.wantCols || g.Rows != tc.wantRows {
				t.Errorf("GeometryFor(%d, %d) = %dx%d, expected %dx%d",
					tc.w, tc.h, g.Cols, g.Rows, tc.wantCols, tc.wantRows)
			}
			if g.CellSize != grid.CellWidth {
				t.Errorf("CellSize = %d, expected %d", g.CellSize, grid.CellWidth)
			}
		})
	}
}

func TestMinScreenSize(t *testing.T) {
	grid := config.DefaultSnakeConfig().Grid
	w, h := MinScreenSize(grid)
	if w != 18 || h != 10 {
		t.Fatalf("MinScreenSize = %dx%d, expected 18x10", w, h)
	}

	if _, ok := GeometryFor(w, h, grid); !ok {
		t.Error("Minimum screen size should fit the minimum grid")
	}
	if _, ok := GeometryFor(w-1, h, grid); ok {
		t.Error("One column less than the minimum should not fit")
	}
	if _, ok := GeometryFor(w, h-1, grid); ok {
		t.Error("One row less than the minimum should not fit")
	}
}

func TestGeometryWrap(t *testing.T) {
	g := Geometry{Cols: 10, Rows: 5, CellSize: 1}

	tests := []struct {
		in, want Cell
	}{
		{Cell{X: 10, Y: 2}, Cell{X: 0, Y: 2}},
		{Cell{X: -1, Y: 2}, Cell{X: 9, Y: 2}},
		{Cell{X: 3, Y: 5}, Cell{X: 3, Y: 0}},
		{Cell{X: 3, Y: -1}, Cell{X: 3, Y: 4}},
		{Cell{X: 4, Y: 4}, Cell{X: 4, Y: 4}},
	}
	for _, tc := range tests {
		if got := g.Wrap(tc.in); got != tc.want {
			t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestGeometryScale(t *testing.T) {
	g := Geometry{Cols: 20, Rows: 20, CellSize: 20}

	if x, y := g.Scale(Cell{X: 9, Y: 10}); x != 180 || y != 200 {
		t.Errorf("Scale(9,10) = (%d,%d), expected (180,200)", x, y)
	}
	if g.ScaledWidth() != 400 {
		t.Errorf("ScaledWidth = %d, expected 400", g.ScaledWidth())
	}
	if g.Center() != (Cell{X: 10, Y: 10}) {
		t.Errorf("Center = %v, expected (10,10)", g.Center())
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, expected %s", d, got, want)
		}
		dx, dy := d.Delta()
		ox, oy := want.Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("Deltas of %s and %s should cancel out", d, want)
		}
	}
}
