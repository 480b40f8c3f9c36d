package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// HUD and frame rows reserved around the playfield.
const (
	hudHeight   = 1 // Status line above the board
	footerLines = 1 // Help line below the board
	frameSize   = 2 // Border on both sides
)

// Geometry describes the playfield: its size in cells and how many screen
// units one cell spans.
type Geometry struct {
	Cols     int
	Rows     int
	CellSize int
}

// Valid reports whether the geometry can hold a snake.
func (g Geometry) Valid() bool {
	return g.Cols > 0 && g.Rows > 0 && g.CellSize > 0
}

// Contains reports whether c lies inside the grid.
func (g Geometry) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Wrap folds c back into the grid, entering at the opposite edge.
func (g Geometry) Wrap(c Cell) Cell {
	return Cell{X: core.Wrap(c.X, g.Cols), Y: core.Wrap(c.Y, g.Rows)}
}

// Center returns the cell at the middle of the grid.
func (g Geometry) Center() Cell {
	return Cell{X: g.Cols / 2, Y: g.Rows / 2}
}

// Area returns the number of cells in the grid.
func (g Geometry) Area() int {
	return g.Cols * g.Rows
}

// Scale converts a cell to screen units (pixels, or terminal columns for X).
func (g Geometry) Scale(c Cell) (x, y int) {
	return c.X * g.CellSize, c.Y * g.CellSize
}

// ScaledWidth returns the playfield width in screen units.
func (g Geometry) ScaledWidth() int {
	return g.Cols * g.CellSize
}

// GeometryFor picks a playfield for a terminal of the given size.
// The column count comes from the configured breakpoints and shrinks to fit;
// rows follow a 2:1 aspect like the classic board, capped by the height.
// ok is false when the terminal cannot fit the minimum grid.
func GeometryFor(screenW, screenH int, grid config.GridConfig) (g Geometry, ok bool) {
	cellW := max(grid.CellWidth, 1)
	maxCols := (screenW - frameSize) / cellW
	maxRows := screenH - hudHeight - footerLines - frameSize

	cols := min(grid.Columns(screenW), maxCols)
	rows := min(max(cols/2, grid.MinRows), maxRows)

	g = Geometry{Cols: cols, Rows: rows, CellSize: cellW}
	if cols < grid.MinColumns || rows < grid.MinRows {
		return g, false
	}
	return g, true
}

// MinScreenSize returns the smallest terminal that fits the minimum grid.
func MinScreenSize(grid config.GridConfig) (w, h int) {
	cellW := max(grid.CellWidth, 1)
	return grid.MinColumns*cellW + frameSize, grid.MinRows + hudHeight + footerLines + frameSize
}
