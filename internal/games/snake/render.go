package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used for the board. Each is repeated to fill a cell's width.
const (
	glyphHead = '█'
	glyphBody = '▓'
	glyphFood = '●'
)

// ScreenRenderer draws the board into a core.Screen.
// The screen may be resized between calls; every Render redraws from scratch.
type ScreenRenderer struct {
	screen *core.Screen
}

// NewScreenRenderer creates a renderer drawing into dst.
func NewScreenRenderer(dst *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: dst}
}

// Screen returns the target buffer.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Render implements Renderer.
func (r *ScreenRenderer) Render(s State) {
	dst := r.screen
	dst.Clear()

	geom := s.Geometry
	boardW := geom.ScaledWidth() + frameSize
	boardH := geom.Rows + frameSize
	if !geom.Valid() || boardW > dst.Width() || boardH > dst.Height() {
		drawOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	frame := dst.Bounds().Centered(boardW, boardH)
	dst.DrawBox(frame, core.ColorGray)
	board := frame.Inset(1)

	if s.HasFood {
		fillCell(dst, board, geom, s.Food, glyphFood, core.ColorBrightRed)
	}

	// Tail first so the head is drawn last
	for i := len(s.Snake) - 1; i > 0; i-- {
		fillCell(dst, board, geom, s.Snake[i], glyphBody, core.ColorGreen)
	}
	if len(s.Snake) > 0 {
		headColor := core.ColorBrightGreen
		if s.Over {
			headColor = core.ColorRed
		}
		fillCell(dst, board, geom, s.Snake[0], glyphHead, headColor)
	}

	switch s.Phase() {
	case PhaseIdle:
		drawOverlay(dst, "S N A K E", "Press Space to start")
	case PhasePaused:
		drawOverlay(dst, "Paused", "Press P to continue")
	case PhaseGameOver:
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  -  Press R to restart", s.Score))
	case PhaseWon:
		drawOverlay(dst, "Board cleared!", fmt.Sprintf("Final Score: %d", s.Score))
	}
}

// fillCell paints one grid cell. Food is a single glyph padded with spaces.
func fillCell(dst *core.Screen, board core.Rect, geom Geometry, c Cell, glyph rune, color core.Color) {
	x := board.X + c.X*geom.CellSize
	y := board.Y + c.Y
	if !board.Contains(x, y) {
		return
	}
	if glyph == glyphFood {
		dst.SetColored(x, y, glyph, color)
		return
	}
	for i := range geom.CellSize {
		dst.SetColored(x+i, y, glyph, color)
	}
}

// drawOverlay draws a centered box with two lines of text.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	textW := max(len([]rune(line1)), len([]rune(line2)))
	box := dst.Bounds().Centered(textW+4, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
