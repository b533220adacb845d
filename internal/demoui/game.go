// Package demoui implements a minimal Ebitengine renderer for the puzzle
// engine: it polls a Match's playfields via RenderableState() once per
// display frame and draws cells as colored rects, routing keyboard input
// through the same public control operations any external driver uses.
package demoui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/blockforge/puzzlecore/internal/board"
	"github.com/blockforge/puzzlecore/internal/match"
	"github.com/blockforge/puzzlecore/internal/playfield"
)

const (
	cellSize   = 24
	boardCols  = board.Cols
	boardRows  = board.VisibleRows
	boardWidth = cellSize * boardCols
	panelWidth = 160

	ScreenWidth  = boardWidth + panelWidth
	ScreenHeight = cellSize * boardRows
)

var hudFace *text.GoTextFace

func init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("demoui: failed to load HUD font: %v", err)
		return
	}
	hudFace = &text.GoTextFace{Source: src, Size: 14}
}

var cellColors = map[board.Cell]color.RGBA{
	board.CellI:    {96, 222, 255, 255},
	board.CellJ:    {85, 110, 255, 255},
	board.CellL:    {255, 170, 64, 255},
	board.CellO:    {255, 221, 64, 255},
	board.CellS:    {96, 222, 96, 255},
	board.CellT:    {200, 96, 255, 255},
	board.CellZ:    {255, 96, 96, 255},
	board.Garbage:  {120, 120, 120, 255},
}

// Game implements ebiten.Game over a single tracked playfield.
type Game struct {
	m       *match.Match
	boardID int

	background color.RGBA
}

// NewGame returns a demo Game that drives boardID within m.
func NewGame(m *match.Match, boardID int) *Game {
	return &Game{m: m, boardID: boardID, background: color.RGBA{18, 18, 24, 255}}
}

// Update polls keyboard input and forwards it to the match's public
// control operations, then advances the match by one display frame.
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.m.Move(g.boardID, -1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.m.Move(g.boardID, 1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.m.Move(g.boardID, 0, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.m.Rotate(g.boardID, playfield.RotateCW)
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		g.m.Rotate(g.boardID, playfield.RotateCCW)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.m.Rotate(g.boardID, playfield.Rotate180)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.m.HardDrop(g.boardID)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.m.Hold(g.boardID)
	}

	g.m.Update(1.0 / 60)
	return nil
}

// Draw renders the tracked playfield's RenderableState: settled cells,
// the active piece, and a HUD panel with score/combo/B2B/held info. The
// next queue is not drawn.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	pf := g.m.GetBoard(g.boardID)
	state := pf.RenderableState()

	for _, c := range state.Cells {
		drawCell(screen, c.Col, c.Row, c.Cell)
	}
	for _, c := range state.ActiveCells {
		drawCell(screen, c.Col, c.Row, c.Cell)
	}

	g.drawHUD(screen, state)
}

func drawCell(screen *ebiten.Image, col, row int, cell board.Cell) {
	c, ok := cellColors[cell]
	if !ok {
		return
	}
	x := float32(col * cellSize)
	y := float32((boardRows - 1 - row) * cellSize)
	vector.DrawFilledRect(screen, x, y, cellSize-1, cellSize-1, c, false)
}

func (g *Game) drawHUD(screen *ebiten.Image, state playfield.RenderableState) {
	if hudFace == nil {
		return
	}
	x := float64(boardWidth + 12)

	lines := []string{
		fmt.Sprintf("Score %d", state.Score),
		fmt.Sprintf("Combo %d", state.Combo),
		fmt.Sprintf("B2B   %d", state.B2BChain),
	}
	if state.HasHeld {
		lines = append(lines, fmt.Sprintf("Hold  %s", state.HeldKind))
	}
	if state.GameOver {
		lines = append(lines, "GAME OVER")
	}

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, float64(20+i*22))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, hudFace, op)
	}
}

// Layout returns the fixed screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
