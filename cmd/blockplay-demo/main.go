// Command blockplay-demo is a minimal single-player Ebitengine front end
// for the puzzle engine, wired directly to the core's public control
// operations with no transport or AI in between.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/blockforge/puzzlecore/internal/demoui"
	"github.com/blockforge/puzzlecore/internal/match"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "match random seed")
	flag.Parse()

	cfg := match.DefaultMatchConfig(*seed)
	m := match.New(cfg)
	boardID := m.AddPlayer()

	ebiten.SetWindowSize(demoui.ScreenWidth, demoui.ScreenHeight)
	ebiten.SetWindowTitle("blockplay")

	if err := ebiten.RunGame(demoui.NewGame(m, boardID)); err != nil {
		log.Fatal(err)
	}
}
