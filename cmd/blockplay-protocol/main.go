// Command blockplay-protocol runs the line-oriented external-driver
// protocol over stdin/stdout, the textual equivalent of wiring a human or
// bot driver directly to the core's public control operations.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/blockforge/puzzlecore/internal/match"
	"github.com/blockforge/puzzlecore/internal/protocol"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "match random seed")
	players := flag.Int("players", 2, "number of playfields to create")
	flag.Parse()

	cfg := match.DefaultMatchConfig(*seed)
	m := match.New(cfg)
	for i := 0; i < *players; i++ {
		m.AddPlayer()
	}

	d := protocol.New(m, os.Stdin, os.Stdout)
	if err := d.Run(); err != nil {
		log.Fatal(err)
	}
}
