// Package protocol implements a line-oriented text command loop that lets
// an external driver (a human-facing UI, a bot, or a test harness) control
// a match without depending on the match package's Go API directly.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/blockforge/puzzlecore/internal/match"
	"github.com/blockforge/puzzlecore/internal/playfield"
)

// Driver runs the command loop against a Match, reading whitespace
// tokenized lines from r and writing responses/errors to w. Taking the
// reader/writer as parameters (rather than binding to os.Stdin/os.Stdout
// directly) lets tests drive it over an in-memory pipe.
type Driver struct {
	m *match.Match
	r *bufio.Scanner
	w io.Writer

	board int // which board "board <n>"-less commands with no arg default to
}

// New returns a Driver wired to m, reading commands from r and writing to
// w.
func New(m *match.Match, r io.Reader, w io.Writer) *Driver {
	return &Driver{m: m, r: bufio.NewScanner(r), w: w}
}

// Run reads commands until EOF or a "quit" line, dispatching each to the
// matching control operation.
func (d *Driver) Run() error {
	for d.r.Scan() {
		line := strings.TrimSpace(d.r.Text())
		if line == "" {
			continue
		}
		if quit, err := d.dispatch(line); quit || err != nil {
			return err
		}
	}
	return d.r.Err()
}

// dispatch handles a single command line. It returns quit=true for "quit".
func (d *Driver) dispatch(line string) (quit bool, err error) {
	parts := strings.Fields(line)
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "left":
		d.m.Move(d.board, -1, 0)
	case "right":
		d.m.Move(d.board, 1, 0)
	case "softdrop":
		d.m.Move(d.board, 0, -1)
	case "cw":
		d.m.Rotate(d.board, playfield.RotateCW)
	case "ccw":
		d.m.Rotate(d.board, playfield.RotateCCW)
	case "r180":
		d.m.Rotate(d.board, playfield.Rotate180)
	case "harddrop":
		d.m.HardDrop(d.board)
	case "hold":
		d.m.Hold(d.board)
	case "tick":
		if len(args) != 1 {
			return false, fmt.Errorf("protocol: tick requires 1 arg, got %d", len(args))
		}
		millis, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("protocol: parsing tick millis: %w", err)
		}
		d.m.Update(float64(millis) / 1000)
	case "board":
		n := d.board
		if len(args) == 1 {
			n, err = strconv.Atoi(args[0])
			if err != nil {
				return false, fmt.Errorf("protocol: parsing board index: %w", err)
			}
		}
		d.writeBoardDump(n)
	case "use":
		if len(args) != 1 {
			return false, fmt.Errorf("protocol: use requires 1 arg, got %d", len(args))
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("protocol: parsing board index: %w", err)
		}
		d.board = n
	case "quit":
		return true, nil
	default:
		fmt.Fprintf(d.w, "info string unknown command: %s\n", cmd)
	}
	return false, nil
}

// writeBoardDump writes a text snapshot of a playfield's visible grid, 20
// rows top-to-bottom, one character per column.
func (d *Driver) writeBoardDump(n int) {
	pf := d.m.GetBoard(n)
	state := pf.RenderableState()

	occupied := make(map[[2]int]byte, len(state.Cells)+len(state.ActiveCells))
	for _, c := range state.Cells {
		occupied[[2]int{c.Col, c.Row}] = c.Cell.String()[0]
	}
	for _, c := range state.ActiveCells {
		occupied[[2]int{c.Col, c.Row}] = c.Cell.String()[0]
	}

	fmt.Fprintf(d.w, "board %d score=%d combo=%d b2b=%d\n", n, state.Score, state.Combo, state.B2BChain)
	for row := 19; row >= 0; row-- {
		line := make([]byte, 10)
		for col := 0; col < 10; col++ {
			if ch, ok := occupied[[2]int{col, row}]; ok {
				line[col] = ch
			} else {
				line[col] = '.'
			}
		}
		fmt.Fprintf(d.w, "%s\n", line)
	}
}
