// Package termviz replays a recorded algorithm trace as colored ASCII
// frames in the terminal. It reconstructs wall state by applying the
// events to its own grid copy, so a frame shows the maze as it looked at
// that point of the run, not the finished result.
package termviz

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gookit/color"

	"github.com/mazeforge/mazeforge/maze"
	"github.com/mazeforge/mazeforge/trace"
)

// Player drives the frame-by-frame replay of one recording.
type Player struct {
	g      *maze.Grid
	out    io.Writer
	delay  time.Duration
	states map[maze.CellPosition]trace.Kind

	styleVisited color.Style
	styleMarked  color.Style
	stylePath    color.Style
	styleWall    color.Style
}

// NewPlayer returns a player reconstructing a generation run on a fresh
// width x height grid. startOpen selects the wall-building start state
// used by Recursive Division.
func NewPlayer(out io.Writer, width, height int, startOpen bool, delay time.Duration) (*Player, error) {
	g, err := maze.New(width, height)
	if err != nil {
		return nil, err
	}
	if startOpen {
		g.OpenInterior()
	}
	return newPlayer(out, g, delay), nil
}

// NewGridPlayer returns a player replaying a solver run over a copy of
// the finished grid.
func NewGridPlayer(out io.Writer, g *maze.Grid, delay time.Duration) *Player {
	return newPlayer(out, g.Clone(), delay)
}

func newPlayer(out io.Writer, g *maze.Grid, delay time.Duration) *Player {
	return &Player{
		g:            g,
		out:          out,
		delay:        delay,
		states:       make(map[maze.CellPosition]trace.Kind),
		styleVisited: color.Style{color.FgCyan},
		styleMarked:  color.Style{color.FgGray},
		stylePath:    color.Style{color.FgGreen, color.OpBold},
		styleWall:    color.Style{color.FgWhite},
	}
}

// Apply folds one event into the replayed grid and cell states.
func (p *Player) Apply(e trace.Event) {
	switch e.Kind {
	case trace.KindWallBroken:
		_ = p.g.BreakWall(e.From, e.To)
		p.states[e.From] = trace.KindCellVisited
		p.states[e.To] = trace.KindCellVisited
	case trace.KindWallAdded:
		_ = p.g.BuildWall(e.From, e.To)
	case trace.KindCellVisited, trace.KindCellMarked, trace.KindPathCell:
		p.states[e.From] = e.Kind
	}
}

// Play applies every event in order, printing one frame per event.
func (p *Player) Play(events []trace.Event) {
	for _, e := range events {
		p.Apply(e)
		fmt.Fprint(p.out, "\033[H\033[2J")
		fmt.Fprintln(p.out, p.Frame())
		time.Sleep(p.delay)
	}
}

func (p *Player) cellGlyph(pos maze.CellPosition) string {
	switch p.states[pos] {
	case trace.KindCellVisited:
		return p.styleVisited.Sprint(" . ")
	case trace.KindCellMarked:
		return p.styleMarked.Sprint(" x ")
	case trace.KindPathCell:
		return p.stylePath.Sprint(" o ")
	default:
		return "   "
	}
}

// Frame renders the current replay state as colored ASCII, in the same
// layout the grid's String method uses.
func (p *Player) Frame() string {
	var b strings.Builder

	b.WriteString(p.styleWall.Sprint("+"+strings.Repeat("---+", p.g.Width)) + "\n")

	for row := 0; row < p.g.Height; row++ {
		cellRow := p.styleWall.Sprint("|")
		for col := 0; col < p.g.Width; col++ {
			pos := maze.CellPosition{Row: row, Col: col}
			cellRow += p.cellGlyph(pos)
			if p.g.Cells[row][col].EastWall {
				cellRow += p.styleWall.Sprint("|")
			} else {
				cellRow += " "
			}
		}
		b.WriteString(cellRow + "\n")

		wallRow := p.styleWall.Sprint("+")
		for col := 0; col < p.g.Width; col++ {
			if p.g.Cells[row][col].SouthWall {
				wallRow += p.styleWall.Sprint("---+")
			} else {
				wallRow += p.styleWall.Sprint("   +")
			}
		}
		b.WriteString(wallRow + "\n")
	}

	return b.String()
}
