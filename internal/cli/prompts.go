package cli

import (
	"fmt"

	"ghostbust/internal/game"
	"ghostbust/internal/model"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Win, Lose, Info, Warn, Header, Hint *color.Color
}{
	Win:    color.New(color.FgGreen, color.Bold),
	Lose:   color.New(color.FgRed, color.Bold),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Hint:   color.New(color.FgHiBlue, color.Bold),
}

// CellColors maps sensed colors to terminal backgrounds.
var CellColors = map[model.Color]*color.Color{
	model.ColorWhite:  color.New(color.BgWhite, color.FgBlack),
	model.ColorGreen:  color.New(color.BgGreen, color.FgBlack),
	model.ColorYellow: color.New(color.BgYellow, color.FgBlack),
	model.ColorOrange: color.New(color.BgHiRed, color.FgBlack),
	model.ColorRed:    color.New(color.BgRed, color.FgWhite),
}

// ColorizeCell paints s with the background of the cell's sensed color.
func ColorizeCell(c model.Color, s string) string {
	if cc, ok := CellColors[c]; ok {
		return cc.Sprint(s)
	}
	return s
}

// --- Prompting and Usage ---

func (c *CLI) printUsage() {
	C.Header.Fprintln(c.out, "\n--- Ghostbust ---")
	fmt.Fprintln(c.out, "Usage:")
	fmt.Fprintln(c.out, "  go run ./cmd/ghostbust play")
	fmt.Fprintln(c.out, "    Hunt the ghost interactively.")
	fmt.Fprintln(c.out, "  go run ./cmd/ghostbust simulate [n]")
	fmt.Fprintln(c.out, "    Let the auto-player run n sessions (default 100) and report the results.")
	fmt.Fprintln(c.out, "\nFlags:")
	fmt.Fprintln(c.out, "  -config path      YAML or JSON session settings.")
	fmt.Fprintln(c.out, "  -seed n           Fix the random seed.")
	fmt.Fprintln(c.out, "  -loglevel debug   Trace every probe and update.")
}

func (c *CLI) printPlayHelp() {
	C.Header.Fprintln(c.out, "\n--- Play Mode Help ---")
	fmt.Fprintln(c.out, "x runs left to right from 0 and y runs top to bottom from 0.")

	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.AppendHeader(table.Row{"Command", "Alias", "Description"})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"probe x y", "p", "Spend an attempt to sense a cell."},
		{"bust x y", "b", "Commit a guess. You only get a few."},
		{"peep", "", "Toggle the probability overlay."},
		{"grid", "g", "Redraw the board."},
		{"reset", "r", "Start a new game."},
		{"help", "h", "Show this help message."},
		{"quit", "q", "Exit play mode."},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func (c *CLI) printStatus(g *game.Game) {
	C.Info.Fprintf(c.out, "Attempts left: %d   Busts left: %d   Status: %s\n",
		g.AttemptsRemaining(), g.BustsRemaining(), g.Status())
	if c.renderer != nil && c.renderer.Peeping && !g.Status().Terminal() {
		best := g.MostLikely()
		C.Hint.Fprintf(c.out, "Best guess: (%d,%d) at %.2f%%\n", best.X, best.Y, best.Probability*100)
	}
}
