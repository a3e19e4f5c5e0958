package cli

import (
	"fmt"
	"io"
	"strconv"

	"ghostbust/internal/config"
	"ghostbust/internal/events"
	"ghostbust/internal/game"
	"ghostbust/internal/model"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// SessionRenderer implements the events.Listener interface to print game state to the console.
type SessionRenderer struct {
	Peeping bool
	out     io.Writer
}

func NewSessionRenderer(out io.Writer) *SessionRenderer {
	return &SessionRenderer{Peeping: true, out: out}
}

// HandleEvent is the central dispatcher for rendering events.
func (r *SessionRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.ResetEvent:
		C.Header.Fprintf(r.out, "\n--- New Game: %dx%d board, %d attempts, %d busts ---\n",
			event.Width, event.Height, event.Attempts, event.Busts)
	case events.ProbeEvent:
		fmt.Fprintf(r.out, "(%d,%d) reads %s. ", event.Probe.X, event.Probe.Y, ColorizeCell(event.Color, " "+event.Color.String()+" "))
		C.Hint.Fprintf(r.out, "%s %s\n", event.Direction, DirectionArrow(event.Direction))
		if event.Revisit {
			C.Warn.Fprintln(r.out, "You already probed that cell. The attempt is spent but the board is unchanged.")
		}
	case events.BustEvent:
		if event.Outcome == model.OutcomeMiss {
			C.Warn.Fprintf(r.out, "Missed at (%d,%d)! %d bust(s) left.\n", event.Target.X, event.Target.Y, event.BustsRemaining)
		}
	case events.DegenerateDistributionEvent:
		C.Warn.Fprintln(r.out, "That reading contradicts everything so far; the board was left as it was.")
	case events.GameOverEvent:
		r.renderGameResult(event)
	}
}

func (r *SessionRenderer) renderGameResult(event events.GameOverEvent) {
	C.Header.Fprintln(r.out, "\n--- GAME OVER ---")
	switch event.Status {
	case model.StatusWon:
		C.Win.Fprintf(r.out, "You busted the ghost at (%d,%d)! You win!\n", event.Ghost.X, event.Ghost.Y)
	default:
		C.Lose.Fprintf(r.out, "You lose: %s. The ghost was at (%d,%d).\n", event.Reason, event.Ghost.X, event.Ghost.Y)
	}
	C.Info.Fprintln(r.out, "Type 'reset' to play again.")
}

// DirectionArrow returns a glyph for a bearing.
func DirectionArrow(d model.Direction) string {
	switch d {
	case model.DirectionN:
		return "↑"
	case model.DirectionS:
		return "↓"
	case model.DirectionE:
		return "→"
	case model.DirectionW:
		return "←"
	case model.DirectionNE:
		return "↗"
	case model.DirectionNW:
		return "↖"
	case model.DirectionSE:
		return "↘"
	case model.DirectionSW:
		return "↙"
	default:
		return "★"
	}
}

// RenderGrid displays the board in a formatted table. With peeping on, each
// cell shows its posterior probability.
func RenderGrid(out io.Writer, cells []model.Cell, width, height int, peeping bool) {
	t := table.NewWriter()
	t.SetOutputMirror(out)

	header := table.Row{"y\\x"}
	for x := 0; x < width; x++ {
		header = append(header, x)
	}
	t.AppendHeader(header)

	for y := 0; y < height; y++ {
		row := table.Row{y}
		for x := 0; x < width; x++ {
			cell := cells[y*width+x]
			label := "      "
			if peeping {
				label = fmt.Sprintf("%5.2f%%", cell.Probability*100)
			}
			row = append(row, ColorizeCell(cell.Color, label))
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false
	configs := []table.ColumnConfig{{Number: 1, Align: text.AlignRight}}
	for x := 0; x < width; x++ {
		configs = append(configs, table.ColumnConfig{Number: x + 2, Align: text.AlignCenter})
	}
	t.SetColumnConfigs(configs)
	t.Render()
}

// RenderSummary prints the results of a simulation batch.
func RenderSummary(out io.Writer, cfg *config.GameConfig, s game.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("Auto-player on a %dx%d board", cfg.Width, cfg.Height))
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Sessions", s.Games},
		{"Wins", C.Win.Sprint(s.Wins)},
		{"Losses", C.Lose.Sprint(s.Losses)},
		{"Lost on attempts", s.LostOnProbes},
		{"Win rate", strconv.FormatFloat(s.WinRate()*100, 'f', 1, 64) + "%"},
		{"Mean attempts used", strconv.FormatFloat(s.MeanProbes(), 'f', 2, 64)},
		{"Busts", s.Busts},
		{"Skipped updates", s.Degenerate},
	})
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
}
