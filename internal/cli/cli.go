package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"ghostbust/internal/ai"
	"ghostbust/internal/config"
	"ghostbust/internal/events"
	"ghostbust/internal/game"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// CLI manages all command-line interactions.
type CLI struct {
	log      *logrus.Logger
	line     *liner.State
	out      io.Writer
	renderer *SessionRenderer
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	return &CLI{
		log: log,
		out: os.Stdout,
	}
}

// Run is the main entry point for the CLI application.
func (c *CLI) Run(args []string, cfg *config.GameConfig, rand *rand.Rand) error {
	if len(args) < 1 {
		c.printUsage()
		return errors.New("no command provided")
	}

	switch args[0] {
	case "play":
		return c.runPlayMode(cfg, rand)
	case "simulate":
		n := 100
		if len(args) > 2 {
			c.printUsage()
			return errors.New("invalid arguments for 'simulate' command")
		}
		if len(args) == 2 {
			var err error
			if n, err = strconv.Atoi(args[1]); err != nil || n <= 0 {
				return fmt.Errorf("invalid session count '%s'", args[1])
			}
		}
		return c.runSimulationMode(cfg, n, rand)
	default:
		c.printUsage()
		return fmt.Errorf("unknown command '%s'", args[0])
	}
}

func (c *CLI) runSimulationMode(cfg *config.GameConfig, n int, rand *rand.Rand) error {
	C.Header.Fprintf(c.out, "--- Running %d Auto-Played Sessions ---\n", n)

	g, err := game.NewBuilder(cfg, c.log, rand).Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}
	player := ai.NewAutoPlayer(c.log, ai.NewRandomChooser(rand))

	summary, err := g.RunSimulation(player, n)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	RenderSummary(c.out, cfg, summary)
	return nil
}

func (c *CLI) runPlayMode(cfg *config.GameConfig, rand *rand.Rand) error {
	c.line = liner.NewLiner()
	c.line.SetCtrlCAborts(true)
	defer c.line.Close()

	renderer := NewSessionRenderer(c.out)
	c.renderer = renderer
	trace := events.ListenerFunc(func(e events.Event) {
		c.log.Debugf("Event %T: %+v", e, e)
	})
	g, err := game.NewBuilder(cfg, c.log, rand).WithListener(renderer).WithListener(trace).Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}

	C.Info.Fprintln(c.out, "\nFind the ghost. Probe cells for hints, then bust where you think it hides.")
	c.printPlayHelp()
	RenderGrid(c.out, g.Snapshot(), g.Width(), g.Height(), renderer.Peeping)

	// Main command loop for play mode
	for {
		input, err := c.line.Prompt("(ghostbust) ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				C.Info.Fprintln(c.out, "\nGoodbye!")
				return nil
			}
			return fmt.Errorf("error reading line: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)
		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "probe", "p":
			c.handleProbeCommand(g, parts[1:])
		case "bust", "b":
			c.handleBustCommand(g, parts[1:])
		case "peep":
			renderer.Peeping = !renderer.Peeping
			RenderGrid(c.out, g.Snapshot(), g.Width(), g.Height(), renderer.Peeping)
		case "grid", "g":
			RenderGrid(c.out, g.Snapshot(), g.Width(), g.Height(), renderer.Peeping)
		case "reset", "r":
			g.Reset()
			RenderGrid(c.out, g.Snapshot(), g.Width(), g.Height(), renderer.Peeping)
		case "help", "h":
			c.printPlayHelp()
		case "quit", "q":
			C.Info.Fprintln(c.out, "Exiting play mode.")
			return nil
		default:
			C.Warn.Fprintf(c.out, "Unknown command '%s'. Type 'help' for a list of commands.\n", cmd)
		}
	}
}

func (c *CLI) handleProbeCommand(g *game.Game, args []string) {
	x, y, err := parseCoord(args)
	if err != nil {
		C.Warn.Fprintf(c.out, "Usage: probe <x> <y> (%v)\n", err)
		return
	}
	if _, _, _, err := g.Probe(x, y); err != nil {
		c.warnActionError(err)
		return
	}
	RenderGrid(c.out, g.Snapshot(), g.Width(), g.Height(), c.renderer.Peeping)
	c.printStatus(g)
}

func (c *CLI) handleBustCommand(g *game.Game, args []string) {
	x, y, err := parseCoord(args)
	if err != nil {
		C.Warn.Fprintf(c.out, "Usage: bust <x> <y> (%v)\n", err)
		return
	}
	if _, _, err := g.Bust(x, y); err != nil {
		c.warnActionError(err)
		return
	}
	c.printStatus(g)
}

func (c *CLI) warnActionError(err error) {
	switch {
	case errors.Is(err, game.ErrInvalidCoordinate):
		C.Warn.Fprintf(c.out, "%v\n", err)
	case errors.Is(err, game.ErrGameOver):
		C.Warn.Fprintln(c.out, "The game is over. Type 'reset' to play again.")
	default:
		c.log.Errorf("Action failed: %v", err)
	}
}

func parseCoord(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, errors.New("expected two coordinates")
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad y: %w", err)
	}
	return x, y, nil
}
