package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"ghostbust/internal/ai"
	"ghostbust/internal/config"
	"ghostbust/internal/events"
	"ghostbust/internal/model"
	"ghostbust/internal/sensor"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Reasons carried by GameOverEvent.
const (
	ReasonBusted        = "ghost busted"
	ReasonOutOfBusts    = "out of busts"
	ReasonOutOfAttempts = "out of attempts"
)

// Observation is what the player learned from one probe.
type Observation struct {
	Probe     model.Coord
	Color     model.Color
	Direction model.Direction
}

// Game represents the state and logic of a single ghostbust session.
// It is driven by one caller at a time and is not safe for concurrent use.
type Game struct {
	EventManager *events.Manager

	id       string
	grid     *model.Grid
	table    *model.ProbabilityTable
	sensor   *sensor.Sensor
	updater  *ai.PosteriorUpdater
	rand     sensor.RandomSource
	log      *logrus.Logger
	ghost    model.Coord
	attempts int
	busts    int
	status   model.Status
	last     *Observation

	maxAttempts int
	maxBusts    int
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithRandom injects the randomness used for placement and sensing.
func WithRandom(r sensor.RandomSource) Option {
	return func(g *Game) { g.rand = r }
}

// WithLogger injects the logger.
func WithLogger(l *logrus.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithEventManager injects the bus that observers subscribe to.
func WithEventManager(m *events.Manager) Option {
	return func(g *Game) { g.EventManager = m }
}

// WithLimits overrides the per-session attempt and bust allowances.
func WithLimits(attempts, busts int) Option {
	return func(g *Game) {
		g.maxAttempts = attempts
		g.maxBusts = busts
	}
}

// New constructs a session on a width×height board. The board starts white and
// empty; call PlaceHiddenEntity and ComputeInitialPriors, or Reset, to begin.
func New(width, height int, opts ...Option) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	g := &Game{
		id:          uuid.NewString(),
		grid:        model.NewGrid(width, height),
		table:       model.NewProbabilityTable(),
		maxAttempts: config.DefaultAttempts,
		maxBusts:    config.DefaultBusts,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.log == nil {
		g.log = logrus.New()
		g.log.SetOutput(io.Discard)
	}
	if g.EventManager == nil {
		g.EventManager = events.NewManager()
	}

	g.sensor = sensor.NewSensor(g.table, g.rand)
	g.updater = ai.NewPosteriorUpdater(g.table)
	g.attempts = g.maxAttempts
	g.busts = g.maxBusts
	g.status = model.StatusInProgress
	return g, nil
}

// PlaceHiddenEntity hides the ghost on a uniformly random cell and returns it.
func (g *Game) PlaceHiddenEntity() model.Coord {
	g.ghost = model.Coord{X: g.rand.Intn(g.grid.Width()), Y: g.rand.Intn(g.grid.Height())}
	g.log.WithField("session", g.id).Debugf("Ghost hidden at %v.", g.ghost)
	return g.ghost
}

// ComputeInitialPriors spreads probability uniformly over the board.
func (g *Game) ComputeInitialPriors() {
	g.grid.Fill(1.0 / float64(g.grid.Len()))
}

// Reset starts a new session on the same board and table.
func (g *Game) Reset() {
	g.id = uuid.NewString()
	g.grid.Clear()
	g.attempts = g.maxAttempts
	g.busts = g.maxBusts
	g.status = model.StatusInProgress
	g.last = nil
	g.PlaceHiddenEntity()
	g.ComputeInitialPriors()

	g.log.WithField("session", g.id).Infof("New %dx%d session started.", g.grid.Width(), g.grid.Height())
	g.EventManager.Publish(events.ResetEvent{
		SessionID: g.id,
		Width:     g.grid.Width(),
		Height:    g.grid.Height(),
		Attempts:  g.attempts,
		Busts:     g.busts,
	})
}

// Probe senses at (x, y), spending one attempt even when the cell was probed
// before. A first visit colors the cell and updates the posterior. A revisit
// reports a fresh reading but leaves the board as it was.
func (g *Game) Probe(x, y int) (model.Color, model.Direction, model.Status, error) {
	p := model.Coord{X: x, Y: y}
	if err := g.checkAction(p); err != nil {
		return model.ColorWhite, model.DirectionExact, g.status, err
	}

	color, dir, err := g.sensor.Sense(p, g.ghost)
	if err != nil {
		return model.ColorWhite, model.DirectionExact, g.status, fmt.Errorf("sense %v: %w", p, err)
	}
	g.attempts--
	g.last = &Observation{Probe: p, Color: color, Direction: dir}

	log := g.log.WithFields(logrus.Fields{"session": g.id, "x": x, "y": y})
	cell := g.grid.At(p)
	revisit := cell.Visited
	if revisit {
		log.Debugf("Re-probe sensed %s %s; board unchanged.", color, dir)
	} else {
		cell.Color = color
		cell.Visited = true
		log.Debugf("Probe sensed %s %s.", color, dir)
		if err := g.updater.Update(g.grid, color, p, dir); err != nil {
			if !errors.Is(err, ErrDegenerateDistribution) {
				return color, dir, g.status, err
			}
			log.Warnf("Skipped posterior update: %v", err)
			g.EventManager.Publish(events.DegenerateDistributionEvent{SessionID: g.id, Probe: p, Color: color, Direction: dir})
		}
	}

	if g.attempts <= 0 {
		g.status = model.StatusLost
	}
	g.EventManager.Publish(events.ProbeEvent{
		SessionID:         g.id,
		Probe:             p,
		Color:             color,
		Direction:         dir,
		Revisit:           revisit,
		AttemptsRemaining: g.attempts,
		Status:            g.status,
	})
	if g.status == model.StatusLost {
		g.gameOver(ReasonOutOfAttempts)
	}
	return color, dir, g.status, nil
}

// Bust commits a guess at (x, y). The bust is spent before the guess is
// judged, and a hit wins even when it uses the last bust.
func (g *Game) Bust(x, y int) (model.Outcome, model.Status, error) {
	p := model.Coord{X: x, Y: y}
	if err := g.checkAction(p); err != nil {
		return model.OutcomeMiss, g.status, err
	}

	g.busts--
	var outcome model.Outcome
	switch {
	case p == g.ghost:
		outcome = model.OutcomeHit
		g.status = model.StatusWon
	case g.busts <= 0:
		outcome = model.OutcomeOutOfBusts
		g.status = model.StatusLost
	default:
		outcome = model.OutcomeMiss
	}

	g.log.WithFields(logrus.Fields{"session": g.id, "x": x, "y": y}).Debugf("Bust: %s, %d left.", outcome, g.busts)
	g.EventManager.Publish(events.BustEvent{
		SessionID:      g.id,
		Target:         p,
		Outcome:        outcome,
		BustsRemaining: g.busts,
		Status:         g.status,
	})
	switch outcome {
	case model.OutcomeHit:
		g.gameOver(ReasonBusted)
	case model.OutcomeOutOfBusts:
		g.gameOver(ReasonOutOfBusts)
	}
	return outcome, g.status, nil
}

func (g *Game) checkAction(p model.Coord) error {
	if !g.grid.Contains(p) {
		return fmt.Errorf("%w: (%d,%d) is outside the %dx%d board", ErrInvalidCoordinate, p.X, p.Y, g.grid.Width(), g.grid.Height())
	}
	if g.status.Terminal() {
		return fmt.Errorf("%w: session %s", ErrGameOver, g.status)
	}
	return nil
}

func (g *Game) gameOver(reason string) {
	g.log.WithField("session", g.id).Infof("Game %s: %s.", g.status, reason)
	g.EventManager.Publish(events.GameOverEvent{SessionID: g.id, Status: g.status, Ghost: g.ghost, Reason: reason})
}

// --- Read-only accessors ---

func (g *Game) ID() string             { return g.id }
func (g *Game) Width() int             { return g.grid.Width() }
func (g *Game) Height() int            { return g.grid.Height() }
func (g *Game) AttemptsRemaining() int { return g.attempts }
func (g *Game) BustsRemaining() int    { return g.busts }
func (g *Game) Status() model.Status   { return g.status }
func (g *Game) Snapshot() []model.Cell { return g.grid.Snapshot() }
func (g *Game) MostLikely() model.Cell { return g.grid.MostLikely() }

// Reveal returns the ghost's position. Presentation layers show it once the game is over.
func (g *Game) Reveal() model.Coord { return g.ghost }

// LastObservation returns the most recent probe reading, if any.
func (g *Game) LastObservation() (Observation, bool) {
	if g.last == nil {
		return Observation{}, false
	}
	return *g.last, true
}
