package game

import (
	"io"
	"math/rand"
	"testing"

	"ghostbust/internal/config"
	"ghostbust/internal/events"
	"ghostbust/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder keeps every event published during a test.
type recorder struct {
	events []events.Event
}

func (r *recorder) HandleEvent(e events.Event) { r.events = append(r.events, e) }

// setupTestGame builds a started session on a w×h board with a seeded source
// and a logger that discards output.
func setupTestGame(t *testing.T, w, h int) (*Game, *recorder) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := config.Default()
	cfg.Width, cfg.Height = w, h
	rec := &recorder{}
	g, err := NewBuilder(cfg, log, rand.New(rand.NewSource(1))).WithListener(rec).Build()
	require.NoError(t, err)
	return g, rec
}

func TestNewRejectsEmptyBoards(t *testing.T) {
	for _, dims := range [][2]int{{0, 12}, {9, 0}, {-1, 3}} {
		_, err := New(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestBuildRejectsBadLimits(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	for _, limits := range [][2]int{{0, 2}, {30, 0}, {-1, -1}} {
		cfg := config.Default()
		cfg.Attempts, cfg.Busts = limits[0], limits[1]
		_, err := NewBuilder(cfg, log, nil).Build()
		assert.ErrorContains(t, err, "invalid limits", "limits %v", limits)
	}
}

func TestBuilderKeepsItsOwnConfig(t *testing.T) {
	// GIVEN a builder made from a config
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := config.Default()
	b := NewBuilder(cfg, log, rand.New(rand.NewSource(1)))

	// WHEN the caller edits the config afterwards
	cfg.Width, cfg.Attempts = 2, 1

	// THEN the game is built from the original settings
	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultWidth, g.Width())
	assert.Equal(t, config.DefaultAttempts, g.AttemptsRemaining())
}

func TestComputeInitialPriors(t *testing.T) {
	g, _ := setupTestGame(t, 9, 12)

	var sum float64
	for _, c := range g.Snapshot() {
		assert.Equal(t, 1.0/108, c.Probability)
		sum += c.Probability
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestPlaceHiddenEntity(t *testing.T) {
	// GIVEN a 3x3 board
	g, _ := setupTestGame(t, 3, 3)

	// WHEN the ghost is placed many times
	const draws = 10000
	counts := make(map[model.Coord]int)
	for i := 0; i < draws; i++ {
		p := g.PlaceHiddenEntity()
		require.True(t, p.X >= 0 && p.X < 3 && p.Y >= 0 && p.Y < 3, "out of bounds: %v", p)
		counts[p]++
	}

	// THEN every cell is picked about equally often
	require.Len(t, counts, 9)
	expected := float64(draws) / 9
	var chi2 float64
	for _, n := range counts {
		d := float64(n) - expected
		chi2 += d * d / expected
	}
	// 8 degrees of freedom, p = 0.001
	assert.Less(t, chi2, 26.12)
}

func TestProbe(t *testing.T) {
	t.Run("it charges an attempt, colors the cell and keeps the grid normalized", func(t *testing.T) {
		g, _ := setupTestGame(t, 9, 12)

		color, _, status, err := g.Probe(3, 4)

		require.NoError(t, err)
		assert.Equal(t, model.StatusInProgress, status)
		assert.Equal(t, 29, g.AttemptsRemaining())
		cell := g.Snapshot()[4*9+3]
		assert.True(t, cell.Visited)
		assert.Equal(t, color, cell.Color)
		assert.NotEqual(t, model.ColorWhite, cell.Color)

		var sum float64
		for _, c := range g.Snapshot() {
			sum += c.Probability
		}
		assert.InDelta(t, 1.0, sum, 1e-4)
	})

	t.Run("it reports the exact bearing of the ghost", func(t *testing.T) {
		g, _ := setupTestGame(t, 3, 3)
		g.ghost = model.Coord{X: 2, Y: 2}

		_, dir, _, err := g.Probe(0, 0)

		require.NoError(t, err)
		assert.Equal(t, model.DirectionSE, dir)
	})

	t.Run("a re-probe charges an attempt but leaves the board alone", func(t *testing.T) {
		g, rec := setupTestGame(t, 9, 12)
		first, _, _, err := g.Probe(1, 1)
		require.NoError(t, err)
		before := g.Snapshot()

		_, _, _, err = g.Probe(1, 1)

		require.NoError(t, err)
		assert.Equal(t, 28, g.AttemptsRemaining())
		assert.Equal(t, before, g.Snapshot())
		assert.Equal(t, first, g.Snapshot()[1*9+1].Color)
		last := rec.events[len(rec.events)-1].(events.ProbeEvent)
		assert.True(t, last.Revisit)
	})

	t.Run("it rejects coordinates off the board without charging", func(t *testing.T) {
		g, _ := setupTestGame(t, 9, 12)
		before := g.Snapshot()

		for _, p := range []model.Coord{{X: -1, Y: 0}, {X: 9, Y: 0}, {X: 0, Y: 12}} {
			_, _, _, err := g.Probe(p.X, p.Y)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		}
		assert.Equal(t, 30, g.AttemptsRemaining())
		assert.Equal(t, before, g.Snapshot())
	})

	t.Run("running out of attempts loses the game", func(t *testing.T) {
		g, rec := setupTestGame(t, 9, 12)
		var status model.Status
		for i := 0; i < 30; i++ {
			var err error
			_, _, status, err = g.Probe(i%9, i/9)
			require.NoError(t, err)
		}

		assert.Equal(t, model.StatusLost, status)
		assert.Equal(t, 0, g.AttemptsRemaining())
		over, ok := rec.events[len(rec.events)-1].(events.GameOverEvent)
		require.True(t, ok)
		assert.Equal(t, ReasonOutOfAttempts, over.Reason)

		_, _, _, err := g.Probe(0, 0)
		assert.ErrorIs(t, err, ErrGameOver)
	})
}

func TestProbeOnTheGhostIsMostlyRed(t *testing.T) {
	// GIVEN a 3x3 board with the ghost forced to the centre
	g, _ := setupTestGame(t, 3, 3)
	g.ghost = model.Coord{X: 1, Y: 1}

	// WHEN the centre is sensed many times
	const trials = 10000
	reds := 0
	for i := 0; i < trials; i++ {
		color, _, err := g.sensor.Sense(model.Coord{X: 1, Y: 1}, g.ghost)
		require.NoError(t, err)
		if color == model.ColorRed {
			reds++
		}
	}

	// THEN red is sensed at the bucket-0 rate
	assert.InDelta(t, 0.80, float64(reds)/trials, 0.02)
}

func TestBust(t *testing.T) {
	t.Run("a hit wins", func(t *testing.T) {
		g, _ := setupTestGame(t, 9, 12)
		ghost := g.Reveal()

		outcome, status, err := g.Bust(ghost.X, ghost.Y)

		require.NoError(t, err)
		assert.Equal(t, model.OutcomeHit, outcome)
		assert.Equal(t, model.StatusWon, status)
		assert.Equal(t, 1, g.BustsRemaining())
	})

	t.Run("a hit with the last bust still wins", func(t *testing.T) {
		g, _ := setupTestGame(t, 9, 12)
		ghost := g.Reveal()
		miss := model.Coord{X: (ghost.X + 1) % 9, Y: ghost.Y}

		outcome, status, err := g.Bust(miss.X, miss.Y)
		require.NoError(t, err)
		assert.Equal(t, model.OutcomeMiss, outcome)
		assert.Equal(t, model.StatusInProgress, status)

		outcome, status, err = g.Bust(ghost.X, ghost.Y)
		require.NoError(t, err)
		assert.Equal(t, model.OutcomeHit, outcome)
		assert.Equal(t, model.StatusWon, status)
		assert.Equal(t, 0, g.BustsRemaining())
	})

	t.Run("a miss with the last bust loses", func(t *testing.T) {
		g, rec := setupTestGame(t, 9, 12)
		ghost := g.Reveal()
		miss := model.Coord{X: ghost.X, Y: (ghost.Y + 1) % 12}

		_, _, err := g.Bust(miss.X, miss.Y)
		require.NoError(t, err)
		outcome, status, err := g.Bust(miss.X, miss.Y)

		require.NoError(t, err)
		assert.Equal(t, model.OutcomeOutOfBusts, outcome)
		assert.Equal(t, model.StatusLost, status)
		over := rec.events[len(rec.events)-1].(events.GameOverEvent)
		assert.Equal(t, ghost, over.Ghost)
	})

	t.Run("busting does not spend attempts", func(t *testing.T) {
		g, _ := setupTestGame(t, 9, 12)
		ghost := g.Reveal()
		_, _, err := g.Bust((ghost.X+1)%9, ghost.Y)
		require.NoError(t, err)
		assert.Equal(t, 30, g.AttemptsRemaining())
	})

	t.Run("it rejects coordinates off the board without spending a bust", func(t *testing.T) {
		g, _ := setupTestGame(t, 9, 12)
		_, _, err := g.Bust(9, 12)
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
		assert.Equal(t, 2, g.BustsRemaining())
	})
}

func TestReset(t *testing.T) {
	// GIVEN a session that has been played into the ground
	g, _ := setupTestGame(t, 9, 12)
	for i := 0; i < 5; i++ {
		_, _, _, err := g.Probe(i, i)
		require.NoError(t, err)
	}
	ghost := g.Reveal()
	_, _, err := g.Bust((ghost.X+1)%9, ghost.Y)
	require.NoError(t, err)
	oldID := g.ID()

	// WHEN it is reset
	g.Reset()

	// THEN it matches a freshly built session
	fresh, _ := setupTestGame(t, 9, 12)
	assert.Equal(t, fresh.Snapshot(), g.Snapshot())
	assert.Equal(t, 30, g.AttemptsRemaining())
	assert.Equal(t, 2, g.BustsRemaining())
	assert.Equal(t, model.StatusInProgress, g.Status())
	assert.NotEqual(t, oldID, g.ID())
	_, ok := g.LastObservation()
	assert.False(t, ok)
	for _, c := range g.Snapshot() {
		assert.False(t, c.Visited)
		assert.Equal(t, model.ColorWhite, c.Color)
	}
}

func TestDegenerateUpdateIsRecovered(t *testing.T) {
	// GIVEN a board with no probability mass left
	g, rec := setupTestGame(t, 3, 3)
	g.grid.Fill(0)

	// WHEN a probe lands
	_, _, status, err := g.Probe(0, 0)

	// THEN the session carries on with untouched probabilities and reports the problem
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, status)
	for _, c := range g.Snapshot() {
		assert.Zero(t, c.Probability)
	}
	var seen bool
	for _, e := range rec.events {
		if _, ok := e.(events.DegenerateDistributionEvent); ok {
			seen = true
		}
	}
	assert.True(t, seen)
}
