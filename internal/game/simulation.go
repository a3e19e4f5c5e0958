package game

import (
	"fmt"

	"ghostbust/internal/ai"
	"ghostbust/internal/events"
	"ghostbust/internal/model"
)

// Summary aggregates the results of a batch of auto-played sessions.
type Summary struct {
	Games        int
	Wins         int
	Losses       int
	Probes       int
	Busts        int
	Degenerate   int
	LostOnProbes int
}

// WinRate is Wins/Games, or 0 for an empty batch.
func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// MeanProbes is the average number of attempts spent per session.
func (s Summary) MeanProbes() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Probes) / float64(s.Games)
}

// Tally implements events.Listener and counts what happened across sessions.
type Tally struct {
	Summary Summary
}

func (t *Tally) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.ResetEvent:
		t.Summary.Games++
	case events.ProbeEvent:
		t.Summary.Probes++
	case events.BustEvent:
		t.Summary.Busts++
	case events.DegenerateDistributionEvent:
		t.Summary.Degenerate++
	case events.GameOverEvent:
		switch event.Status {
		case model.StatusWon:
			t.Summary.Wins++
		case model.StatusLost:
			t.Summary.Losses++
			if event.Reason == ReasonOutOfAttempts {
				t.Summary.LostOnProbes++
			}
		}
	}
}

// RunSimulation plays n fresh sessions with the given auto-player. It is a
// pure, headless game loop.
func (g *Game) RunSimulation(player *ai.AutoPlayer, n int) (Summary, error) {
	tally := &Tally{}
	err := g.simulate(player, n, tally)
	return tally.Summary, err
}

// simulate keeps tally subscribed only while its sessions run.
func (g *Game) simulate(player *ai.AutoPlayer, n int, tally *Tally) error {
	g.EventManager.Subscribe(tally)
	defer g.EventManager.Unsubscribe(tally)

	for i := 0; i < n; i++ {
		g.Reset()
		if _, err := player.Play(g); err != nil {
			return fmt.Errorf("session %d: %w", i+1, err)
		}
	}
	return nil
}
