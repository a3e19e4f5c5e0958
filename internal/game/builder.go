package game

import (
	"fmt"
	"math/rand"

	"ghostbust/internal/config"
	"ghostbust/internal/events"

	"github.com/sirupsen/logrus"
)

// GameBuilder provides a step-by-step API for constructing a Game object.
type GameBuilder struct {
	cfg          *config.GameConfig
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	listeners    []events.Listener
}

// NewBuilder creates a new GameBuilder with its required dependencies.
func NewBuilder(cfg *config.GameConfig, logger *logrus.Logger, rand *rand.Rand) *GameBuilder {
	return &GameBuilder{
		cfg:          cfg.DeepCopy(),
		log:          logger,
		rand:         rand,
		eventManager: events.NewManager(),
	}
}

// WithListener subscribes l before the first session starts, so it sees the opening ResetEvent.
func (b *GameBuilder) WithListener(l events.Listener) *GameBuilder {
	b.listeners = append(b.listeners, l)
	return b
}

// Build constructs the Game, hides the ghost and sets the uniform prior.
func (b *GameBuilder) Build() (*Game, error) {
	if b.cfg.Attempts <= 0 || b.cfg.Busts <= 0 {
		return nil, fmt.Errorf("invalid limits: %d attempts, %d busts", b.cfg.Attempts, b.cfg.Busts)
	}

	opts := []Option{
		WithLogger(b.log),
		WithEventManager(b.eventManager),
		WithLimits(b.cfg.Attempts, b.cfg.Busts),
	}
	if b.rand != nil {
		opts = append(opts, WithRandom(b.rand))
	}
	g, err := New(b.cfg.Width, b.cfg.Height, opts...)
	if err != nil {
		return nil, err
	}
	for _, l := range b.listeners {
		b.eventManager.Subscribe(l)
	}
	g.Reset()
	return g, nil
}
