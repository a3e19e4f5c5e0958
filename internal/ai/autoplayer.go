package ai

import (
	"fmt"

	"ghostbust/internal/model"

	"github.com/sirupsen/logrus"
)

// DefaultConfidence is the posterior mass at which the auto-player commits to a bust.
const DefaultConfidence = 0.6

// Session is the action surface the auto-player drives.
type Session interface {
	Snapshot() []model.Cell
	AttemptsRemaining() int
	BustsRemaining() int
	Status() model.Status
	Probe(x, y int) (model.Color, model.Direction, model.Status, error)
	Bust(x, y int) (model.Outcome, model.Status, error)
}

// AutoPlayer plays a session headlessly by trying its strategies in priority order.
type AutoPlayer struct {
	Confidence float64

	strategies []Strategy
	chooser    Chooser
	log        logrus.FieldLogger
	missed     map[model.Coord]struct{}
}

// NewAutoPlayer is the constructor for the auto-player. It injects dependencies.
func NewAutoPlayer(logger *logrus.Logger, chooser Chooser) *AutoPlayer {
	return &AutoPlayer{
		Confidence: DefaultConfidence,
		chooser:    chooser,
		log:        logger,
		missed:     make(map[model.Coord]struct{}),
		strategies: []Strategy{
			&ExploitStrategy{},
			&EndgameStrategy{},
			&ExploreStrategy{},
		},
	}
}

// NextAction asks each strategy in turn and returns the first decision.
func (p *AutoPlayer) NextAction(s Session) Action {
	v := View{
		Cells:             s.Snapshot(),
		AttemptsRemaining: s.AttemptsRemaining(),
		BustsRemaining:    s.BustsRemaining(),
		Missed:            p.missed,
	}
	for _, strategy := range p.strategies {
		if action, ok := strategy.Decide(p, v); ok {
			return action
		}
	}
	// Every cell is probed and nothing is confident enough: commit to the best remaining guess.
	best, _ := p.bestCell(v, func(model.Cell) bool { return true })
	p.log.Infof("Board exhausted, busting %v.", best)
	return Action{Kind: ActionBust, Target: best}
}

// Step plays one move and returns it.
func (p *AutoPlayer) Step(s Session) (Action, error) {
	action := p.NextAction(s)
	switch action.Kind {
	case ActionBust:
		outcome, _, err := s.Bust(action.Target.X, action.Target.Y)
		if err != nil {
			return action, fmt.Errorf("bust %v: %w", action.Target, err)
		}
		if outcome != model.OutcomeHit {
			p.missed[action.Target] = struct{}{}
		}
	default:
		if _, _, _, err := s.Probe(action.Target.X, action.Target.Y); err != nil {
			return action, fmt.Errorf("probe %v: %w", action.Target, err)
		}
	}
	return action, nil
}

// Play runs the session to a terminal status.
func (p *AutoPlayer) Play(s Session) (model.Status, error) {
	p.missed = make(map[model.Coord]struct{})
	for !s.Status().Terminal() {
		if _, err := p.Step(s); err != nil {
			return s.Status(), err
		}
	}
	return s.Status(), nil
}
