package ai

import (
	"ghostbust/internal/model"
)

// ActionKind says whether the auto-player probes or busts.
type ActionKind int

const (
	ActionProbe ActionKind = iota
	ActionBust
)

func (k ActionKind) String() string {
	return []string{"probe", "bust"}[k]
}

// Action is one move chosen by a strategy.
type Action struct {
	Kind   ActionKind
	Target model.Coord
}

// View is what a strategy may look at when choosing a move.
type View struct {
	Cells             []model.Cell
	AttemptsRemaining int
	BustsRemaining    int
	Missed            map[model.Coord]struct{}
}

// Strategy defines the interface for the auto-player's decision-making logic.
type Strategy interface {
	Decide(p *AutoPlayer, v View) (Action, bool)
}

// --- Strategy Implementations ---

// 1. ExploitStrategy busts as soon as one cell holds enough of the mass.
type ExploitStrategy struct{}

func (s *ExploitStrategy) Decide(p *AutoPlayer, v View) (Action, bool) {
	best, prob := p.bestCell(v, func(model.Cell) bool { return true })
	if prob < p.Confidence {
		return Action{}, false
	}
	p.log.Infof("Strategy: EXPLOIT. %v holds %.1f%% of the mass.", best, prob*100)
	return Action{Kind: ActionBust, Target: best}, true
}

// 2. EndgameStrategy busts on the last attempt, since a further probe would lose the game.
type EndgameStrategy struct{}

func (s *EndgameStrategy) Decide(p *AutoPlayer, v View) (Action, bool) {
	if v.AttemptsRemaining > 1 {
		return Action{}, false
	}
	best, prob := p.bestCell(v, func(model.Cell) bool { return true })
	p.log.Infof("Strategy: ENDGAME. Last attempt, busting %v at %.1f%%.", best, prob*100)
	return Action{Kind: ActionBust, Target: best}, true
}

// 3. ExploreStrategy probes the most likely cell not yet probed. A second
// probe of a cell leaves the board unchanged, so it yields once every cell is probed.
type ExploreStrategy struct{}

func (s *ExploreStrategy) Decide(p *AutoPlayer, v View) (Action, bool) {
	best, prob := p.bestCell(v, func(c model.Cell) bool { return !c.Visited })
	if prob < 0 {
		return Action{}, false
	}
	p.log.Debugf("Strategy: EXPLORE. Probing %v at %.1f%%.", best, prob*100)
	return Action{Kind: ActionProbe, Target: best}, true
}

// tieTolerance groups cells whose probabilities differ only by rounding.
const tieTolerance = 1e-12

// bestCell returns the most probable eligible cell that has not been missed.
// Ties go to the chooser. It returns a negative probability when nothing is eligible.
func (p *AutoPlayer) bestCell(v View, eligible func(model.Cell) bool) (model.Coord, float64) {
	best := -1.0
	var ties []model.Coord
	for _, c := range v.Cells {
		if _, missed := v.Missed[c.Coord()]; missed || !eligible(c) {
			continue
		}
		switch {
		case c.Probability > best+tieTolerance:
			best = c.Probability
			ties = []model.Coord{c.Coord()}
		case c.Probability >= best-tieTolerance:
			ties = append(ties, c.Coord())
		}
	}
	if len(ties) == 0 {
		return model.Coord{}, -1
	}
	return p.chooser.Choose(ties), best
}
