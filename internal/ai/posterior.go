package ai

import (
	"errors"
	"math"

	"ghostbust/internal/model"
)

// ErrDegenerateDistribution means an update left no probability mass to normalize.
var ErrDegenerateDistribution = errors.New("degenerate distribution: posterior mass is zero")

const (
	// MatchWeight scales cells whose bearing to the probe agrees with the hint.
	MatchWeight = 0.75
	// MismatchWeight scales every other cell, whatever label they disagree on.
	MismatchWeight = 0.25
)

// PosteriorUpdater folds one probe observation into the board's distribution.
type PosteriorUpdater struct {
	table *model.ProbabilityTable
}

func NewPosteriorUpdater(table *model.ProbabilityTable) *PosteriorUpdater {
	return &PosteriorUpdater{table: table}
}

// Update applies Bayes' rule to every cell for the observed color and bearing
// at probe, then renormalizes. If the unnormalized mass is zero (or not
// finite) the grid is left untouched and ErrDegenerateDistribution is returned.
func (u *PosteriorUpdater) Update(grid *model.Grid, color model.Color, probe model.Coord, dir model.Direction) error {
	cells := grid.Cells()
	posteriors := make([]float64, len(cells))

	var sum float64
	for i := range cells {
		hypothesis := cells[i].Coord()
		likelihood := u.table.Lookup(model.Manhattan(probe, hypothesis)).Likelihood(color)
		weight := MismatchWeight
		if model.DirectionOf(probe, hypothesis) == dir {
			weight = MatchWeight
		}
		posteriors[i] = cells[i].Probability * likelihood * weight
		sum += posteriors[i]
	}

	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return ErrDegenerateDistribution
	}

	for i := range cells {
		cells[i].Probability = posteriors[i] / sum
	}
	return nil
}
