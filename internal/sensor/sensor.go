package sensor

import (
	"errors"

	"ghostbust/internal/model"
)

// ErrNoWeight is returned when a weighted draw has no positive mass to draw from.
var ErrNoWeight = errors.New("weights sum to zero")

// Sensor produces the noisy color and exact bearing for a probe.
type Sensor struct {
	table *model.ProbabilityTable
	rand  RandomSource
}

// NewSensor wires a sensor to its table and random source.
func NewSensor(table *model.ProbabilityTable, rand RandomSource) *Sensor {
	return &Sensor{table: table, rand: rand}
}

// Sense samples a color from the bucket for the probe-to-ghost distance and
// reports the ghost's bearing from the probe. Bounds are the caller's concern.
func (s *Sensor) Sense(probe, hidden model.Coord) (model.Color, model.Direction, error) {
	bucket := s.table.Lookup(model.Manhattan(probe, hidden))
	idx, err := WeightedIndex(s.rand, bucket.Weights())
	if err != nil {
		return model.ColorWhite, model.DirectionExact, err
	}
	return model.SensedColors[idx], model.DirectionOf(probe, hidden), nil
}

// WeightedIndex draws an index with probability weights[i]/sum(weights).
// The raw weights are normalized and turned into cumulative thresholds here,
// then inverted with a single uniform draw.
func WeightedIndex(src RandomSource, weights []float64) (int, error) {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1, ErrNoWeight
	}

	u := src.Float64()
	var cumulative float64
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w / total
		last = i
		if u < cumulative {
			return i, nil
		}
	}
	// Rounding can leave the final threshold a hair under 1.
	return last, nil
}
