package ai

import (
	"math/rand"
	"sort"

	"ghostbust/internal/model"
)

// Chooser defines an interface for selecting a single cell from a list of equally good options.
// This allows us to swap out random and deterministic selection strategies.
type Chooser interface {
	Choose(cells []model.Coord) model.Coord
}

// --- Implementations ---

// RandomChooser implements the Chooser interface by picking an element randomly.
type RandomChooser struct {
	rand *rand.Rand
}

// NewRandomChooser creates a new random chooser.
func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand}
}

func (r *RandomChooser) Choose(cells []model.Coord) model.Coord {
	if len(cells) == 0 {
		return model.Coord{}
	}
	return cells[r.rand.Intn(len(cells))]
}

// DeterministicChooser implements the Chooser interface by always picking the first
// cell in row-major order. This is used for predictable testing.
type DeterministicChooser struct{}

func (d *DeterministicChooser) Choose(cells []model.Coord) model.Coord {
	if len(cells) == 0 {
		return model.Coord{}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells[0]
}
