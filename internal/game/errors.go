package game

import (
	"errors"

	"ghostbust/internal/ai"
)

var (
	// ErrInvalidCoordinate rejects a probe or bust outside the board. Nothing is mutated.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidDimensions rejects a board with no cells.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrGameOver rejects actions once the session is won or lost.
	ErrGameOver = errors.New("game is over")
	// ErrDegenerateDistribution is recovered inside Probe and only surfaces through events and logs.
	ErrDegenerateDistribution = ai.ErrDegenerateDistribution
)
