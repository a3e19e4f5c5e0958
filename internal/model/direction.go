package model

// Direction is the compass bearing of the ghost as seen from a probed cell.
// x grows East and y grows South.
type Direction int

const (
	DirectionExact Direction = iota
	DirectionN
	DirectionS
	DirectionE
	DirectionW
	DirectionNE
	DirectionNW
	DirectionSE
	DirectionSW
)

func (d Direction) String() string {
	return []string{"EXACT", "N", "S", "E", "W", "NE", "NW", "SE", "SW"}[d]
}

// DirectionOf returns the bearing of target relative to origin.
func DirectionOf(origin, target Coord) Direction {
	dx := sign(target.X - origin.X)
	dy := sign(target.Y - origin.Y)

	switch {
	case dx == 0 && dy == 0:
		return DirectionExact
	case dx == 0 && dy < 0:
		return DirectionN
	case dx == 0 && dy > 0:
		return DirectionS
	case dy == 0 && dx > 0:
		return DirectionE
	case dy == 0 && dx < 0:
		return DirectionW
	case dx > 0 && dy < 0:
		return DirectionNE
	case dx < 0 && dy < 0:
		return DirectionNW
	case dx > 0 && dy > 0:
		return DirectionSE
	default:
		return DirectionSW
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
