package model

// MaxBucket is the last distance bucket. It covers every distance of 5 or more.
const MaxBucket = 5

// Bucket holds the raw probability of sensing each color at one distance class.
// The four values form a probability mass function.
type Bucket struct {
	Green, Yellow, Orange, Red float64
}

// Likelihood returns P(color | distance bucket). White is never sensed.
func (b Bucket) Likelihood(c Color) float64 {
	switch c {
	case ColorGreen:
		return b.Green
	case ColorYellow:
		return b.Yellow
	case ColorOrange:
		return b.Orange
	case ColorRed:
		return b.Red
	default:
		return 0
	}
}

// Weights returns the likelihoods in SensedColors order.
func (b Bucket) Weights() []float64 {
	return []float64{b.Green, b.Yellow, b.Orange, b.Red}
}

// Sum is the total mass of the bucket.
func (b Bucket) Sum() float64 {
	return b.Green + b.Yellow + b.Orange + b.Red
}

// ProbabilityTable maps a clamped Manhattan distance to its color bucket.
// Near cells favour red and far cells favour green.
type ProbabilityTable struct {
	buckets [MaxBucket + 1]Bucket
}

// NewProbabilityTable returns the fixed sensor table.
func NewProbabilityTable() *ProbabilityTable {
	return &ProbabilityTable{buckets: [MaxBucket + 1]Bucket{
		{Green: 0.05, Yellow: 0.05, Orange: 0.10, Red: 0.80},
		{Green: 0.05, Yellow: 0.10, Orange: 0.75, Red: 0.10},
		{Green: 0.05, Yellow: 0.10, Orange: 0.75, Red: 0.10},
		{Green: 0.10, Yellow: 0.70, Orange: 0.15, Red: 0.05},
		{Green: 0.10, Yellow: 0.70, Orange: 0.15, Red: 0.05},
		{Green: 0.70, Yellow: 0.10, Orange: 0.10, Red: 0.10},
	}}
}

// Lookup returns the bucket for a distance. Out-of-range distances are clamped.
func (t *ProbabilityTable) Lookup(distance int) Bucket {
	return t.buckets[ClampDistance(distance)]
}

// ClampDistance maps any distance onto [0, MaxBucket].
func ClampDistance(distance int) int {
	if distance < 0 {
		return 0
	}
	if distance > MaxBucket {
		return MaxBucket
	}
	return distance
}
