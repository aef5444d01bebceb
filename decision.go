package entsent

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Thresholds are the cut-offs used by Reduce.
type Thresholds struct {
	Plus  float64 // Means above Plus are positive
	Minus float64 // Means below Minus are negative
	Mixed float64 // Neutral means with a variance above Mixed are mixed
}

// DefaultThresholds returns the standard decision thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{Plus: 0.25, Minus: -0.25, Mixed: 0.5}
}

// A Decision is the ternary sentiment label derived from anchor scores.
type Decision struct {
	Label    Polarity
	Mixed    bool // Neutral label reached through a high variance
	Mean     float64
	Variance float64
}

// Reduce derives a sentiment decision from a set of anchor scores.
func Reduce(scores []float64, t Thresholds) (Decision, error) {
	if len(scores) == 0 {
		return Decision{}, ErrNoScorableMentions
	}

	d := Decision{
		Mean:     stat.Mean(scores, nil),
		Variance: sampleVariance(scores),
	}
	switch {
	case d.Mean < t.Minus:
		d.Label = Negative
	case d.Mean > t.Plus:
		d.Label = Positive
	case d.Variance > t.Mixed:
		d.Label = Neutral
		d.Mixed = true
	default:
		d.Label = Neutral
	}
	return d, nil
}

// ScoreSummary holds the distribution statistics of an entity's scores.
type ScoreSummary struct {
	Len      int
	Min      float64
	Max      float64
	Mean     float64
	Variance float64
}

// Summarize computes count, extremes, mean and sample variance of scores.
func Summarize(scores []float64) (ScoreSummary, error) {
	if len(scores) == 0 {
		return ScoreSummary{}, ErrNoScorableMentions
	}
	return ScoreSummary{
		Len:      len(scores),
		Min:      floats.Min(scores),
		Max:      floats.Max(scores),
		Mean:     stat.Mean(scores, nil),
		Variance: sampleVariance(scores),
	}, nil
}

// sampleVariance is the n-1 variance, defined as 0 for a single value.
func sampleVariance(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	return stat.Variance(x, nil)
}
