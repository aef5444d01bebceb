package entsent

import (
	"errors"
	"math"
	"testing"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		desc     string
		scores   []float64
		label    Polarity
		mixed    bool
		mean     float64
		variance float64
	}{
		{"Single positive", []float64{0.5}, Positive, false, 0.5, 0},
		{"Single negative", []float64{-0.3}, Negative, false, -0.3, 0},
		{"Mean on the positive threshold", []float64{0.25}, Neutral, false, 0.25, 0},
		{"Mean on the negative threshold", []float64{-0.25}, Neutral, false, -0.25, 0},
		{"Mixed", []float64{1, -1}, Neutral, true, 0, 2},
		{"Low variance neutral", []float64{0.2, -0.2}, Neutral, false, 0, 0.08},
		{"Polar mean wins over variance", []float64{1, 1, -0.5}, Positive, false, 0.5, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			d, err := Reduce(tt.scores, DefaultThresholds())
			if err != nil {
				t.Fatalf("Reduce failed: %v", err)
			}
			if d.Label != tt.label || d.Mixed != tt.mixed {
				t.Errorf("Expected %s (mixed=%v), got %s (mixed=%v)", tt.label, tt.mixed, d.Label, d.Mixed)
			}
			if math.Abs(d.Mean-tt.mean) > 1e-9 {
				t.Errorf("Expected mean %.4f, got %.4f", tt.mean, d.Mean)
			}
			if math.Abs(d.Variance-tt.variance) > 1e-9 {
				t.Errorf("Expected variance %.4f, got %.4f", tt.variance, d.Variance)
			}
		})
	}
}

func TestReduceEmpty(t *testing.T) {
	if _, err := Reduce(nil, DefaultThresholds()); !errors.Is(err, ErrNoScorableMentions) {
		t.Errorf("Expected ErrNoScorableMentions, got %v", err)
	}
	if _, err := Summarize([]float64{}); !errors.Is(err, ErrNoScorableMentions) {
		t.Errorf("Expected ErrNoScorableMentions, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	summary, err := Summarize([]float64{1, -0.5, 0.5})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if summary.Len != 3 {
		t.Errorf("Expected len 3, got %d", summary.Len)
	}
	if summary.Min != -0.5 || summary.Max != 1 {
		t.Errorf("Expected min -0.5 and max 1, got %.2f and %.2f", summary.Min, summary.Max)
	}
	if math.Abs(summary.Mean-1.0/3) > 1e-9 {
		t.Errorf("Expected mean 0.3333, got %.4f", summary.Mean)
	}
	if math.Abs(summary.Variance-7.0/12) > 1e-9 {
		t.Errorf("Expected variance 0.5833, got %.4f", summary.Variance)
	}
}
