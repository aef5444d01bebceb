package entsent

import (
	"math"
	"testing"
)

func TestDecayWeight(t *testing.T) {
	tests := []struct {
		x        int
		expected float64
	}{
		{0, 2.0},
		{1, 1.9},
		{-1, 1.9},
		{2, 1.8},
		{3, 1.7},
		{-3, 1.7},
		{4, 1.0},
		{-4, 1.0},
		{100, 1.0},
	}

	for _, tt := range tests {
		if got := DecayWeight(tt.x); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("DecayWeight(%d): expected %.2f, got %.2f", tt.x, tt.expected, got)
		}
		if DecayWeight(tt.x) != DecayWeight(-tt.x) {
			t.Errorf("DecayWeight(%d) is not symmetric", tt.x)
		}
	}
}

func TestAnchorScores(t *testing.T) {
	tests := []struct {
		desc     string
		words    []string
		mentions []Span
		expected []float64
	}{
		{
			desc:     "Positive word after anchor",
			words:    []string{"John", "is", "great"},
			mentions: []Span{{0, 4}},
			expected: []float64{1},
		},
		{
			desc:     "Negative word before anchor",
			words:    []string{"awful", "John"},
			mentions: []Span{{6, 10}},
			expected: []float64{-1},
		},
		{
			desc:     "No polar words",
			words:    []string{"John", "is", "here"},
			mentions: []Span{{0, 4}},
			expected: []float64{0},
		},
		{
			// great is one word away (1.9), bad two words away (1.8).
			desc:     "Closer word weighs more",
			words:    []string{"great", "John", "is", "bad"},
			mentions: []Span{{6, 10}},
			expected: []float64{(1.9 - 1.8) / (1.9 + 1.8)},
		},
		{
			desc:     "One score per anchor",
			words:    []string{"John", "met", "John"},
			mentions: []Span{{0, 4}, {9, 13}},
			expected: []float64{0, 0},
		},
		{
			desc:     "Multi-word mention has no anchor",
			words:    []string{"Janez", "Novak", "is", "great"},
			mentions: []Span{{0, 11}},
			expected: nil,
		},
	}

	eng := newTestEngine(nil)
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			s := sentence(0, tt.words...)
			e := Entity{ID: "1", Mentions: tt.mentions}
			got := eng.AnchorScores(e, s, English)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d scores, got %v", len(tt.expected), got)
			}
			for i := range got {
				if math.Abs(got[i]-tt.expected[i]) > 1e-9 {
					t.Errorf("score %d: expected %.4f, got %.4f", i, tt.expected[i], got[i])
				}
				if got[i] < -1 || got[i] > 1 {
					t.Errorf("score %d out of range: %f", i, got[i])
				}
			}
		})
	}
}

func TestAnchorScoresWindowBounds(t *testing.T) {
	// great sits nine words before the anchor, outside an 8 word window.
	words := []string{"great", "a", "b", "c", "d", "e", "f", "g", "h", "John"}
	s := sentence(0, words...)
	e := Entity{ID: "1", Mentions: []Span{{22, 26}}}

	eng := newTestEngine(nil)
	if got := eng.AnchorScores(e, s, English); len(got) != 1 || got[0] != 0 {
		t.Errorf("Expected [0] outside the window, got %v", got)
	}
	if got := eng.AnchorScoresWindow(e, s, English, 9, 0); len(got) != 1 || got[0] != 1 {
		t.Errorf("Expected [1] with a wider window, got %v", got)
	}
}

func TestNegationPolicy(t *testing.T) {
	negateAll := func(ctx MentionContext) int {
		if ctx.Language != English || len(ctx.Window) == 0 {
			return 1
		}
		return -1
	}
	eng := newTestEngine(nil, WithNegationPolicy(negateAll))

	s := sentence(0, "John", "is", "great")
	e := Entity{ID: "1", Mentions: []Span{{0, 4}}}
	if got := eng.AnchorScores(e, s, English); len(got) != 1 || got[0] != -1 {
		t.Errorf("Expected negated score [-1], got %v", got)
	}

	neutral := sentence(0, "John", "is", "here")
	if got := eng.AnchorScores(e, neutral, English); len(got) != 1 || got[0] != 0 {
		t.Errorf("Negation must not touch a zero score, got %v", got)
	}
}
