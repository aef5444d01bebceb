package entsent

import "math"

// DecayWeight is the weight of a word x words away from an anchor: 2.0 at
// the anchor, falling by 0.1 per word up to three words away, 1.0 beyond.
func DecayWeight(x int) float64 {
	if -3 <= x && x <= 3 {
		return -0.1*math.Abs(float64(x)) + 2
	}
	return 1
}

// AnchorScores scores every anchor of e in s with the configured windows.
func (eng *Engine) AnchorScores(e Entity, s Sentence, lang Language) []float64 {
	return eng.AnchorScoresWindow(e, s, lang, eng.config.ScoreBefore, eng.config.ScoreAfter)
}

// AnchorScoresWindow scores every anchor of e in s, one score per anchor in
// word order. Each score is the distance weighted balance of positive and
// negative words around the anchor, in [-1, 1], and 0 when the window has
// no polar words.
func (eng *Engine) AnchorScoresWindow(e Entity, s Sentence, lang Language, before, after int) []float64 {
	anchors := LocateAnchors(e, s)
	if len(anchors) == 0 {
		return nil
	}

	n := len(s.Words)
	scores := make([]float64, 0, len(anchors))
	for _, i := range anchors {
		lower := max(0, min(before, i))
		upper := max(0, min(after, n-i))
		// upper may reach one past the last word; the window stops at the
		// sentence end.
		window := s.Words[i-lower : min(n, i+upper+1)]

		var plus, minus float64
		for d, w := range window {
			weight := DecayWeight(d - lower)
			switch eng.lexicon.Polarity(w.Text, lang) {
			case Positive:
				plus += weight
			case Negative:
				minus += weight
			}
		}

		if plus+minus == 0 {
			scores = append(scores, 0)
			continue
		}
		sign := eng.negationSign(MentionContext{
			Sentence: s,
			Anchor:   i,
			Window:   window,
			Language: lang,
		})
		scores = append(scores, sign*(plus-minus)/(plus+minus))
	}
	return scores
}
