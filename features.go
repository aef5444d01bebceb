package entsent

import (
	"fmt"
	"strings"
)

// NormalizeSentiment maps a 1..5 rating to a ternary label.
func NormalizeSentiment(rating int) Polarity {
	switch {
	case rating < 3:
		return Negative
	case rating > 3:
		return Positive
	default:
		return Neutral
	}
}

// HasQuestion reports whether any sentence contains a question mark.
func HasQuestion(sentences []Sentence) bool {
	return anyContains(sentences, "?")
}

// HasExclaim reports whether any sentence contains an exclamation mark.
func HasExclaim(sentences []Sentence) bool {
	return anyContains(sentences, "!")
}

func anyContains(sentences []Sentence, mark string) bool {
	for _, s := range sentences {
		if strings.Contains(s.Text, mark) {
			return true
		}
	}
	return false
}

// Features builds the feature record of e in doc. The record id is the
// document id and entity id joined by a dash.
//
// An error wrapping ErrNoScorableMentions is returned when no mention of e
// lines up with a word; callers decide whether to drop the entity.
func (eng *Engine) Features(e Entity, doc *Document) (FeatureRecord, error) {
	id := doc.ID + "-" + e.ID
	if !e.Scorable() {
		return FeatureRecord{}, fmt.Errorf("entity %s: %w", id, ErrUnscorableEntity)
	}
	lang := doc.Language
	if !eng.Supports(lang) {
		return FeatureRecord{}, FormatLanguageError(lang)
	}

	context := SelectContext(e, doc)

	var (
		scores         []float64
		numPos, numNeg int
		texts          = make([]string, 0, len(context))
	)
	for _, s := range context {
		scores = append(scores, eng.AnchorScores(e, s, lang)...)
		numPos += eng.CountPolarity(e, s, lang, Positive)
		numNeg += eng.CountPolarity(e, s, lang, Negative)
		texts = append(texts, s.String())
	}

	summary, err := Summarize(scores)
	if err != nil {
		return FeatureRecord{}, fmt.Errorf("entity %s: %w", id, err)
	}

	isPerson := e.IsPerson()
	return FeatureRecord{
		ID:          id,
		Name:        e.Name,
		Type:        e.Type,
		Context:     strings.Join(texts, " "),
		IsPerson:    isPerson,
		IsSubObj:    !isPerson,
		HasQuestion: HasQuestion(context),
		HasExclaim:  HasExclaim(context),
		NumPos:      numPos,
		NumNeg:      numNeg,
		PosVsNeg:    float64(numPos+1) / float64(numNeg+1),
		Len:         summary.Len,
		Min:         summary.Min,
		Max:         summary.Max,
		Avg:         summary.Mean,
		Var:         summary.Variance,
		Sentiment:   NormalizeSentiment(e.Rating),
	}, nil
}
