/*
Package entsent computes per-entity sentiment features from annotated text.

Given a segmented document, the mentions of a named entity and a word
polarity lexicon, an Engine selects the sentences that mention the entity,
scores each mention with distance weighted polarity, counts polar words
near each mention after stopword removal, and summarizes the scores into a
FeatureRecord:

	eng := entsent.NewEngine(entsent.NewLexicon(entsent.English), entsent.NewStopwords())
	doc, err := entsent.NewDocument("John is great.", entsent.WithID("1"))
	if err != nil {
		// handle error
	}
	rec, err := eng.Features(entity, doc)

Reduce turns a set of anchor scores into a ternary decision and is kept
separate from feature extraction.
*/
package entsent
