package entsent

import "strings"

// mapLexicon is a fixed lexicon keyed by exact word.
type mapLexicon map[string]Polarity

func (m mapLexicon) Polarity(word string, _ Language) Polarity {
	return m[word]
}

// setStopwords is a fixed stopword set for every language.
type setStopwords map[string]bool

func (s setStopwords) IsStopword(wordLower string, _ Language) bool {
	return s[wordLower]
}

var testLexicon = mapLexicon{
	"great": Positive,
	"good":  Positive,
	"bad":   Negative,
	"awful": Negative,
}

// sentence builds a sentence at start whose text is its words joined by
// single spaces.
func sentence(start int, words ...string) Sentence {
	return NewSentence(strings.Join(words, " "), start, words...)
}

func newTestEngine(stop StopwordSet, opts ...EngineOpt) *Engine {
	if stop == nil {
		stop = setStopwords{}
	}
	return NewEngine(testLexicon, stop, opts...)
}
