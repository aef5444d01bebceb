package entsent

// CountPolarity counts words of the target polarity around the anchors of e
// in s with the configured windows.
func (eng *Engine) CountPolarity(e Entity, s Sentence, lang Language, target Polarity) int {
	return eng.CountPolarityWindow(e, s, lang, target, eng.config.CountBefore, eng.config.CountAfter)
}

// CountPolarityWindow counts, summed over all anchors of e in s, the words
// of the target polarity in a window around each anchor once stopwords
// have been removed from the sentence.
//
// The upper window bound is taken against the unfiltered word count and
// then clamped to the filtered words. This yields the same windows as
// bounding by the filtered count; only the computation differs.
func (eng *Engine) CountPolarityWindow(e Entity, s Sentence, lang Language, target Polarity, before, after int) int {
	flags := anchorFlags(e, s)
	words, anchors := eng.filterStopwords(s.Words, flags, lang)

	n := len(s.Words)
	count := 0
	for i, isAnchor := range anchors {
		if !isAnchor {
			continue
		}
		lower := max(0, min(before, i))
		upper := max(0, min(after, n-i))
		for _, w := range words[i-lower : min(len(words), i+upper+1)] {
			if eng.lexicon.Polarity(w.Text, lang) == target {
				count++
			}
		}
	}
	return count
}

// filterStopwords drops every non-anchor word whose lower-cased form is a
// stopword. The returned words and anchor flags stay index aligned.
func (eng *Engine) filterStopwords(words []Word, anchors []bool, lang Language) ([]Word, []bool) {
	kept := make([]Word, 0, len(words))
	keptAnchors := make([]bool, 0, len(words))
	for i, w := range words {
		if !anchors[i] && eng.stopwords.IsStopword(lang.Lower(w.Text), lang) {
			continue
		}
		kept = append(kept, w)
		keptAnchors = append(keptAnchors, anchors[i])
	}
	return kept, keptAnchors
}
