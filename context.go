package entsent

import "unicode/utf8"

// SelectContext returns the sentences of doc, in order, that fully contain
// at least one mention of e. A mention straddling two sentences selects
// neither.
func SelectContext(e Entity, doc *Document) []Sentence {
	var context []Sentence
	for _, s := range doc.Sentences() {
		for _, m := range e.Mentions {
			if s.Contains(m) {
				context = append(context, s)
				break
			}
		}
	}
	return context
}

// relativeMentions returns the mentions of e inside s, made relative to
// the start of the sentence, in their given order.
func relativeMentions(e Entity, s Sentence) []Span {
	var mentions []Span
	for _, m := range e.Mentions {
		if s.Contains(m) {
			mentions = append(mentions, m.Shift(-s.Start))
		}
	}
	return mentions
}

// LocateAnchors returns the index of the word each mention of e in s lines
// up with exactly.
//
// Word positions are rebuilt by assuming words are joined by exactly one
// character, so the locator only agrees with the document text for
// single-space tokenizations. Mentions are consumed in order and a word
// can only anchor the next unresolved one, so a mention that never lines
// up with a single word (a multi-word mention) leaves it and every later
// mention of the sentence without an anchor.
func LocateAnchors(e Entity, s Sentence) []int {
	mentions := relativeMentions(e, s)
	if len(mentions) == 0 {
		return nil
	}

	anchors := make([]int, 0, len(mentions))
	next, cursor := 0, 0
	for i, w := range s.Words {
		if next == len(mentions) {
			break
		}

		wordLen := utf8.RuneCountInString(w.Text)
		if m := mentions[next]; m.Start == cursor && m.End == cursor+wordLen {
			anchors = append(anchors, i)
			next++
		}
		cursor += wordLen + 1
	}
	return anchors
}

// anchorFlags marks the anchor words of e in s.
func anchorFlags(e Entity, s Sentence) []bool {
	flags := make([]bool, len(s.Words))
	for _, i := range LocateAnchors(e, s) {
		flags[i] = true
	}
	return flags
}
