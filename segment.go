package entsent

import (
	"strings"
	"sync"
	"unicode/utf8"

	"gopkg.in/neurosnap/sentences.v1/english"
)

// A Segmenter splits raw text into sentences whose spans are rune offsets
// into text and whose words are consistent with single-space joining.
type Segmenter interface {
	Segment(text string, lang Language) ([]Sentence, error)
}

// SegmenterFunc adapts a function to the Segmenter interface.
type SegmenterFunc func(text string, lang Language) ([]Sentence, error)

// Segment calls f(text, lang).
func (f SegmenterFunc) Segment(text string, lang Language) ([]Sentence, error) {
	return f(text, lang)
}

// punktSegmenter finds sentence boundaries with the Punkt model and splits
// each sentence into words with a Tokenizer.
type punktSegmenter struct {
	split func(string) []string
	words func(Language) Tokenizer
}

// NewPunktSegmenter creates the default segmenter. A nil words tokenizer
// selects NewWordTokenizer for the language of each document.
func NewPunktSegmenter(words Tokenizer) (Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	wordsFor := func(Language) Tokenizer { return words }
	if words == nil {
		byLang := make(map[Language]Tokenizer)
		for _, lang := range GetSupportedLanguages() {
			byLang[lang] = NewWordTokenizer(lang)
		}
		wordsFor = func(lang Language) Tokenizer { return byLang[lang] }
	}
	split := func(text string) []string {
		var raw []string
		for _, s := range tokenizer.Tokenize(text) {
			raw = append(raw, s.Text)
		}
		return raw
	}
	return &punktSegmenter{split: split, words: wordsFor}, nil
}

var defaultSegmenter = sync.OnceValues(func() (Segmenter, error) {
	return NewPunktSegmenter(nil)
})

// Segment splits text into sentences. The Punkt model is trained on
// English; its abbreviation handling is the only language dependent part,
// so the same model serves every supported language.
func (p *punktSegmenter) Segment(text string, lang Language) ([]Sentence, error) {
	if !IsSupported(lang) {
		return nil, FormatLanguageError(lang)
	}

	words := p.words(lang)
	var sents []Sentence
	byteCursor, runeCursor := 0, 0
	for _, s := range p.split(text) {
		raw := strings.TrimSpace(s)
		if raw == "" {
			continue
		}
		idx := strings.Index(text[byteCursor:], raw)
		if idx < 0 {
			continue
		}
		runeCursor += utf8.RuneCountInString(text[byteCursor : byteCursor+idx])
		byteCursor += idx

		start := runeCursor
		end := start + utf8.RuneCountInString(raw)
		sents = append(sents, NewSentence(raw, start, words.Tokenize(raw)...))

		byteCursor += len(raw)
		runeCursor = end
	}
	return sents, nil
}

// NewSentence builds a sentence starting at rune offset start of its
// document, with the given words.
func NewSentence(text string, start int, words ...string) Sentence {
	ws := make([]Word, len(words))
	for i, w := range words {
		ws[i] = Word{Text: w, Index: i}
	}
	return Sentence{
		Span:  Span{Start: start, End: start + utf8.RuneCountInString(text)},
		Text:  text,
		Words: ws,
	}
}
