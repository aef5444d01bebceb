package entsent

import (
	"context"
	"strings"
)

// A DocOpt represents a setting that changes the document creation process.
//
// For example, it might set the document language:
//
//	doc, err := entsent.NewDocument("...", entsent.WithLanguage(entsent.Slovenian))
type DocOpt func(doc *Document, opts *DocOpts)

// DocOpts controls the Document creation process:
type DocOpts struct {
	Segmenter Segmenter       // Segmenter to use, nil selects the Punkt segmenter
	Context   context.Context // Context for cancellation
	Language  Language        // Document language
}

// UsingSegmenter specifies the Segmenter to use.
func UsingSegmenter(segmenter Segmenter) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Segmenter = segmenter
	}
}

// WithContext sets the context for document processing
func WithContext(ctx context.Context) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Context = ctx
	}
}

// WithLanguage sets the document language
func WithLanguage(lang Language) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Language = lang
	}
}

// WithID sets the document identifier
func WithID(id string) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		doc.ID = id
	}
}

// A Document represents a segmented body of text. It is not modified after
// NewDocument returns.
type Document struct {
	ID       string
	Text     string
	Language Language

	sentences []Sentence
}

// Sentences returns a copy of `doc`'s sentences.
func (doc *Document) Sentences() []Sentence {
	sents := make([]Sentence, len(doc.sentences))
	for i, s := range doc.sentences {
		s.Words = append([]Word(nil), s.Words...)
		sents[i] = s
	}
	return sents
}

var defaultOpts = DocOpts{
	Context:  context.Background(),
	Language: English,
}

// NewDocument creates a Document according to the user-specified options.
//
// For example,
//
//	doc, err := entsent.NewDocument("...")
func NewDocument(text string, opts ...DocOpt) (*Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	doc := Document{Text: text}
	base := defaultOpts
	for _, applyOpt := range opts {
		applyOpt(&doc, &base)
	}

	select {
	case <-base.Context.Done():
		return nil, base.Context.Err()
	default:
	}

	if !IsSupported(base.Language) {
		return nil, FormatLanguageError(base.Language)
	}
	doc.Language = base.Language

	segmenter := base.Segmenter
	if segmenter == nil {
		var err error
		if segmenter, err = defaultSegmenter(); err != nil {
			return nil, err
		}
	}

	sents, err := segmenter.Segment(text, doc.Language)
	if err != nil {
		return nil, err
	}
	doc.sentences = sents

	return &doc, nil
}

// NewDocumentFromSentences wraps an already segmented text.
func NewDocumentFromSentences(id, text string, lang Language, sentences []Sentence) *Document {
	doc := &Document{ID: id, Text: text, Language: lang, sentences: sentences}
	doc.sentences = doc.Sentences()
	return doc
}
