package entsent

import (
	"strconv"
	"strings"
)

// A Span is a half-open range of rune offsets into a document's text.
type Span struct {
	Start int // First rune of the span
	End   int // One past the last rune of the span
}

// Valid reports whether the span is well formed.
func (s Span) Valid() bool {
	return s.Start <= s.End
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Shift returns the span moved by delta runes.
func (s Span) Shift(delta int) Span {
	return Span{Start: s.Start + delta, End: s.End + delta}
}

// A Word is a single token of a sentence.
type Word struct {
	Text  string // The word's actual content.
	Index int    // Position of the word within its sentence.
}

// A Sentence represents a segmented portion of a document.
type Sentence struct {
	Span
	Text  string // The sentence's raw text.
	Words []Word // The sentence's words, in order.
}

// String returns the raw text of the sentence.
func (s Sentence) String() string {
	return s.Text
}

// WordCount returns the number of words in the sentence.
func (s Sentence) WordCount() int {
	return len(s.Words)
}

// EntityType is the coarse type tag of an annotated entity.
type EntityType string

const (
	PersonEntity       EntityType = "PER"  // People, including fictional
	OrganizationEntity EntityType = "ORG"  // Companies, agencies, institutions
	LocationEntity     EntityType = "LOC"  // Countries, cities, regions
	MiscEntity         EntityType = "MISC" // Anything else the annotators tagged
)

// An Entity is a named entity with all of its mentions in one document.
type Entity struct {
	ID       string     // Identifier, unique within the document
	Name     string     // Display name
	Type     EntityType // Coarse type tag
	Mentions []Span     // Mention spans, in document order
	Rating   int        // Ordinal sentiment rating 1..5, 0 when absent
}

// Scorable reports whether the entity carries both a usable rating and a
// type. Entities that are not scorable never reach the engine.
func (e Entity) Scorable() bool {
	return e.Rating >= 1 && e.Rating <= 5 && e.Type != ""
}

// IsPerson reports whether the entity is a person.
func (e Entity) IsPerson() bool {
	return e.Type == PersonEntity
}

// Polarity is the sentiment of a single word or a ternary decision.
type Polarity int

const (
	Negative Polarity = -1
	Neutral  Polarity = 0
	Positive Polarity = 1
)

// String returns a readable name for the polarity.
func (p Polarity) String() string {
	switch p {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	default:
		return "neutral"
	}
}

// Language represents supported languages
type Language string

const (
	English   Language = "en"
	Slovenian Language = "sl"
	Spanish   Language = "es"
	French    Language = "fr"
	German    Language = "de"
)

// A FeatureRecord is one row of the emitted feature table.
type FeatureRecord struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        EntityType `json:"type"`
	Context     string     `json:"context"`
	IsPerson    bool       `json:"is_person"`
	IsSubObj    bool       `json:"is_sub_obj"`
	HasQuestion bool       `json:"has_question"`
	HasExclaim  bool       `json:"has_exclaim"`
	NumPos      int        `json:"num_pos"`
	NumNeg      int        `json:"num_neg"`
	PosVsNeg    float64    `json:"pos_vs_neg"`
	Len         int        `json:"len"`
	Min         float64    `json:"min"`
	Max         float64    `json:"max"`
	Avg         float64    `json:"avg"`
	Var         float64    `json:"var"`
	Sentiment   Polarity   `json:"sentiment"`
}

var featureColumns = []string{
	"id", "name", "type", "context", "is_person", "is_sub_obj",
	"has_question", "has_exclaim", "num_pos", "num_neg", "pos_vs_neg",
	"len", "min", "max", "avg", "var", "sentiment",
}

// Columns returns the column names of the feature table in row order.
func Columns() []string {
	cols := make([]string, len(featureColumns))
	copy(cols, featureColumns)
	return cols
}

// Row returns the record's values formatted in Columns order.
func (r FeatureRecord) Row() []string {
	return []string{
		r.ID,
		r.Name,
		string(r.Type),
		r.Context,
		formatBool(r.IsPerson),
		formatBool(r.IsSubObj),
		formatBool(r.HasQuestion),
		formatBool(r.HasExclaim),
		strconv.Itoa(r.NumPos),
		strconv.Itoa(r.NumNeg),
		formatFloat(r.PosVsNeg),
		strconv.Itoa(r.Len),
		formatFloat(r.Min),
		formatFloat(r.Max),
		formatFloat(r.Avg),
		formatFloat(r.Var),
		strconv.Itoa(int(r.Sentiment)),
	}
}

// formatBool writes capitalized booleans.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}
