package entsent

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/jonreiter/govader"
)

// A PolarityLexicon assigns a polarity to a single word in a language.
type PolarityLexicon interface {
	Polarity(word string, lang Language) Polarity
}

// Lexicon manages sentiment word lists per language
type Lexicon struct {
	words map[Language]map[string]LexiconEntry
	mutex sync.RWMutex
}

// LexiconEntry represents a word's sentiment information
type LexiconEntry struct {
	Word      string
	Sentiment float64 // -1 to 1
	Domain    string  // Domain specificity
}

// ExternalLexicon represents the JSON structure for external lexicon files
type ExternalLexicon struct {
	Languages map[string]LanguageLexicon `json:"languages"`
}

// LanguageLexicon contains all word categories for a specific language
type LanguageLexicon struct {
	Words    []WordEntry `json:"words,omitempty"`
	Positive []WordEntry `json:"positive,omitempty"`
	Negative []WordEntry `json:"negative,omitempty"`
}

// WordEntry represents a sentiment word in JSON format
type WordEntry struct {
	Word      string  `json:"word"`
	Sentiment float64 `json:"sentiment"`
	Domain    string  `json:"domain,omitempty"`
}

// NewLexicon creates a lexicon with the built-in words of each language.
func NewLexicon(langs ...Language) *Lexicon {
	lexicon := &Lexicon{words: make(map[Language]map[string]LexiconEntry)}
	for _, lang := range langs {
		lexicon.loadBaseLexicon(lang)
	}
	return lexicon
}

// LoadLexicon builds a lexicon for langs and merges the external file at
// path into it. An empty path loads only the built-in words. Files ending
// in .json use the JSON format, anything else is read as word<TAB>score.
func LoadLexicon(path string, langs ...Language) (*Lexicon, error) {
	lexicon := NewLexicon(langs...)
	if path == "" {
		return lexicon, nil
	}

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		if err := lexicon.LoadExternalLexicon(path, langs); err != nil {
			return nil, fmt.Errorf("failed to load external lexicon: %w", err)
		}
		return lexicon, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load external lexicon: %w", err)
	}
	defer f.Close()
	for _, lang := range langs {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		if err := lexicon.LoadTSVLexicon(f, lang); err != nil {
			return nil, fmt.Errorf("failed to load external lexicon: %w", err)
		}
	}
	return lexicon, nil
}

// LoadExternalLexicon loads and merges external lexicon data
func (l *Lexicon) LoadExternalLexicon(filepath string, languages []Language) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("error reading lexicon file: %w", err)
	}

	var external ExternalLexicon
	if err := json.Unmarshal(data, &external); err != nil {
		return fmt.Errorf("error parsing lexicon JSON: %w", err)
	}

	for _, lang := range languages {
		if langData, exists := external.Languages[languageToJSONKey(lang)]; exists {
			l.mergeLanguageData(lang, langData)
		}
	}
	return nil
}

// LoadTSVLexicon reads "word<TAB>score" lines into the lexicon for lang.
// Blank lines and lines starting with '#' are skipped.
func (l *Lexicon) LoadTSVLexicon(r io.Reader, lang Language) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 2 {
			return fmt.Errorf("line %d: expected word and score", lineNo)
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		l.AddWord(lang, parts[0], score)
	}
	return scanner.Err()
}

// mergeLanguageData merges external language data with existing lexicon
func (l *Lexicon) mergeLanguageData(lang Language, data LanguageLexicon) {
	for _, entry := range data.Words {
		l.addEntry(lang, entry)
	}
	for _, entry := range data.Positive {
		if entry.Sentiment == 0 {
			entry.Sentiment = 1
		}
		l.addEntry(lang, entry)
	}
	for _, entry := range data.Negative {
		if entry.Sentiment == 0 {
			entry.Sentiment = -1
		}
		l.addEntry(lang, entry)
	}
}

func (l *Lexicon) addEntry(lang Language, entry WordEntry) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	words, ok := l.words[lang]
	if !ok {
		words = make(map[string]LexiconEntry)
		l.words[lang] = words
	}
	words[normalizeKey(lang.Lower(entry.Word))] = LexiconEntry{
		Word:      entry.Word,
		Sentiment: entry.Sentiment,
		Domain:    entry.Domain,
	}
}

// AddWord allows adding domain-specific words
func (l *Lexicon) AddWord(lang Language, word string, sentiment float64) {
	l.addEntry(lang, WordEntry{Word: word, Sentiment: sentiment, Domain: "custom"})
}

// GetSentiment returns the raw sentiment score for a word
func (l *Lexicon) GetSentiment(word string, lang Language) float64 {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	words := l.words[lang]
	key := normalizeKey(word)
	// Try exact match first
	if entry, exists := words[key]; exists {
		return entry.Sentiment
	}
	if entry, exists := words[lang.Lower(key)]; exists {
		return entry.Sentiment
	}
	return 0.0
}

// Polarity returns the sign of the word's sentiment score.
func (l *Lexicon) Polarity(word string, lang Language) Polarity {
	return polarityOf(l.GetSentiment(word, lang), 0)
}

// Supports reports whether the lexicon holds any words for lang.
func (l *Lexicon) Supports(lang Language) bool {
	return l.Size(lang) > 0
}

// Size returns the number of words in the lexicon for lang
func (l *Lexicon) Size(lang Language) int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return len(l.words[lang])
}

// polarityOf maps a score to a polarity, treating |score| <= threshold as
// neutral.
func polarityOf(score, threshold float64) Polarity {
	switch {
	case math.IsNaN(score):
		return Neutral
	case score > threshold:
		return Positive
	case score < -threshold:
		return Negative
	default:
		return Neutral
	}
}

// VaderThreshold is the compound score magnitude below which VaderLexicon
// reports a word as neutral.
const VaderThreshold = 0.05

// VaderLexicon derives English word polarity from the VADER compound score
// of the word on its own.
type VaderLexicon struct {
	compound func(string) float64
}

// NewVaderLexicon creates a VADER backed lexicon.
func NewVaderLexicon() *VaderLexicon {
	analyzer := govader.NewSentimentIntensityAnalyzer()
	return &VaderLexicon{compound: func(word string) float64 {
		return analyzer.PolarityScores(word).Compound
	}}
}

// Polarity scores word with VADER. Languages other than English are
// neutral.
func (v *VaderLexicon) Polarity(word string, lang Language) Polarity {
	if lang != English || !hasLetter(word) {
		return Neutral
	}
	return polarityOf(v.compound(word), VaderThreshold)
}

// Supports reports whether lang is English.
func (v *VaderLexicon) Supports(lang Language) bool {
	return lang == English
}

// ChainLexicon asks each lexicon in turn and returns the first non-neutral
// polarity.
type ChainLexicon []PolarityLexicon

// Polarity implements PolarityLexicon.
func (c ChainLexicon) Polarity(word string, lang Language) Polarity {
	for _, lex := range c {
		if p := lex.Polarity(word, lang); p != Neutral {
			return p
		}
	}
	return Neutral
}

// Supports reports whether any lexicon in the chain supports lang.
func (c ChainLexicon) Supports(lang Language) bool {
	for _, lex := range c {
		if s, ok := lex.(interface{ Supports(Language) bool }); ok && s.Supports(lang) {
			return true
		}
	}
	return false
}
