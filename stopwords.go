package entsent

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/bbalet/stopwords"
)

// A StopwordSet decides whether an already lower-cased word is a stopword
// in the given language.
type StopwordSet interface {
	IsStopword(wordLower string, lang Language) bool
}

//go:embed data/stopwords_sl.txt
var slovenianStopwords string

// libraryLanguages are the ISO 639-1 codes served by bbalet/stopwords.
var libraryLanguages = map[Language]bool{
	English: true,
	Spanish: true,
	French:  true,
	German:  true,
}

// Stopwords combines the bbalet/stopwords lists with word lists that are
// loaded explicitly (the embedded Slovenian list, user files).
type Stopwords struct {
	lists map[Language]map[string]bool
	mutex sync.RWMutex
}

// NewStopwords creates a stopword set with the built-in lists loaded.
func NewStopwords() *Stopwords {
	sw := &Stopwords{lists: make(map[Language]map[string]bool)}
	// The embedded list is newline separated and cannot fail to parse.
	_ = sw.Load(strings.NewReader(slovenianStopwords), Slovenian)
	return sw
}

// Load reads one stopword per line from r into the list for lang. Blank
// lines and lines starting with '#' are ignored.
func (sw *Stopwords) Load(r io.Reader, lang Language) error {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading stopwords: %w", err)
	}
	sw.Add(lang, words...)
	return nil
}

// LoadStopwordFile loads a newline separated stopword file for lang.
func (sw *Stopwords) LoadStopwordFile(path string, lang Language) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening stopword file: %w", err)
	}
	defer f.Close()
	return sw.Load(f, lang)
}

// Add registers extra stopwords for lang.
func (sw *Stopwords) Add(lang Language, words ...string) {
	sw.mutex.Lock()
	defer sw.mutex.Unlock()

	list, ok := sw.lists[lang]
	if !ok {
		list = make(map[string]bool, len(words))
		sw.lists[lang] = list
	}
	for _, w := range words {
		list[normalizeKey(lang.Lower(w))] = true
	}
}

// Supports reports whether any stopword data exists for lang.
func (sw *Stopwords) Supports(lang Language) bool {
	if libraryLanguages[lang] {
		return true
	}
	sw.mutex.RLock()
	defer sw.mutex.RUnlock()
	return len(sw.lists[lang]) > 0
}

// IsStopword reports whether wordLower is a stopword in lang.
func (sw *Stopwords) IsStopword(wordLower string, lang Language) bool {
	key := normalizeKey(wordLower)

	sw.mutex.RLock()
	listed := sw.lists[lang][key]
	sw.mutex.RUnlock()
	if listed {
		return true
	}

	if !libraryLanguages[lang] || !hasLetter(key) {
		return false
	}
	// The library has no lookup function; a word it cleans away entirely
	// is on its list.
	cleaned := stopwords.CleanString(key, string(lang), false)
	return strings.TrimSpace(cleaned) == ""
}

// hasLetter keeps punctuation from being mistaken for a stopword, since
// the library also strips punctuation while cleaning.
func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
