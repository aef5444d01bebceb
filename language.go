package entsent

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// GetSupportedLanguages returns all supported languages
func GetSupportedLanguages() []Language {
	return []Language{English, Slovenian, Spanish, French, German}
}

// IsSupported checks if a language has built-in lexicon and stopword data.
func IsSupported(lang Language) bool {
	for _, supported := range GetSupportedLanguages() {
		if lang == supported {
			return true
		}
	}
	return false
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	tag, err := language.Parse(string(l))
	if err != nil {
		return language.Und
	}
	return tag
}

// Lower lower-cases word using the casing rules of the language.
func (l Language) Lower(word string) string {
	// A Caser keeps state between calls, so one is built per use.
	return cases.Lower(l.Tag()).String(word)
}

// normalizeKey brings a word into the form lexicon keys are stored in.
func normalizeKey(word string) string {
	return norm.NFC.String(strings.TrimSpace(word))
}

// languageToJSONKey converts Language constants to JSON keys
func languageToJSONKey(lang Language) string {
	switch lang {
	case English:
		return "english"
	case Slovenian:
		return "slovene"
	case Spanish:
		return "spanish"
	case French:
		return "french"
	case German:
		return "german"
	default:
		return strings.ToLower(string(lang))
	}
}
