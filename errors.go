package entsent

import (
	"errors"
	"fmt"
)

var (
	// ErrNoScorableMentions is returned when none of an entity's mentions
	// aligns to a word, leaving no anchor scores to summarize.
	ErrNoScorableMentions = errors.New("entsent: no scorable mentions")

	// ErrUnscorableEntity is returned for entities missing a rating or type.
	ErrUnscorableEntity = errors.New("entsent: entity has no rating or type")

	// ErrUnsupportedLanguage is returned before scoring when the lexicon or
	// stopword set cannot serve the document's language.
	ErrUnsupportedLanguage = errors.New("entsent: unsupported language")

	// ErrEmptyDocument is returned by NewDocument for blank text.
	ErrEmptyDocument = errors.New("entsent: empty document")
)

// FormatLanguageError creates a formatted error for unsupported languages
func FormatLanguageError(lang Language) error {
	return fmt.Errorf("%w: %q (supported: %v)", ErrUnsupportedLanguage,
		string(lang), GetSupportedLanguages())
}
