package entsent

// EngineConfig configures the scoring windows
type EngineConfig struct {
	ScoreBefore int // Words before an anchor weighed by AnchorScores
	ScoreAfter  int // Words after an anchor weighed by AnchorScores
	CountBefore int // Words before an anchor counted by CountPolarity
	CountAfter  int // Words after an anchor counted by CountPolarity
}

// DefaultEngineConfig returns standard configuration
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		ScoreBefore: 8,
		ScoreAfter:  6,
		CountBefore: 3,
		CountAfter:  3,
	}
}

// MentionContext is what a NegationPolicy sees of a scored mention.
type MentionContext struct {
	Sentence Sentence
	Anchor   int    // Index of the anchor word in Sentence.Words
	Window   []Word // The words weighed for the anchor
	Language Language
}

// A NegationPolicy returns -1 when the sentiment around a mention is
// negated and +1 otherwise.
type NegationPolicy func(MentionContext) int

// NoNegation never flips a score.
func NoNegation(MentionContext) int {
	return 1
}

// An Engine scores entities against their context sentences. Its lexicon
// and stopword set must be fully loaded before the engine is used and are
// only read afterwards, so an Engine is safe for concurrent use.
type Engine struct {
	lexicon   PolarityLexicon
	stopwords StopwordSet
	config    EngineConfig
	negation  NegationPolicy
}

// An EngineOpt changes how NewEngine builds an Engine.
type EngineOpt func(*Engine)

// WithConfig sets the scoring windows.
func WithConfig(config EngineConfig) EngineOpt {
	return func(eng *Engine) {
		eng.config = config
	}
}

// WithNegationPolicy replaces the default NoNegation policy.
func WithNegationPolicy(policy NegationPolicy) EngineOpt {
	return func(eng *Engine) {
		if policy != nil {
			eng.negation = policy
		}
	}
}

// NewEngine creates an engine over a polarity lexicon and stopword set.
func NewEngine(lexicon PolarityLexicon, stopwords StopwordSet, opts ...EngineOpt) *Engine {
	eng := &Engine{
		lexicon:   lexicon,
		stopwords: stopwords,
		config:    DefaultEngineConfig(),
		negation:  NoNegation,
	}
	for _, applyOpt := range opts {
		applyOpt(eng)
	}
	return eng
}

// Config returns the engine's window configuration.
func (eng *Engine) Config() EngineConfig {
	return eng.config
}

type languageSupporter interface {
	Supports(Language) bool
}

// Supports reports whether the engine can score documents in lang. Lexicons
// and stopword sets that do not report their languages are trusted for
// every supported language.
func (eng *Engine) Supports(lang Language) bool {
	if !IsSupported(lang) {
		return false
	}
	if s, ok := eng.lexicon.(languageSupporter); ok && !s.Supports(lang) {
		return false
	}
	if s, ok := eng.stopwords.(languageSupporter); ok && !s.Supports(lang) {
		return false
	}
	return true
}

func (eng *Engine) negationSign(ctx MentionContext) float64 {
	if eng.negation(ctx) < 0 {
		return -1
	}
	return 1
}
