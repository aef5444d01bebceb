package entsent

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// A TokenTester reports whether a token must be kept whole.
type TokenTester func(string) bool

// A Tokenizer splits sentence text into words.
type Tokenizer interface {
	Tokenize(string) []string
}

// iterTokenizer splits a sentence into words.
type iterTokenizer struct {
	specialRE      *regexp.Regexp
	sanitizer      *strings.Replacer
	contractions   []string
	splitCases     []string
	suffixes       []string
	prefixes       []string
	emoticons      map[string]int
	isUnsplittable TokenTester
}

type TokenizerOptFunc func(*iterTokenizer)

// UsingIsUnsplittable gives a function that tests whether a token is splittable or not.
func UsingIsUnsplittable(x TokenTester) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.isUnsplittable = x
	}
}

// Use the provided contractions.
func UsingContractions(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.contractions = x
	}
}

// Constructor for default iterTokenizer
func NewIterTokenizer(opts ...TokenizerOptFunc) *iterTokenizer {
	tok := new(iterTokenizer)

	tok.contractions = contractions
	tok.emoticons = emoticons
	tok.isUnsplittable = func(_ string) bool { return false }
	tok.prefixes = prefixes
	tok.sanitizer = sanitizer
	tok.specialRE = internalRE
	tok.suffixes = suffixes

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	tok.splitCases = append(tok.splitCases, tok.contractions...)

	return tok
}

// NewWordTokenizer returns the word tokenizer for lang. Common
// abbreviations of the language are kept whole, and only English splits
// contractions.
func NewWordTokenizer(lang Language) Tokenizer {
	abbrevs := abbreviations[lang]
	opts := []TokenizerOptFunc{
		UsingIsUnsplittable(func(token string) bool {
			return abbrevs[strings.ToLower(token)]
		}),
	}
	if lang != English {
		opts = append(opts, UsingContractions(nil))
	}
	return NewIterTokenizer(opts...)
}

var abbreviations = map[Language]map[string]bool{
	English: {
		"etc.": true, "mr.": true, "mrs.": true, "ms.": true, "dr.": true,
		"vs.": true, "jr.": true, "st.": true,
	},
	Slovenian: {
		"npr.": true, "itd.": true, "ipd.": true, "idr.": true, "oz.": true,
		"dr.": true, "mag.": true, "prof.": true, "sv.": true, "št.": true,
		"tj.": true, "ga.": true, "g.": true,
	},
	Spanish: {
		"etc.": true, "sr.": true, "sra.": true, "dr.": true, "dra.": true,
		"ud.": true, "uds.": true,
	},
	French: {
		"etc.": true, "cf.": true, "mme.": true, "mlle.": true, "dr.": true,
	},
	German: {
		"usw.": true, "bzw.": true, "ggf.": true, "dr.": true, "nr.": true,
		"hr.": true, "fr.": true,
	},
}

func addToken(s string, toks []string) []string {
	if strings.TrimSpace(s) != "" {
		toks = append(toks, s)
	}
	return toks
}

func (t *iterTokenizer) isSpecial(token string) bool {
	_, found := t.emoticons[token]
	return found || t.specialRE.MatchString(token) || t.isUnsplittable(token)
}

func (t *iterTokenizer) doSplit(token string) []string {
	tokens := []string{}
	suffs := []string{}

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		if t.isSpecial(token) {
			// We've found a special case (e.g., an emoticon) -- so, we add it as a token without
			// any further processing.
			tokens = addToken(token, tokens)
			break
		}
		last = utf8.RuneCountInString(token)
		lower := strings.ToLower(token)
		if hasAnyPrefix(token, t.prefixes) {
			// Remove prefixes -- e.g., $100 -> [$, 100].
			tokens = addToken(string(token[0]), tokens)
			token = token[1:]
		} else if idx := hasAnyIndex(lower, t.splitCases); idx > -1 {
			// Handle "they'll", "I'll", "Don't", "won't".
			//
			// they'll -> [they, 'll].
			// don't -> [do, n't].
			tokens = addToken(token[:idx], tokens)
			token = token[idx:]
		} else if hasAnySuffix(token, t.suffixes) {
			// Remove suffixes -- e.g., Well) -> [Well, )].
			suffs = append([]string{string(token[len(token)-1])}, suffs...)
			token = token[:len(token)-1]
		} else {
			tokens = addToken(token, tokens)
		}
	}

	return append(tokens, suffs...)
}

// Tokenize splits a sentence into a slice of words.
func (t *iterTokenizer) Tokenize(text string) []string {
	var tokens []string

	clean := t.sanitizer.Replace(text)
	cache := map[string][]string{}
	for _, span := range strings.Fields(clean) {
		if toks, found := cache[span]; found {
			tokens = append(tokens, toks...)
		} else {
			toks := t.doSplit(span)
			cache[span] = toks
			tokens = append(tokens, toks...)
		}
	}

	return tokens
}

func hasAnyPrefix(s string, prefixes []string) bool {
	n := len(s)
	for _, prefix := range prefixes {
		if n > len(prefix) && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	n := len(s)
	for _, suffix := range suffixes {
		if n > len(suffix) && strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func hasAnyIndex(s string, suffixes []string) int {
	n := len(s)
	for _, suffix := range suffixes {
		idx := strings.Index(s, suffix)
		if idx >= 0 && n > len(suffix) {
			return idx
		}
	}
	return -1
}

var internalRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$|^[A-Z][a-z]{1,2}\.$`)
var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")
var contractions = []string{"'ll", "'s", "'re", "'m", "n't"}
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'"}
var prefixes = []string{"$", "(", `"`, "["}
var emoticons = map[string]int{
	"(-8":   1,
	"(-;":   1,
	"(:":    1,
	"(=":    1,
	"-__-":  1,
	"8-)":   1,
	"8-D":   1,
	":(":    1,
	":((":   1,
	":)))":  1,
	":-)":   1,
	":-))":  1,
	":-/":   1,
	":-|":   1,
	":3":    1,
	":P":    1,
	":]":    1,
	":o":    1,
	"=(":    1,
	"=)":    1,
	"=D":    1,
	"O_o":   1,
	"^___^": 1,
	"o_O":   1,
	"xD":    1,
}
