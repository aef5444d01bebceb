// Package config loads run settings from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/subosito/gotenv"
)

// Config holds the settings of a batch run or API server.
type Config struct {
	Dataset   string // Directory of WebAnno TSV documents
	Out       string // CSV output path
	Language  string // Language code of the documents
	Lexicon   string // External lexicon file, .json or word<TAB>score
	Stopwords string // Extra stopword file, one word per line
	Workers   int    // Documents processed at once
	Addr      string // Listen address of the API server
	Vader     bool   // Chain the VADER lexicon after the word lexicon
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Dataset:  "./dataset",
		Out:      "cache/baseline.csv",
		Language: "sl",
		Workers:  4,
	}
}

// LoadEnv loads envFile into the process environment. Variables already
// set in the OS environment win. The returned error only reports that the
// file could not be read; callers usually log it and carry on.
func LoadEnv(envFile string) error {
	if envFile == "" {
		return nil
	}
	return gotenv.Load(envFile)
}

// FromEnv returns Default overridden by the ENTSENT_* variables.
func FromEnv() Config {
	cfg := Default()
	if v := os.Getenv("ENTSENT_DATASET"); v != "" {
		cfg.Dataset = v
	}
	if v := os.Getenv("ENTSENT_OUT"); v != "" {
		cfg.Out = v
	}
	if v := os.Getenv("ENTSENT_LANG"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("ENTSENT_LEXICON"); v != "" {
		cfg.Lexicon = v
	}
	if v := os.Getenv("ENTSENT_STOPWORDS"); v != "" {
		cfg.Stopwords = v
	}
	if v, err := strconv.Atoi(os.Getenv("ENTSENT_WORKERS")); err == nil {
		cfg.Workers = v
	}
	if v := os.Getenv("ENTSENT_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v, err := strconv.ParseBool(os.Getenv("ENTSENT_VADER")); err == nil {
		cfg.Vader = v
	}
	return cfg
}
