// Command entsent extracts entity sentiment features from a directory of
// WebAnno TSV documents, or serves the extraction over HTTP.
//
// Usage:
//
//	entsent -dataset ./dataset -out cache/baseline.csv -lang sl
//	entsent -serve :8080
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/tsawler/entsent"
	"github.com/tsawler/entsent/internal/config"
	"github.com/tsawler/entsent/internal/dataset"
	"github.com/tsawler/entsent/internal/httpapi"
	"github.com/tsawler/entsent/internal/logging"
)

func main() {
	envFile := flag.String("env", ".env", "env file with ENTSENT_* settings")
	dir := flag.String("dataset", "", "directory of <id>.tsv documents")
	out := flag.String("out", "", "CSV output path")
	lang := flag.String("lang", "", "document language code")
	lexicon := flag.String("lexicon", "", "external lexicon (.json or word<TAB>score)")
	stopwords := flag.String("stopwords", "", "extra stopword file, one word per line")
	workers := flag.Int("workers", 0, "documents processed at once")
	vader := flag.Bool("vader", false, "fall back to VADER for English words")
	serve := flag.String("serve", "", "serve the HTTP API on this address instead of running the batch")
	flag.Parse()

	cfg, logger := setup(*envFile, os.Stderr)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dataset":
			cfg.Dataset = *dir
		case "out":
			cfg.Out = *out
		case "lang":
			cfg.Language = *lang
		case "lexicon":
			cfg.Lexicon = *lexicon
		case "stopwords":
			cfg.Stopwords = *stopwords
		case "workers":
			cfg.Workers = *workers
		case "vader":
			cfg.Vader = *vader
		case "serve":
			cfg.Addr = *serve
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("entsent failed", "err", err)
		os.Exit(1)
	}
}

// setup loads the env file, installs the logger and reads the
// configuration. The env file may set ENTSENT_LOG_LEVEL, so it is loaded
// before the logger exists.
func setup(envFile string, logOut io.Writer) (config.Config, *slog.Logger) {
	envErr := config.LoadEnv(envFile)
	logger := logging.InitLogger(logOut)
	if envErr != nil {
		logger.Warn("no env file found, using OS environment", "file", envFile)
	}
	return config.FromEnv(), logger
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	lang := entsent.Language(cfg.Language)
	eng, err := buildEngine(cfg, lang)
	if err != nil {
		return err
	}
	if !eng.Supports(lang) {
		return entsent.FormatLanguageError(lang)
	}

	if cfg.Addr != "" {
		return serveAPI(ctx, cfg.Addr, eng, logger)
	}

	start := time.Now()
	records, err := dataset.Run(ctx, eng, dataset.Config{
		Dir:      cfg.Dataset,
		Language: lang,
		Workers:  cfg.Workers,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	if err := dataset.WriteCSVFile(cfg.Out, records); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Out, err)
	}
	logger.Info("feature table written", "path", cfg.Out, "records", len(records),
		"elapsed", time.Since(start).Round(time.Millisecond).String())
	return nil
}

// buildEngine loads the lexicon and stopwords before any scoring starts.
func buildEngine(cfg config.Config, lang entsent.Language) (*entsent.Engine, error) {
	words, err := entsent.LoadLexicon(cfg.Lexicon, lang)
	if err != nil {
		return nil, err
	}

	var lexicon entsent.PolarityLexicon = words
	if cfg.Vader {
		lexicon = entsent.ChainLexicon{words, entsent.NewVaderLexicon()}
	}

	stopwords := entsent.NewStopwords()
	if cfg.Stopwords != "" {
		if err := stopwords.LoadStopwordFile(cfg.Stopwords, lang); err != nil {
			return nil, err
		}
	}
	return entsent.NewEngine(lexicon, stopwords), nil
}

func serveAPI(ctx context.Context, addr string, eng *entsent.Engine, logger *slog.Logger) error {
	router := httpapi.SetupRouter(httpapi.NewServer(eng, nil, logger))
	srv := httpapi.NewHTTPServer(addr, router)

	errc := make(chan error, 1)
	go func() {
		logger.Info("serving API", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
