// Package dataset runs the feature extraction over a directory of WebAnno
// TSV documents and exports the resulting feature table.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/entsent"
	"github.com/tsawler/entsent/internal/webanno"
)

// Config controls a dataset run.
type Config struct {
	Dir       string            // Directory holding <id>.tsv documents
	Language  entsent.Language  // Language of every document
	Workers   int               // Documents processed at once, <= 0 means unlimited
	Segmenter entsent.Segmenter // nil selects the Punkt segmenter
	Logger    *slog.Logger      // nil selects slog.Default()
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// ListDocuments returns the .tsv files of dir ordered by their numeric
// base name. Names that are not numbers sort after the numbered ones.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tsv") {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.SliceStable(names, func(i, j int) bool {
		a, aErr := strconv.Atoi(documentID(names[i]))
		b, bErr := strconv.Atoi(documentID(names[j]))
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return names[i] < names[j]
		}
	})

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

func documentID(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".tsv")
}

// Run extracts the feature records of every document in cfg.Dir. Records
// come back in document order, then entity order, whatever order the
// documents finish in.
func Run(ctx context.Context, eng *entsent.Engine, cfg Config) ([]entsent.FeatureRecord, error) {
	if !eng.Supports(cfg.Language) {
		return nil, entsent.FormatLanguageError(cfg.Language)
	}

	paths, err := ListDocuments(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("listing dataset: %w", err)
	}

	results := make([][]entsent.FeatureRecord, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, path := range paths {
		g.Go(func() error {
			records, err := ProcessFile(gctx, eng, path, cfg)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var records []entsent.FeatureRecord
	for _, r := range results {
		records = append(records, r...)
	}
	cfg.logger().Info("dataset processed", "documents", len(paths), "records", len(records))
	return records, nil
}

// ProcessFile extracts the feature records of one document. Entities
// without a rating or type are skipped, as are entities none of whose
// mentions line up with a word.
func ProcessFile(ctx context.Context, eng *entsent.Engine, path string, cfg Config) ([]entsent.FeatureRecord, error) {
	logger := cfg.logger()
	docID := documentID(path)
	logger.Info("extracting text", "doc", docID)

	file, err := webanno.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := entsent.NewDocument(file.Text,
		entsent.WithID(docID),
		entsent.WithLanguage(cfg.Language),
		entsent.WithContext(ctx),
		entsent.UsingSegmenter(cfg.Segmenter),
	)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", docID, err)
	}

	var records []entsent.FeatureRecord
	for _, e := range file.Entities() {
		if !e.Scorable() {
			logger.Debug("skipping entity without rating or type", "doc", docID, "entity", e.ID)
			continue
		}
		rec, err := eng.Features(e, doc)
		if errors.Is(err, entsent.ErrNoScorableMentions) {
			logger.Warn("skipping entity", "doc", docID, "entity", e.ID, "err", err)
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
