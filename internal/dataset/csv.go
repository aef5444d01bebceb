package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/tsawler/entsent"
)

// WriteCSV writes a header row followed by one row per record.
func WriteCSV(w io.Writer, records []entsent.FeatureRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(entsent.Columns()); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the feature table to path, creating its directory.
func WriteCSVFile(path string, records []entsent.FeatureRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
