package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Config locates the CSV files backing the source and sink.
type Config struct {
	// Dir holds one <table>.csv per source table.
	Dir string `json:"dir"`
	// OutDir receives result tables. Defaults to Dir.
	OutDir string `json:"out_dir"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "sheets"
	}
	if c.OutDir == "" {
		c.OutDir = c.Dir
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("sheets dir is required")
	}
	return nil
}

// CSVStore reads and writes tables as CSV files in the configured
// directories. It implements both Reader and Writer.
type CSVStore struct {
	cfg Config
}

// NewCSVStore creates a store over the configured directories.
func NewCSVStore(cfg Config) *CSVStore {
	return &CSVStore{cfg: cfg}
}

// Table reads <dir>/<name>.csv and returns its rows with the header row
// dropped. Rows may have varying field counts; callers index defensively.
func (s *CSVStore) Table(name string) ([][]string, error) {
	path := filepath.Join(s.cfg.Dir, name+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// WriteTable writes <out_dir>/<name>.csv with the given header and rows.
func (s *CSVStore) WriteTable(name string, header []string, rows [][]string) error {
	if err := os.MkdirAll(s.cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(s.cfg.OutDir, name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create table %s: %w", name, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return fmt.Errorf("write table %s: %w", name, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			_ = f.Close()
			return fmt.Errorf("write table %s: %w", name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush table %s: %w", name, err)
	}
	return f.Close()
}
