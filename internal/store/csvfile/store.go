// Package csvfile persists calculation history as a header-led CSV
// file, one record per calculation. Only the operation name and the
// two operands are stored; results are recomputed on load.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/colonyops/tally/internal/core/calc"
	"github.com/colonyops/tally/internal/core/history"
	"github.com/colonyops/tally/internal/core/logging"
)

// header is the fixed field order of the history file.
var header = []string{"operation", "operand1", "operand2"}

// Store implements history.Store using a CSV file at a fixed path.
type Store struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

// New creates a store for the CSV file at path.
func New(path string) *Store {
	return &Store{
		path: path,
		log:  logging.Component("csvfile"),
	}
}

// Path returns the location of the backing file.
func (s *Store) Path() string { return s.path }

// Write replaces the file with the given calculations, creating parent
// directories as needed. The file is always rewritten whole.
func (s *Store) Write(calcs []calc.Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create history file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write history header: %w", err)
	}
	for _, c := range calcs {
		record := []string{c.Op.Name(), c.A.String(), c.B.String()}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write history record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush history file: %w", err)
	}

	s.log.Debug().Int("records", len(calcs)).Str("path", s.path).Msg("history written")
	return nil
}

// Read loads all calculations from the file. An absent file returns
// history.ErrNoFile; an empty or header-only file returns
// history.ErrNoRecords. Records whose operation name is not one of the
// four canonical names are skipped, not treated as errors; malformed
// rows or operands fail the whole read.
func (s *Store) Read() ([]calc.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, history.ErrNoFile
		}
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer func() { _ = f.Close() }()

	// The header row pins the field count; ragged rows fail ReadAll.
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse history file: %w", err)
	}
	if len(rows) <= 1 {
		return nil, history.ErrNoRecords
	}

	calcs := make([]calc.Calculation, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("parse history file: record has %d fields, want %d", len(row), len(header))
		}

		op, err := calc.FromName(row[0])
		if err != nil {
			s.log.Debug().Str("operation", row[0]).Msg("skipping record with unknown operation")
			continue
		}

		a, err := decimal.NewFromString(row[1])
		if err != nil {
			return nil, fmt.Errorf("parse operand1 %q: %w", row[1], err)
		}
		b, err := decimal.NewFromString(row[2])
		if err != nil {
			return nil, fmt.Errorf("parse operand2 %q: %w", row[2], err)
		}

		calcs = append(calcs, calc.New(a, b, op))
	}

	return calcs, nil
}
