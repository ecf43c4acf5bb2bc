package history

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/periodtrack/internal/logger"
	"github.com/theirongolddev/periodtrack/internal/model"
)

// Header is the literal first row of the CSV file.
const Header = "Start Date"

// CSVStore keeps the history in a single-column CSV file.
type CSVStore struct {
	path string
}

// NewCSVStore returns a store backed by the file at path. The file is not
// touched until Load or Persist.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the backing file path.
func (s *CSVStore) Path() string {
	return s.path
}

// Load reads all persisted dates sorted ascending. A missing or empty file
// yields an empty history. Anything else that does not parse is reported
// as ErrStoreRead rather than silently treated as empty.
func (s *CSVStore) Load() ([]model.Date, error) {
	log := logger.With("history")

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debugf("no history at %s", s.path)
			return []model.Date{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %w", ErrStoreRead, s.path, err)
	}

	dates, err := decodeCSV(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStoreRead, s.path, err)
	}

	Sort(dates)
	log.Debugf("loaded %d dates from %s", len(dates), s.path)
	return dates, nil
}

// Persist overwrites the file with the header and one ISO date per row.
func (s *CSVStore) Persist(history []model.Date) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrStoreWrite, dir, err)
	}

	if err := os.WriteFile(s.path, encodeCSV(history), 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}

	logger.With("history").Debugf("persisted %d dates to %s", len(history), s.path)
	return nil
}

func decodeCSV(data []byte) ([]model.Date, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []model.Date{}, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = 1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if strings.TrimSpace(strings.TrimPrefix(header[0], "\ufeff")) != Header {
		return nil, fmt.Errorf("unexpected header %q, want %q", header[0], Header)
	}

	dates := []model.Date{}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := r.FieldPos(0)
		d, err := model.ParseDate(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func encodeCSV(history []model.Date) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{Header})
	for _, d := range history {
		_ = w.Write([]string{d.String()})
	}
	w.Flush()
	return buf.Bytes()
}
