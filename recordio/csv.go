package recordio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	xmlrecord "github.com/whyarkadas/optimized-xml-writer"
)

// CSVScanner reads CSV input and yields one Record per data row. The first
// row is the header; its cells name the fields of every following row, in
// column order. All values are strings. Rows with a different number of
// cells than the header stop the scan with an error.
type CSVScanner struct {
	r      *csv.Reader
	header []string
	row    int
	rec    xmlrecord.Record
	err    error
}

// NewCSVScanner returns a CSVScanner reading from r.
func NewCSVScanner(r io.Reader) *CSVScanner {
	return &CSVScanner{r: csv.NewReader(r)}
}

// Scan advances to the next data row, reading the header first if it has
// not been read yet.
func (s *CSVScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if s.header == nil {
		header, err := s.r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.err = fmt.Errorf("recordio: csv input has no header row")
			} else {
				s.err = fmt.Errorf("recordio: csv header: %w", err)
			}
			return false
		}
		s.header = header
		s.row = 1
	}

	cells, err := s.r.Read()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = fmt.Errorf("recordio: csv row %d: %w", s.row+1, err)
		}
		return false
	}
	s.row++

	rec := make(xmlrecord.Record, 0, len(s.header))
	for i, name := range s.header {
		rec = append(rec, xmlrecord.Field{Name: name, Value: cells[i]})
	}
	s.rec = rec
	return true
}

// Record returns the record produced by the last successful Scan.
func (s *CSVScanner) Record() xmlrecord.Record { return s.rec }

// Err returns the first error encountered, or nil at clean EOF.
func (s *CSVScanner) Err() error { return s.err }
