package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"cellstats/internal/models"

	"github.com/jszwec/csvutil"
)

// ErrNoHeader is returned for an input without a header row.
var ErrNoHeader = errors.New("csv has no header row")

type Parser struct {
	filename string
}

func NewParser(filename string) *Parser {
	return &Parser{filename: filename}
}

// ParseRecords reads every row of the file as a RawCell.
func (p *Parser) ParseRecords() ([]models.RawCell, error) {
	file, err := os.Open(p.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	records, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.filename, err)
	}
	return records, nil
}

// Decode reads rows from r. The header must name all twelve cell columns, in
// any order; extra columns are ignored. Values are trimmed.
func Decode(r io.Reader) ([]models.RawCell, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true

	decoder, err := csvutil.NewDecoder(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}
	decoder.DisallowMissingColumns = true

	if err := checkHeader(decoder.Header()); err != nil {
		return nil, err
	}

	var records []models.RawCell
	if err := decoder.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.RawCell{}, nil
		}
		return nil, fmt.Errorf("failed to decode CSV: %w", err)
	}

	for i := range records {
		records[i] = records[i].Trimmed()
	}
	return records, nil
}

// checkHeader fails with a *csvutil.MissingColumnsError naming every absent column.
func checkHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, name := range models.ColumnNames() {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("csv header is missing columns: %w", &csvutil.MissingColumnsError{Columns: missing})
	}
	return nil
}
