package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"lead-generator-be/internal/entity"
	"lead-generator-be/pkg/leads/scoring"
)

// DefaultDateLayout is the ImportDate format used when Options leaves it empty.
const DefaultDateLayout = "2006-01-02"

// Options controls how a source table is parsed.
type Options struct {
	// DateLayout is the Go time layout of the ImportDate column.
	DateLayout string
}

func (o Options) dateLayout() string {
	if o.DateLayout == "" {
		return DefaultDateLayout
	}
	return o.DateLayout
}

// Load reads the source file at path, scores it and returns the snapshot.
// Any missing column or unparseable value fails the whole load.
func Load(path string, opts Options) (*Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newLoadError("open", path, 0, "", ErrSourceNotFound)
		}
		return nil, newLoadError("open", path, 0, "", err)
	}
	defer file.Close()

	return parse(file, path, opts)
}

// Parse is Load for an already open source.
func Parse(r io.Reader, opts Options) (*Snapshot, error) {
	return parse(r, "", opts)
}

func parse(r io.Reader, path string, opts Options) (*Snapshot, error) {
	reader := csv.NewReader(r)
	layout := opts.dateLayout()

	rawHeader, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, newLoadError("header", path, 0, "", ErrEmptySource)
		}
		return nil, newLoadError("header", path, 1, "", fmt.Errorf("%w: %v", ErrMalformedRow, err))
	}

	header := normalizeHeader(rawHeader)
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, col := range entity.RequiredColumns {
		if _, ok := index[col]; !ok {
			return nil, newLoadError("header", path, 1, col, ErrMissingColumn)
		}
	}

	required := make(map[string]bool, len(entity.RequiredColumns))
	for _, col := range entity.RequiredColumns {
		required[col] = true
	}

	// LeadScore is always derived; a source copy of it is discarded.
	columns := make([]string, 0, len(header))
	var extras []int
	for i, name := range header {
		if name == entity.ColumnLeadScore || index[name] != i {
			continue
		}
		columns = append(columns, name)
		if !required[name] {
			extras = append(extras, i)
		}
	}

	var leads []entity.Lead
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.Line
			}
			return nil, newLoadError("row", path, line, "", fmt.Errorf("%w: %v", ErrMalformedRow, err))
		}
		line, _ := reader.FieldPos(0)

		freqRaw := row[index[entity.ColumnFrequency]]
		freq, err := parseFrequency(freqRaw)
		if err != nil {
			return nil, newLoadError("row", path, line, entity.ColumnFrequency, err)
		}

		dateRaw := row[index[entity.ColumnImportDate]]
		date, err := time.Parse(layout, strings.TrimSpace(dateRaw))
		if err != nil {
			return nil, newLoadError("row", path, line, entity.ColumnImportDate, fmt.Errorf("%w: %q", ErrInvalidDate, dateRaw))
		}

		lead := entity.Lead{
			Country:    row[index[string(entity.DimensionCountry)]],
			Product:    row[index[string(entity.DimensionProduct)]],
			Competitor: row[index[string(entity.DimensionCompetitor)]],
			Industry:   row[index[string(entity.DimensionIndustry)]],
			Supplier:   row[index[string(entity.DimensionSupplier)]],
			Frequency:  freq,
			ImportDate: date,
		}
		if len(extras) > 0 {
			lead.Extra = make(map[string]string, len(extras))
			for _, i := range extras {
				lead.Extra[header[i]] = row[i]
			}
		}
		leads = append(leads, lead)
	}

	return newSnapshot(scoring.Derive(leads), columns, path), nil
}

func parseFrequency(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative frequency %q", ErrInvalidNumber, raw)
	}
	return v, nil
}

func normalizeHeader(raw []string) []string {
	header := make([]string, len(raw))
	for i, name := range raw {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		header[i] = strings.TrimSpace(name)
	}
	return header
}
