package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"lead-generator-be/internal/entity"
)

// DefaultFileName is the download name offered for a filtered export.
const DefaultFileName = "filtered_leads.csv"

// ContentType of the exported bytes.
const ContentType = "text/csv; charset=utf-8"

// Exporter writes leads as comma separated UTF-8 text. Columns is the source
// header order; LeadScore is always appended as the last column.
type Exporter struct {
	Columns    []string
	DateLayout string
}

func NewExporter(columns []string, dateLayout string) *Exporter {
	return &Exporter{
		Columns:    columns,
		DateLayout: dateLayout,
	}
}

// Header returns the exported header row.
func (e *Exporter) Header() []string {
	header := make([]string, 0, len(e.Columns)+1)
	header = append(header, e.Columns...)
	return append(header, entity.ColumnLeadScore)
}

// Export serializes leads with one header row and one row per lead.
func (e *Exporter) Export(leads []entity.Lead) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := e.Header()
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(header))
	for i, l := range leads {
		for j, col := range header {
			row[j] = e.field(l, col)
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) field(l entity.Lead, col string) string {
	switch col {
	case entity.ColumnFrequency:
		return FormatFrequency(l.Frequency)
	case entity.ColumnImportDate:
		return l.ImportDate.Format(e.DateLayout)
	case entity.ColumnLeadScore:
		return strconv.Itoa(l.LeadScore)
	}
	switch d := entity.Dimension(col); d {
	case entity.DimensionCountry, entity.DimensionProduct, entity.DimensionCompetitor,
		entity.DimensionIndustry, entity.DimensionSupplier:
		return l.Value(d)
	}
	return l.Extra[col]
}

// FormatFrequency writes whole numbers without a fractional part and keeps
// the shortest exact form otherwise.
func FormatFrequency(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
