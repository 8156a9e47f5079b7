package entity

import "time"

// Dimension names a categorical column of the leads table.
type Dimension string

const (
	DimensionCountry    Dimension = "Country"
	DimensionProduct    Dimension = "Product"
	DimensionCompetitor Dimension = "Competitor"
	DimensionIndustry   Dimension = "Industry"
	DimensionSupplier   Dimension = "Supplier"
)

// Column names of the source table that are not dimensions.
const (
	ColumnFrequency  = "Frequency"
	ColumnImportDate = "ImportDate"
	ColumnLeadScore  = "LeadScore"
)

// Dimensions lists every categorical dimension in source-column order.
var Dimensions = []Dimension{
	DimensionCountry,
	DimensionProduct,
	DimensionCompetitor,
	DimensionIndustry,
	DimensionSupplier,
}

// RequiredColumns must all be present in the source header.
var RequiredColumns = []string{
	string(DimensionCountry),
	string(DimensionProduct),
	string(DimensionCompetitor),
	string(DimensionIndustry),
	string(DimensionSupplier),
	ColumnFrequency,
	ColumnImportDate,
}

type Lead struct {
	Country    string
	Product    string
	Competitor string
	Industry   string
	Supplier   string
	Frequency  float64
	ImportDate time.Time
	LeadScore  int

	// Extra holds source columns outside the required set, keyed by header name.
	Extra map[string]string
}

// Value returns the lead's value for a categorical dimension.
func (l Lead) Value(d Dimension) string {
	switch d {
	case DimensionCountry:
		return l.Country
	case DimensionProduct:
		return l.Product
	case DimensionCompetitor:
		return l.Competitor
	case DimensionIndustry:
		return l.Industry
	case DimensionSupplier:
		return l.Supplier
	}
	return ""
}
