package dashboard

import (
	"lead-generator-be/internal/entity"
	"lead-generator-be/internal/pkg/logger"
)

type ChartKind string

const (
	ChartBar ChartKind = "bar"
	ChartPie ChartKind = "pie"
)

// ChartPoint is one bar or slice. Count is set for count charts, Value
// carries the plotted number.
type ChartPoint struct {
	Label string
	Value float64
	Count int
}

type Chart struct {
	Key       string
	Heading   string
	Title     string
	Kind      ChartKind
	Dimension entity.Dimension
	XLabel    string
	YLabel    string
	Points    []ChartPoint
}

// Dashboard is everything the page renders for one lead set.
type Dashboard struct {
	Summary Summary
	Charts  []Chart
}

// Chart returns the chart with key, or nil.
func (d *Dashboard) Chart(key string) *Chart {
	for i := range d.Charts {
		if d.Charts[i].Key == key {
			return &d.Charts[i]
		}
	}
	return nil
}

type countChart struct {
	key       string
	heading   string
	title     string
	kind      ChartKind
	dimension entity.Dimension
	yLabel    string
}

var countCharts = []countChart{
	{"country_counts", "Leads by Country", "Top Countries", ChartBar, entity.DimensionCountry, "Count"},
	{"product_share", "Product Distribution", "Product Share", ChartPie, entity.DimensionProduct, "Leads"},
	{"competitor_counts", "Top Competitors", "Competitor Presence", ChartBar, entity.DimensionCompetitor, "Leads"},
	{"industry_counts", "Top Industries", "Industry Focus", ChartBar, entity.DimensionIndustry, "Leads"},
	{"supplier_counts", "Top Suppliers", "Suppliers", ChartBar, entity.DimensionSupplier, "Shipments"},
}

// Aggregator turns a filtered lead set into dashboard metrics and charts
type Aggregator struct {
	logger logger.ILogger
}

// NewAggregator creates a new dashboard aggregator
func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// Build computes the summary and the six chart aggregates. It never fails;
// an empty set produces sentinel metrics and empty charts.
func (a *Aggregator) Build(leads []entity.Lead) *Dashboard {
	d := &Dashboard{
		Summary: Summarize(leads),
		Charts:  make([]Chart, 0, len(countCharts)+1),
	}

	for _, spec := range countCharts {
		counts := ValueCounts(leads, spec.dimension)
		points := make([]ChartPoint, 0, len(counts))
		for _, c := range counts {
			points = append(points, ChartPoint{Label: c.Value, Value: float64(c.Count), Count: c.Count})
		}
		d.Charts = append(d.Charts, Chart{
			Key:       spec.key,
			Heading:   spec.heading,
			Title:     spec.title,
			Kind:      spec.kind,
			Dimension: spec.dimension,
			XLabel:    string(spec.dimension),
			YLabel:    spec.yLabel,
			Points:    points,
		})
	}

	means := GroupedMean(leads, entity.DimensionProduct, Frequency)
	points := make([]ChartPoint, 0, len(means))
	for _, m := range means {
		points = append(points, ChartPoint{Label: m.Value, Value: Round2(m.Mean), Count: m.Count})
	}
	d.Charts = append(d.Charts, Chart{
		Key:       "frequency_by_product",
		Heading:   "Avg Frequency per Product",
		Title:     "Frequency by Product",
		Kind:      ChartBar,
		Dimension: entity.DimensionProduct,
		XLabel:    string(entity.DimensionProduct),
		YLabel:    "Avg Frequency",
		Points:    points,
	})

	a.logger.Debug("Aggregator", "Dashboard built", map[string]interface{}{
		"leads":  d.Summary.Count,
		"charts": len(d.Charts),
	})
	return d
}
