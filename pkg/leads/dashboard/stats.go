package dashboard

import (
	"math"
	"sort"

	"lead-generator-be/internal/entity"
)

// NotAvailable is reported for modal values of an empty lead set.
const NotAvailable = "N/A"

// Count is one entry of a value-count table.
type Count struct {
	Value string
	Count int
}

// GroupMean is the mean of a metric within one dimension value.
type GroupMean struct {
	Value string
	Mean  float64
	Count int
}

// Metric extracts a numeric measure from a lead.
type Metric func(entity.Lead) float64

// Frequency is the only numeric metric of the leads table.
func Frequency(l entity.Lead) float64 {
	return l.Frequency
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MeanFrequency returns the mean Frequency rounded to two decimals; ok is
// false for an empty set.
func MeanFrequency(leads []entity.Lead) (mean float64, ok bool) {
	if len(leads) == 0 {
		return 0, false
	}
	var total float64
	for _, l := range leads {
		total += l.Frequency
	}
	return Round2(total / float64(len(leads))), true
}

// Mode returns the most frequent value of d. Ties go to the value that
// sorts first; ok is false for an empty set.
func Mode(leads []entity.Lead, d entity.Dimension) (string, bool) {
	counts := ValueCounts(leads, d)
	if len(counts) == 0 {
		return "", false
	}
	return counts[0].Value, true
}

// ValueCounts counts each distinct value of d, ordered by count descending
// then value ascending.
func ValueCounts(leads []entity.Lead, d entity.Dimension) []Count {
	index := make(map[string]int)
	counts := make([]Count, 0)
	for _, l := range leads {
		v := l.Value(d)
		i, ok := index[v]
		if !ok {
			i = len(counts)
			index[v] = i
			counts = append(counts, Count{Value: v})
		}
		counts[i].Count++
	}

	sort.Slice(counts, func(a, b int) bool {
		if counts[a].Count != counts[b].Count {
			return counts[a].Count > counts[b].Count
		}
		return counts[a].Value < counts[b].Value
	})
	return counts
}

// GroupedMean computes the mean of metric within each value of d, ordered
// by mean ascending then value ascending.
func GroupedMean(leads []entity.Lead, d entity.Dimension, metric Metric) []GroupMean {
	type acc struct {
		sum   float64
		count int
	}
	index := make(map[string]int)
	keys := make([]string, 0)
	accs := make([]acc, 0)
	for _, l := range leads {
		v := l.Value(d)
		i, ok := index[v]
		if !ok {
			i = len(keys)
			index[v] = i
			keys = append(keys, v)
			accs = append(accs, acc{})
		}
		accs[i].sum += metric(l)
		accs[i].count++
	}

	groups := make([]GroupMean, len(keys))
	for i, k := range keys {
		groups[i] = GroupMean{
			Value: k,
			Mean:  accs[i].sum / float64(accs[i].count),
			Count: accs[i].count,
		}
	}

	sort.Slice(groups, func(a, b int) bool {
		if groups[a].Mean != groups[b].Mean {
			return groups[a].Mean < groups[b].Mean
		}
		return groups[a].Value < groups[b].Value
	})
	return groups
}

// Summary holds the four headline metrics of a lead set.
type Summary struct {
	Count int
	// MeanFrequency is nil when Count is zero.
	MeanFrequency *float64
	ModalProduct  string
	ModalSupplier string
}

// Summarize computes the headline metrics. An empty set yields zero count,
// nil mean and NotAvailable modes.
func Summarize(leads []entity.Lead) Summary {
	s := Summary{
		Count:         len(leads),
		ModalProduct:  NotAvailable,
		ModalSupplier: NotAvailable,
	}
	if mean, ok := MeanFrequency(leads); ok {
		s.MeanFrequency = &mean
	}
	if v, ok := Mode(leads, entity.DimensionProduct); ok {
		s.ModalProduct = v
	}
	if v, ok := Mode(leads, entity.DimensionSupplier); ok {
		s.ModalSupplier = v
	}
	return s
}
