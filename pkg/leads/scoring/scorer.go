package scoring

import (
	"sort"

	"lead-generator-be/internal/entity"
)

// ScoreMultiplier scales the integer rank into a LeadScore.
const ScoreMultiplier = 10

// Rank returns the 1-based fractional rank of every value when ordered
// descending. Tied values share the mean of the positions they occupy.
func Rank(values []float64) []float64 {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] > values[order[b]]
	})

	ranks := make([]float64, len(values))
	for start := 0; start < len(order); {
		end := start + 1
		for end < len(order) && values[order[end]] == values[order[start]] {
			end++
		}
		// positions start+1 .. end
		avg := float64(start+1+end) / 2
		for k := start; k < end; k++ {
			ranks[order[k]] = avg
		}
		start = end
	}
	return ranks
}

// Score converts a fractional rank into a LeadScore. The rank is truncated,
// not rounded: rank 1.5 scores 10 and rank 2.5 scores 20.
func Score(rank float64) int {
	return int(rank) * ScoreMultiplier
}

// Derive returns a copy of leads with LeadScore set from the Frequency rank
// across the whole input, ordered by LeadScore descending. Equal scores keep
// their input order.
func Derive(leads []entity.Lead) []entity.Lead {
	out := make([]entity.Lead, len(leads))
	copy(out, leads)

	freqs := make([]float64, len(out))
	for i, l := range out {
		freqs[i] = l.Frequency
	}
	for i, r := range Rank(freqs) {
		out[i].LeadScore = Score(r)
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].LeadScore > out[b].LeadScore
	})
	return out
}
