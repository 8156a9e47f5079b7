package scoring

import (
	"testing"

	"lead-generator-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{name: "empty", values: nil, want: []float64{}},
		{name: "distinct", values: []float64{5, 20, 10}, want: []float64{3, 1, 2}},
		{name: "pair tie", values: []float64{15, 30, 15}, want: []float64{2.5, 1, 2.5}},
		{name: "triple tie", values: []float64{7, 7, 7}, want: []float64{2, 2, 2}},
		{name: "tie at top", values: []float64{9, 9, 1, 4}, want: []float64{1.5, 1.5, 4, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rank(tt.values))
		})
	}
}

func TestScoreTruncatesRank(t *testing.T) {
	assert.Equal(t, 10, Score(1.5))
	assert.Equal(t, 10, Score(1))
	assert.Equal(t, 20, Score(2.5))
	assert.Equal(t, 30, Score(3))
}

func TestDeriveTiedFrequenciesShareScore(t *testing.T) {
	leads := []entity.Lead{
		{Country: "DE", Product: "A", Frequency: 15},
		{Country: "FR", Product: "B", Frequency: 40},
		{Country: "IT", Product: "C", Frequency: 15},
	}

	scored := Derive(leads)
	require.Len(t, scored, 3)

	byCountry := map[string]int{}
	for _, l := range scored {
		byCountry[l.Country] = l.LeadScore
	}
	// ranks: FR=1, DE=IT=2.5
	assert.Equal(t, 10, byCountry["FR"])
	assert.Equal(t, 20, byCountry["DE"])
	assert.Equal(t, byCountry["DE"], byCountry["IT"])
}

func TestDeriveOrdersByScoreDescendingStable(t *testing.T) {
	leads := []entity.Lead{
		{Country: "A", Frequency: 100},
		{Country: "B", Frequency: 1},
		{Country: "C", Frequency: 50},
		{Country: "D", Frequency: 50},
	}

	scored := Derive(leads)

	got := make([]string, len(scored))
	for i, l := range scored {
		got[i] = l.Country
	}
	// A=10, C=D=20 (rank 2.5), B=40
	assert.Equal(t, []string{"B", "C", "D", "A"}, got)
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	leads := []entity.Lead{{Country: "A", Frequency: 3}, {Country: "B", Frequency: 9}}

	_ = Derive(leads)

	assert.Equal(t, "A", leads[0].Country)
	assert.Zero(t, leads[0].LeadScore)
}

func TestDeriveIsIdempotent(t *testing.T) {
	leads := []entity.Lead{
		{Country: "A", Frequency: 4},
		{Country: "B", Frequency: 4},
		{Country: "C", Frequency: 12},
		{Country: "D", Frequency: 0},
		{Country: "E", Frequency: 7.5},
	}

	once := Derive(leads)
	twice := Derive(once)

	assert.Equal(t, once, twice)
}
