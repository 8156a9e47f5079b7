package dashboard

import (
	"testing"

	"lead-generator-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeExample(t *testing.T) {
	leads := []entity.Lead{
		{Product: "A", Supplier: "S1", Frequency: 10},
		{Product: "A", Supplier: "S2", Frequency: 20},
		{Product: "B", Supplier: "S2", Frequency: 5},
	}

	s := Summarize(leads)

	assert.Equal(t, 3, s.Count)
	require.NotNil(t, s.MeanFrequency)
	assert.Equal(t, 11.67, *s.MeanFrequency)
	assert.Equal(t, "A", s.ModalProduct)
	assert.Equal(t, "S2", s.ModalSupplier)
	assert.Equal(t, []Count{{Value: "A", Count: 2}, {Value: "B", Count: 1}}, ValueCounts(leads, entity.DimensionProduct))
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.Count)
	assert.Nil(t, s.MeanFrequency)
	assert.Equal(t, NotAvailable, s.ModalProduct)
	assert.Equal(t, NotAvailable, s.ModalSupplier)
	for _, d := range entity.Dimensions {
		assert.Empty(t, ValueCounts(nil, d), string(d))
		assert.Empty(t, GroupedMean(nil, d, Frequency), string(d))
	}
}

func TestModeTieBreaksLexicographically(t *testing.T) {
	leads := []entity.Lead{
		{Supplier: "Zeta"},
		{Supplier: "Alpha"},
		{Supplier: "Zeta"},
		{Supplier: "Alpha"},
		{Supplier: "Mid"},
	}

	got, ok := Mode(leads, entity.DimensionSupplier)

	assert.True(t, ok)
	assert.Equal(t, "Alpha", got)
}

func TestValueCountsOrdering(t *testing.T) {
	leads := []entity.Lead{
		{Country: "FR"}, {Country: "DE"}, {Country: "IT"},
		{Country: "IT"}, {Country: "DE"}, {Country: "US"},
	}

	got := ValueCounts(leads, entity.DimensionCountry)

	assert.Equal(t, []Count{
		{Value: "DE", Count: 2},
		{Value: "IT", Count: 2},
		{Value: "FR", Count: 1},
		{Value: "US", Count: 1},
	}, got)
}

func TestGroupedMeanAscending(t *testing.T) {
	leads := []entity.Lead{
		{Product: "AC", Frequency: 10},
		{Product: "DC", Frequency: 2},
		{Product: "AC", Frequency: 20},
		{Product: "Servo", Frequency: 4},
		{Product: "DC", Frequency: 6},
	}

	got := GroupedMean(leads, entity.DimensionProduct, Frequency)

	assert.Equal(t, []GroupMean{
		{Value: "DC", Mean: 4, Count: 2},
		{Value: "Servo", Mean: 4, Count: 1},
		{Value: "AC", Mean: 15, Count: 2},
	}, got)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 11.67, Round2(35.0/3))
	assert.Equal(t, 2.5, Round2(2.5))
	assert.Equal(t, 0.0, Round2(0))
}
