package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lead-generator-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Country,Product,Competitor,Industry,Supplier,Frequency,ImportDate\n"

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leads.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeSource(t, header+
		"DE,AC,ABB,Mining,S1,12,2024-03-01\n"+
		"FR,DC,WEG,Food,S2,40,2024-02-11\n"+
		"DE,Servo,,Mining,S1,12,2023-12-30\n")

	snap, err := Load(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, snap.Len())
	assert.Equal(t, path, snap.Source())
	assert.False(t, snap.LoadedAt().IsZero())
	assert.Equal(t, strings.Split(strings.TrimSpace(header), ","), snap.Columns())
	assert.Equal(t, []string{"DE", "FR"}, snap.Options(entity.DimensionCountry))
	assert.Equal(t, []string{"", "ABB", "WEG"}, snap.Options(entity.DimensionCompetitor))

	leads := snap.Leads()
	// FR rank 1 -> 10, the two 12s rank 2.5 -> 20 each, ordered by score desc
	assert.Equal(t, []int{20, 20, 10}, []int{leads[0].LeadScore, leads[1].LeadScore, leads[2].LeadScore})
	assert.Equal(t, "AC", leads[0].Product)
	assert.Equal(t, "Servo", leads[1].Product)
	assert.Equal(t, 2024, leads[0].ImportDate.Year())
}

func TestSnapshotAccessorsReturnCopies(t *testing.T) {
	snap, err := Parse(strings.NewReader(header+"DE,AC,ABB,Mining,S1,1,2024-01-01\n"), Options{})
	require.NoError(t, err)

	leads := snap.Leads()
	leads[0].Country = "XX"
	opts := snap.Options(entity.DimensionCountry)
	opts[0] = "XX"
	cols := snap.Columns()
	cols[0] = "XX"

	assert.Equal(t, "DE", snap.Leads()[0].Country)
	assert.Equal(t, []string{"DE"}, snap.Options(entity.DimensionCountry))
	assert.Equal(t, "Country", snap.Columns()[0])
}

func TestSnapshotLeadsCloneExtraColumns(t *testing.T) {
	src := "LeadId," + header + "L-1,DE,AC,ABB,Mining,S1,1,2024-01-01\n"
	snap, err := Parse(strings.NewReader(src), Options{})
	require.NoError(t, err)

	leads := snap.Leads()
	leads[0].Extra["LeadId"] = "changed"
	leads[0].Extra["Added"] = "x"

	assert.Equal(t, map[string]string{"LeadId": "L-1"}, snap.Leads()[0].Extra)
}

func TestParseExtraColumnsAndBOM(t *testing.T) {
	src := "\ufeffLeadId, Country ,Product,Competitor,Industry,Supplier,Frequency,ImportDate,LeadScore\n" +
		"L-1,DE,AC,ABB,Mining,S1,3,2024-01-01,999\n"

	snap, err := Parse(strings.NewReader(src), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"LeadId", "Country", "Product", "Competitor", "Industry", "Supplier", "Frequency", "ImportDate"}, snap.Columns())
	lead := snap.Leads()[0]
	assert.Equal(t, "DE", lead.Country)
	assert.Equal(t, map[string]string{"LeadId": "L-1"}, lead.Extra)
	assert.Equal(t, 10, lead.LeadScore)
}

func TestParseCustomDateLayout(t *testing.T) {
	snap, err := Parse(strings.NewReader(header+"DE,AC,ABB,Mining,S1,1,03/15/2024\n"), Options{DateLayout: "01/02/2006"})
	require.NoError(t, err)

	assert.Equal(t, 15, snap.Leads()[0].ImportDate.Day())
}

func TestParseHeaderOnly(t *testing.T) {
	snap, err := Parse(strings.NewReader(header), Options{})
	require.NoError(t, err)

	assert.Equal(t, 0, snap.Len())
	assert.Empty(t, snap.Options(entity.DimensionProduct))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		column  string
		line    int
	}{
		{
			name:    "empty file",
			content: "",
			wantErr: ErrEmptySource,
		},
		{
			name:    "missing column",
			content: "Country,Product,Competitor,Industry,Frequency,ImportDate\nDE,AC,ABB,Mining,1,2024-01-01\n",
			wantErr: ErrMissingColumn,
			column:  "Supplier",
			line:    1,
		},
		{
			name:    "bad date",
			content: header + "DE,AC,ABB,Mining,S1,1,2024-01-01\nFR,AC,ABB,Mining,S1,2,yesterday\n",
			wantErr: ErrInvalidDate,
			column:  "ImportDate",
			line:    3,
		},
		{
			name:    "bad number",
			content: header + "DE,AC,ABB,Mining,S1,lots,2024-01-01\n",
			wantErr: ErrInvalidNumber,
			column:  "Frequency",
			line:    2,
		},
		{
			name:    "empty number",
			content: header + "DE,AC,ABB,Mining,S1,,2024-01-01\n",
			wantErr: ErrInvalidNumber,
			column:  "Frequency",
			line:    2,
		},
		{
			name:    "negative number",
			content: header + "DE,AC,ABB,Mining,S1,-4,2024-01-01\n",
			wantErr: ErrInvalidNumber,
			column:  "Frequency",
			line:    2,
		},
		{
			name:    "NaN",
			content: header + "DE,AC,ABB,Mining,S1,NaN,2024-01-01\n",
			wantErr: ErrInvalidNumber,
			column:  "Frequency",
			line:    2,
		},
		{
			name:    "ragged row",
			content: header + "DE,AC,ABB\n",
			wantErr: ErrMalformedRow,
			line:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSource(t, tt.content)

			snap, err := Load(path, Options{})

			assert.Nil(t, snap)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, path, loadErr.Path)
			assert.Equal(t, tt.column, loadErr.Column)
			assert.Equal(t, tt.line, loadErr.Line)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), Options{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.Contains(t, err.Error(), "nope.csv")
}
