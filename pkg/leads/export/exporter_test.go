package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"
	"time"

	"lead-generator-be/internal/entity"
	"lead-generator-be/pkg/leads/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const layout = "2006-01-02"

var columns = []string{"Country", "Product", "Competitor", "Industry", "Supplier", "Frequency", "ImportDate"}

func date(s string) time.Time {
	t, _ := time.Parse(layout, s)
	return t
}

func TestExportHeaderAndRows(t *testing.T) {
	e := NewExporter(columns, layout)
	leads := []entity.Lead{
		{Country: "DE", Product: "AC", Competitor: "ABB", Industry: "Mining", Supplier: "S1", Frequency: 12, ImportDate: date("2024-03-01"), LeadScore: 20},
		{Country: "Côte d'Ivoire", Product: "DC, large", Competitor: "", Industry: "Food", Supplier: "S2", Frequency: 2.5, ImportDate: date("2024-01-15"), LeadScore: 10},
	}

	out, err := e.Export(leads)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Country,Product,Competitor,Industry,Supplier,Frequency,ImportDate,LeadScore", lines[0])
	assert.Equal(t, "DE,AC,ABB,Mining,S1,12,2024-03-01,20", lines[1])
	assert.Equal(t, `Côte d'Ivoire,"DC, large",,Food,S2,2.5,2024-01-15,10`, lines[2])
}

func TestExportEmptySetWritesHeaderOnly(t *testing.T) {
	out, err := NewExporter(columns, layout).Export(nil)

	require.NoError(t, err)
	assert.Equal(t, "Country,Product,Competitor,Industry,Supplier,Frequency,ImportDate,LeadScore\n", string(out))
}

func TestExportKeepsExtraColumns(t *testing.T) {
	cols := append([]string{"LeadId"}, columns...)
	e := NewExporter(cols, layout)
	leads := []entity.Lead{{Country: "DE", Frequency: 1, ImportDate: date("2024-01-01"), Extra: map[string]string{"LeadId": "L-7"}}}

	out, err := e.Export(leads)
	require.NoError(t, err)

	assert.Contains(t, string(out), "LeadId,Country,")
	assert.Contains(t, string(out), "\nL-7,DE,")
}

func TestExportRoundTrip(t *testing.T) {
	src := "Country,Product,Competitor,Industry,Supplier,Frequency,ImportDate\n" +
		"DE,AC,ABB,Mining,S1,12,2024-03-01\n" +
		"FR,DC,WEG,Food,S2,15,2024-02-11\n" +
		"IT,\"Servo, 3ph\",ABB,Textiles,S1,15,2023-12-30\n" +
		"ES,AC,,Mining,S3,0.75,2024-01-05\n"
	snap, err := store.Parse(strings.NewReader(src), store.Options{DateLayout: layout})
	require.NoError(t, err)

	e := NewExporter(snap.Columns(), layout)
	leads := snap.Leads()
	out, err := e.Export(leads)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(leads)+1)

	header := rows[0]
	assert.Equal(t, e.Header(), header)
	for i, l := range leads {
		row := rows[i+1]
		assert.Equal(t, l.Country, row[0])
		assert.Equal(t, l.Product, row[1])
		assert.Equal(t, l.Competitor, row[2])
		assert.Equal(t, l.Industry, row[3])
		assert.Equal(t, l.Supplier, row[4])
		freq, err := strconv.ParseFloat(row[5], 64)
		require.NoError(t, err)
		assert.Equal(t, l.Frequency, freq)
		d, err := time.Parse(layout, row[6])
		require.NoError(t, err)
		assert.True(t, l.ImportDate.Equal(d))
		score, err := strconv.Atoi(row[7])
		require.NoError(t, err)
		assert.Equal(t, l.LeadScore, score)
	}

	// the export itself is loadable and yields the same records
	again, err := store.Parse(bytes.NewReader(out), store.Options{DateLayout: layout})
	require.NoError(t, err)
	assert.Equal(t, leads, again.Leads())
}
