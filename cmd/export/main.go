// Command export writes the filtered, scored lead table to a CSV file
// without starting the HTTP server.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"lead-generator-be/internal/config"
	"lead-generator-be/pkg/leads/dashboard"
	"lead-generator-be/pkg/leads/export"
	"lead-generator-be/pkg/leads/filter"
	"lead-generator-be/pkg/leads/store"

	"github.com/fatih/color"
)

// multiFlag collects a repeatable string flag. set records whether the flag
// appeared at all, so -country= can select nothing.
type multiFlag struct {
	values []string
	set    bool
}

func (m *multiFlag) String() string { return strings.Join(m.values, ",") }

func (m *multiFlag) Set(v string) error {
	m.set = true
	if v != "" {
		m.values = append(m.values, v)
	}
	return nil
}

func (m *multiFlag) apply(current []string) []string {
	if !m.set {
		return current
	}
	return append([]string{}, m.values...)
}

func main() {
	cfg := config.Load()

	source := flag.String("source", cfg.Leads.SourcePath, "path to the lead CSV")
	out := flag.String("out", cfg.Leads.ExportFileName, "output CSV path")
	layout := flag.String("layout", cfg.Leads.DateLayout, "ImportDate layout")
	var countries, products, competitors multiFlag
	flag.Var(&countries, "country", "country to include (repeatable)")
	flag.Var(&products, "product", "product to include (repeatable)")
	flag.Var(&competitors, "competitor", "competitor to include (repeatable, none means any)")
	flag.Parse()

	snapshot, err := store.Load(*source, store.Options{DateLayout: *layout})
	if err != nil {
		color.Red("Failed to load leads: %v", err)
		os.Exit(1)
	}
	color.Cyan("Loaded %d leads from %s", snapshot.Len(), snapshot.Source())

	sel := filter.Default(snapshot)
	sel.Countries = countries.apply(sel.Countries)
	sel.Products = products.apply(sel.Products)
	sel.Competitors = competitors.apply(sel.Competitors)

	filtered := filter.Apply(snapshot.Leads(), sel)
	summary := dashboard.Summarize(filtered)

	color.Yellow("\nSummary")
	fmt.Printf("  Total Leads:   %d\n", summary.Count)
	if summary.MeanFrequency != nil {
		fmt.Printf("  Avg Frequency: %.2f\n", *summary.MeanFrequency)
	} else {
		fmt.Println("  Avg Frequency: N/A")
	}
	fmt.Printf("  Top Product:   %s\n", summary.ModalProduct)
	fmt.Printf("  Top Supplier:  %s\n", summary.ModalSupplier)

	content, err := export.NewExporter(snapshot.Columns(), *layout).Export(filtered)
	if err != nil {
		color.Red("Failed to render CSV: %v", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, content, 0o644); err != nil {
		color.Red("Failed to write %s: %v", *out, err)
		os.Exit(1)
	}
	color.Green("\nWrote %d rows to %s", len(filtered), *out)
}
