package store

import (
	"maps"
	"sort"
	"time"

	"lead-generator-be/internal/entity"
)

// Snapshot is the scored, read-only leads table of one process. It is built
// once and shared by reference; every accessor hands out copies.
type Snapshot struct {
	leads    []entity.Lead
	columns  []string
	options  map[entity.Dimension][]string
	source   string
	loadedAt time.Time
}

func newSnapshot(leads []entity.Lead, columns []string, source string) *Snapshot {
	options := make(map[entity.Dimension][]string, len(entity.Dimensions))
	for _, d := range entity.Dimensions {
		options[d] = distinct(leads, d)
	}

	return &Snapshot{
		leads:    leads,
		columns:  columns,
		options:  options,
		source:   source,
		loadedAt: time.Now(),
	}
}

// Leads returns the scored leads ordered by LeadScore descending. Extra
// maps are cloned along with the records.
func (s *Snapshot) Leads() []entity.Lead {
	out := make([]entity.Lead, len(s.leads))
	copy(out, s.leads)
	for i := range out {
		if out[i].Extra != nil {
			out[i].Extra = maps.Clone(out[i].Extra)
		}
	}
	return out
}

func (s *Snapshot) Len() int {
	return len(s.leads)
}

// Columns returns the source header order, without LeadScore.
func (s *Snapshot) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Options returns the sorted distinct values observed for a dimension.
func (s *Snapshot) Options(d entity.Dimension) []string {
	values := s.options[d]
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func (s *Snapshot) Source() string {
	return s.source
}

func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

func distinct(leads []entity.Lead, d entity.Dimension) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, l := range leads {
		v := l.Value(d)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
