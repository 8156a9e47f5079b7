package filter

import "lead-generator-be/internal/entity"

// OptionSource exposes the distinct values of each dimension.
type OptionSource interface {
	Options(d entity.Dimension) []string
}

// Default builds the initial selection: every country and product, no
// competitor constraint.
func Default(src OptionSource) entity.Selection {
	return entity.Selection{
		Countries:   src.Options(entity.DimensionCountry),
		Products:    src.Options(entity.DimensionProduct),
		Competitors: []string{},
	}
}

// Apply returns the leads matching sel in their input order. The input
// slice is not modified.
func Apply(leads []entity.Lead, sel entity.Selection) []entity.Lead {
	m := newMatcher(sel)
	out := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if m.match(l) {
			out = append(out, l)
		}
	}
	return out
}

// Matches reports whether a single lead passes sel.
func Matches(l entity.Lead, sel entity.Selection) bool {
	return newMatcher(sel).match(l)
}

type matcher struct {
	countries   map[string]struct{}
	products    map[string]struct{}
	competitors map[string]struct{}
}

func newMatcher(sel entity.Selection) matcher {
	return matcher{
		countries:   toSet(sel.Countries),
		products:    toSet(sel.Products),
		competitors: toSet(sel.Competitors),
	}
}

func (m matcher) match(l entity.Lead) bool {
	if _, ok := m.countries[l.Country]; !ok {
		return false
	}
	if _, ok := m.products[l.Product]; !ok {
		return false
	}
	// empty competitor set leaves competitors unconstrained
	if len(m.competitors) == 0 {
		return true
	}
	_, ok := m.competitors[l.Competitor]
	return ok
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
