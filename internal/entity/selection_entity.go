package entity

import (
	"time"

	"github.com/google/uuid"
)

// Selection is the set of allowed values per filterable dimension.
//
// Countries and Products are hard constraints: an empty list lets nothing
// through. Competitors is optional: an empty list means "do not filter by
// competitor".
type Selection struct {
	Countries   []string `json:"countries"`
	Products    []string `json:"products"`
	Competitors []string `json:"competitors"`
}

// Clone returns a deep copy so callers can hand selections across sessions.
func (s Selection) Clone() Selection {
	return Selection{
		Countries:   cloneStrings(s.Countries),
		Products:    cloneStrings(s.Products),
		Competitors: cloneStrings(s.Competitors),
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

type Session struct {
	Id        uuid.UUID `json:"id"`
	Selection Selection `json:"selection"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
