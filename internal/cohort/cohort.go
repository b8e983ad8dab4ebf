// Package cohort holds the reference ratio tables that scoring measures
// against. A table is selected by ethnicity, gender and age band and is
// built by layering the matching deltas over the base table.
package cohort

import (
	"fmt"
	"sort"
)

// Ratio is the reference value of one metric and the deviation that counts
// as one standard unit.
type Ratio struct {
	Ideal  float64 `json:"ideal"`
	Spread float64 `json:"spread"`
}

// Key selects a cohort.
type Key struct {
	Ethnicity string `json:"ethnicity"`
	Gender    string `json:"gender"`
	AgeBand   string `json:"ageBand"`
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", orDash(k.Ethnicity), orDash(k.Gender), orDash(k.AgeBand))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// RatioTable is an immutable metric-id to Ratio table.
type RatioTable struct {
	ratios map[string]Ratio
}

// Get returns the ratio for metric id.
func (t RatioTable) Get(id string) (Ratio, bool) {
	r, ok := t.ratios[id]
	return r, ok
}

// Len returns the number of metrics in the table.
func (t RatioTable) Len() int {
	return len(t.ratios)
}

// IDs returns the metric ids in sorted order.
func (t RatioTable) IDs() []string {
	ids := make([]string, 0, len(t.ratios))
	for id := range t.ratios {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type delta map[string]Ratio

func merge(layers ...delta) RatioTable {
	out := make(map[string]Ratio, len(base))
	for _, l := range layers {
		for id, r := range l {
			out[id] = r
		}
	}
	return RatioTable{ratios: out}
}

var tables = buildTables()

func buildTables() map[Key]RatioTable {
	out := make(map[Key]RatioTable, len(Ethnicities)*len(Genders)*len(AgeBands))
	for _, e := range Ethnicities {
		for _, g := range Genders {
			for _, a := range AgeBands {
				out[Key{e, g, a}] = merge(base, ethnicity[e], gender[g], age[a])
			}
		}
	}
	return out
}

// Baseline returns the table for a cohort. Unknown or empty fields skip
// their layer, so an entirely unknown cohort yields the base table.
func Baseline(ethnicityName, genderName, ageBand string) RatioTable {
	if t, ok := tables[Key{ethnicityName, genderName, ageBand}]; ok {
		return t
	}
	// Missing layers index to nil deltas.
	return merge(base, ethnicity[ethnicityName], gender[genderName], age[ageBand])
}

// For is Baseline keyed by k.
func For(k Key) RatioTable {
	return Baseline(k.Ethnicity, k.Gender, k.AgeBand)
}

// Known reports whether every field of k names a built cohort.
func Known(k Key) bool {
	_, ok := tables[k]
	return ok
}

// Keys lists every built cohort in stable order.
func Keys() []Key {
	keys := make([]Key, 0, len(tables))
	for _, e := range Ethnicities {
		for _, g := range Genders {
			for _, a := range AgeBands {
				keys = append(keys, Key{e, g, a})
			}
		}
	}
	return keys
}
