package trust

import "strings"

const (
	// MaxWeight bounds the bonus a single source can contribute.
	MaxWeight = 25

	defaultWeight = 0
)

// Table maps known publication sources to a trust bonus weight.
// Lookup is exact on the normalized (trimmed, lowercased) name; fuzzy
// matching is deliberately avoided to keep credibility auditable.
type Table struct {
	weights map[string]int
}

// NewTable builds a table from raw entries, normalizing names and
// clamping weights to [0, MaxWeight].
func NewTable(entries map[string]int) *Table {
	weights := make(map[string]int, len(entries))
	for name, weight := range entries {
		key := Normalize(name)
		if key == "" {
			continue
		}
		if weight < 0 {
			weight = 0
		}
		if weight > MaxWeight {
			weight = MaxWeight
		}
		weights[key] = weight
	}
	return &Table{weights: weights}
}

// Default returns the built-in table of recognized news outlets.
func Default() *Table {
	return NewTable(map[string]int{
		"bbc news":            20,
		"reuters":             20,
		"associated press":    20,
		"ap news":             20,
		"the guardian":        18,
		"the new york times":  18,
		"the washington post": 18,
		"financial times":     18,
		"the economist":       18,
		"al jazeera":          15,
		"dw":                  15,
		"the independent":     15,
		"the telegraph":       15,
		"cnn":                 15,
		"nbc news":            15,
		"abc news":            15,
		"cbs news":            15,
		"fox news":            12,
		"hacker news":         10,
	})
}

// Merge overlays additional entries on top of the table, returning a
// new table; existing weights for the same normalized name are replaced.
func (t *Table) Merge(entries map[string]int) *Table {
	combined := make(map[string]int, len(t.weights)+len(entries))
	for name, weight := range t.weights {
		combined[name] = weight
	}
	for name, weight := range entries {
		combined[name] = weight
	}
	return NewTable(combined)
}

// Bonus returns the trust weight for a source. Unknown sources get the
// neutral default; the lookup never fails.
func (t *Table) Bonus(source string) int {
	if t == nil {
		return defaultWeight
	}
	if weight, ok := t.weights[Normalize(source)]; ok {
		return weight
	}
	return defaultWeight
}

// Normalize canonicalizes a source name for lookup.
func Normalize(source string) string {
	return strings.ToLower(strings.TrimSpace(source))
}
