package joker

import rand "math/rand/v2"

// Registry is an ordered, enumerable set of joker catalog entries.
type Registry struct {
	entries []Joker
}

// NewRegistry creates a registry with the given entries.
func NewRegistry(entries ...Joker) *Registry {
	return &Registry{entries: entries}
}

// Register appends a catalog entry. New joker kinds are added here, not in
// the scoring engine.
func (r *Registry) Register(j Joker) {
	r.entries = append(r.entries, j)
}

// All returns the catalog entries in registration order.
func (r *Registry) All() []Joker {
	out := make([]Joker, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of catalog entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// ByName returns the catalog entry with the given name.
func (r *Registry) ByName(name string) (Joker, bool) {
	for _, j := range r.entries {
		if j.Name() == name {
			return j, true
		}
	}
	return nil, false
}

// Choose returns one uniformly random catalog entry, or nil for an empty
// registry.
func (r *Registry) Choose(rng *rand.Rand) Joker {
	if len(r.entries) == 0 {
		return nil
	}
	return r.entries[rng.IntN(len(r.entries))]
}

var catalog = NewRegistry(
	FlatMult("Joker", "Adds 4 to Mult", 4, 4),
	FlatMult("Abstract Art", "Adds 2 to Mult", 3, 2),
	FlatChips("Banner", "Adds 30 Chips", 5, 30),
	FlatChips("Stone Idol", "Adds 50 Chips", 7, 50),
	TimesMult("Acrobat", "Doubles Mult", 8, 2),
)

// Catalog returns the process-wide joker catalog.
func Catalog() *Registry {
	return catalog
}
