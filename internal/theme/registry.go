package theme

import (
	"errors"
	"math/rand"
)

// Registry holds the loaded themes and provides lookup and weighted random
// selection.
type Registry struct {
	themes      []Theme
	weights     []int
	totalWeight int
}

// LoadRegistry loads and validates every theme from the embedded
// themes.json.
func LoadRegistry() (*Registry, error) {
	file, err := load[defsFile]("themes.json")
	if err != nil {
		return nil, err
	}
	if len(file.Themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}

	r := &Registry{}
	for i := range file.Themes {
		def := &file.Themes[i]
		t, err := def.build()
		if err != nil {
			return nil, err
		}
		r.themes = append(r.themes, t)
		r.weights = append(r.weights, def.Weight)
		r.totalWeight += def.Weight
	}
	return r, nil
}

// MustLoadRegistry loads the registry, panicking on error. The themes are
// embedded, so a failure here is a build defect.
func MustLoadRegistry() *Registry {
	r, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Count returns the number of loaded themes.
func (r *Registry) Count() int {
	return len(r.themes)
}

// Default returns the first theme in file order.
func (r *Registry) Default() Theme {
	return r.themes[0]
}

// Lookup returns the theme with the given ID and whether it exists.
func (r *Registry) Lookup(id string) (Theme, bool) {
	for i := range r.themes {
		if r.themes[i].ID == id {
			return r.themes[i], true
		}
	}
	return Theme{}, false
}

// PickRandom selects a theme using weighted probability; themes with higher
// weight are more likely.
func (r *Registry) PickRandom(rng *rand.Rand) Theme {
	if r.totalWeight <= 0 {
		return r.Default()
	}

	roll := rng.Intn(r.totalWeight)
	cumulative := 0
	for i := range r.themes {
		cumulative += r.weights[i]
		if roll < cumulative {
			return r.themes[i]
		}
	}
	return r.Default()
}
