package tweak

import "fmt"

// Catalog is the fixed, ordered list of available tweaks. It is built once and
// only read afterwards, so it is safe for concurrent use.
type Catalog struct {
	tweaks []Tweak
	index  map[string]int
}

// NewCatalog validates tweaks and returns them as a catalog in the given order.
func NewCatalog(tweaks ...Tweak) (*Catalog, error) {
	c := &Catalog{
		tweaks: make([]Tweak, 0, len(tweaks)),
		index:  make(map[string]int, len(tweaks)),
	}
	for _, t := range tweaks {
		if err := t.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[t.id]; dup {
			return nil, fmt.Errorf("duplicate tweak id: %s", t.id)
		}
		c.index[t.id] = len(c.tweaks)
		c.tweaks = append(c.tweaks, t)
	}
	return c, nil
}

// MustCatalog is NewCatalog for static tables; it panics on an invalid table.
func MustCatalog(tweaks ...Tweak) *Catalog {
	c, err := NewCatalog(tweaks...)
	if err != nil {
		panic(err)
	}
	return c
}

// AllTweaks returns the tweaks in catalog order.
func (c *Catalog) AllTweaks() []Tweak {
	out := make([]Tweak, len(c.tweaks))
	copy(out, c.tweaks)
	return out
}

// Lookup returns the tweak with the given id.
func (c *Catalog) Lookup(id string) (Tweak, bool) {
	i, ok := c.index[id]
	if !ok {
		return Tweak{}, false
	}
	return c.tweaks[i], true
}

// Len reports the number of tweaks.
func (c *Catalog) Len() int {
	return len(c.tweaks)
}
