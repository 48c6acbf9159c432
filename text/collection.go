package text

import (
	"strings"
	"sync"
)

// DefaultFamily is the family name of the fonts bundled with every
// collection.
const DefaultFamily = "Go"

// Style selects a face within a family.
type Style uint8

// Style bits.
const (
	StyleRegular Style = 0
	StyleBold    Style = 1
	StyleItalic  Style = 2
)

// Collection maps family names to faces. It is safe for concurrent use.
type Collection struct {
	mu       sync.RWMutex
	families map[string]map[Style]*Font
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{families: make(map[string]map[Style]*Font)}
}

var (
	defaultOnce sync.Once
	defaultSet  *Collection
)

// DefaultCollection returns a shared collection holding the Go fonts
// and the Latin Modern families.
func DefaultCollection() *Collection {
	defaultOnce.Do(func() {
		c := NewCollection()
		for _, b := range bundled {
			f, err := ParseFont(b.data)
			if err != nil {
				panic("text: bundled font " + b.family + ": " + err.Error())
			}
			c.Add(b.family, b.style, f)
		}
		defaultSet = c
	})
	return defaultSet
}

// Add registers f as the style face of family. Family names are case
// insensitive.
func (c *Collection) Add(family string, style Style, f *Font) {
	key := strings.ToLower(family)
	c.mu.Lock()
	defer c.mu.Unlock()
	faces := c.families[key]
	if faces == nil {
		faces = make(map[Style]*Font)
		c.families[key] = faces
	}
	faces[style] = f
}

// Families returns the number of registered families.
func (c *Collection) Families() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.families)
}

// Lookup returns the best face for family and style. Missing styles fall
// back to regular, then to any face in the family. Unknown families fall
// back to the default family when it is registered.
func (c *Collection) Lookup(family string, style Style) *Font {
	c.mu.RLock()
	defer c.mu.RUnlock()
	faces := c.families[strings.ToLower(family)]
	if faces == nil {
		faces = c.families[strings.ToLower(DefaultFamily)]
	}
	if faces == nil {
		return nil
	}
	for _, s := range []Style{style, style &^ StyleItalic, style &^ StyleBold, StyleRegular} {
		if f := faces[s]; f != nil {
			return f
		}
	}
	for _, f := range faces {
		return f
	}
	return nil
}
