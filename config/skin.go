package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// VariablesSection is the section whose keys are substituted for #Name#
// references in every other section.
const VariablesSection = "Variables"

// Skin is a parsed skin file. Section and key names are case insensitive.
type Skin struct {
	order    []string
	sections map[string]map[string]string
}

// LoadSkin reads and parses the skin file at path.
func LoadSkin(path string) (*Skin, error) {
	data, err := os.ReadFile(path) //nolint:gosec // skin path is user-provided
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return ParseSkin(data)
}

// ParseSkin parses skin data. Every top-level key must be a table.
// Scalar values are kept as strings; arrays are joined with '|' so they
// read like a modifier list.
func ParseSkin(data []byte) (*Skin, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("config: failed to parse skin: %w", err)
	}
	s := &Skin{sections: make(map[string]map[string]string, len(raw))}
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		name := key[0]
		table, ok := raw[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotTable, name)
		}
		values := make(map[string]string, len(table))
		for k, v := range table {
			values[strings.ToLower(k)] = stringify(v)
		}
		s.order = append(s.order, name)
		s.sections[strings.ToLower(name)] = values
	}
	return s, nil
}

func stringify(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = stringify(e)
		}
		return strings.Join(parts, " | ")
	default:
		return fmt.Sprint(v)
	}
}

// Sections returns section names in file order.
func (s *Skin) Sections() []string {
	return append([]string(nil), s.order...)
}

// Has reports whether the skin defines the named section.
func (s *Skin) Has(name string) bool {
	_, ok := s.sections[strings.ToLower(name)]
	return ok
}

// Section returns the named section. A missing section reads as empty.
func (s *Skin) Section(name string) Section {
	return &skinSection{skin: s, values: s.sections[strings.ToLower(name)]}
}

// Variable returns the value of a [Variables] key.
func (s *Skin) Variable(name string) (string, bool) {
	v, ok := s.sections[strings.ToLower(VariablesSection)][strings.ToLower(name)]
	return v, ok
}

type skinSection struct {
	skin   *Skin
	values map[string]string
}

func (s *skinSection) ReadString(key string) string {
	return s.skin.expand(s.values[strings.ToLower(key)])
}

// expand replaces #Name# with the variable value. Unknown names are left
// as they are. Substitution is a single pass.
func (s *Skin) expand(v string) string {
	if !strings.Contains(v, "#") {
		return v
	}
	var b strings.Builder
	for {
		i := strings.IndexByte(v, '#')
		if i < 0 {
			break
		}
		j := strings.IndexByte(v[i+1:], '#')
		if j < 0 {
			break
		}
		name := v[i+1 : i+1+j]
		if val, ok := s.Variable(name); ok && name != "" {
			b.WriteString(v[:i])
			b.WriteString(val)
			v = v[i+2+j:]
			continue
		}
		b.WriteString(v[:i+1])
		v = v[i+1:]
	}
	b.WriteString(v)
	return b.String()
}
