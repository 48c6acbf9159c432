package config

import "strings"

// Section is a named group of options.
type Section interface {
	// ReadString returns the value stored under key, or "" when absent.
	ReadString(key string) string
}

// MapSection is an in-memory Section. Lookups fall back to a case
// insensitive match.
type MapSection map[string]string

// ReadString implements Section.
func (m MapSection) ReadString(key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
