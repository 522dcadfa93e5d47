package esrp

// Values is the ordered value list recorded for one metadata key. The file
// format allows several fields after a key, so every value is a sequence even
// when only one field is present.
type Values []string

// First returns the first value, or the empty string when the list is empty.
func (v Values) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Metadata maps a key to its value list within one scope (file, scan or
// trace). Duplicate keys within a scope overwrite: the last occurrence wins.
type Metadata map[string]Values

// Get returns the value list for key, or nil when the key is absent.
func (m Metadata) Get(key string) Values {
	return m[key]
}

// First returns the first value for key, or fallback when the key is absent
// or has no values.
func (m Metadata) First(key, fallback string) string {
	if v, ok := m[key]; ok && len(v) > 0 {
		return v[0]
	}
	return fallback
}
