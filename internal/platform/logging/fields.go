package logging

import "fmt"

// Fields is an insertion-ordered set of extra record fields. The zero value
// is ready to use. Fields is not safe for concurrent use; a record owns its
// fields until it is written.
type Fields struct {
	keys   []string
	values map[string]any
}

// NewFields builds Fields from alternating key/value pairs. A trailing key
// without a value is stored with a nil value; non-string keys are formatted
// with their default representation.
func NewFields(kv ...any) *Fields {
	f := &Fields{}
	for i := 0; i < len(kv); i += 2 {
		key := keyString(kv[i])
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		f.Set(key, v)
	}
	return f
}

// Set stores v under key, keeping the original position when key exists.
func (f *Fields) Set(key string, v any) {
	if f.values == nil {
		f.values = make(map[string]any)
	}
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = v
}

// SetDefault stores v only when key is absent. It reports whether it stored.
func (f *Fields) SetDefault(key string, v any) bool {
	if f.Has(key) {
		return false
	}
	f.Set(key, v)
	return true
}

// Get returns the value for key and whether it is present.
func (f *Fields) Get(key string) (any, bool) {
	if f == nil || f.values == nil {
		return nil, false
	}
	v, ok := f.values[key]
	return v, ok
}

// Has reports whether key is present, even with a nil value.
func (f *Fields) Has(key string) bool {
	_, ok := f.Get(key)
	return ok
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// Keys returns the keys in insertion order.
func (f *Fields) Keys() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Merge sets every field of other onto f, in other's order.
func (f *Fields) Merge(other *Fields) {
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		f.Set(k, v)
	}
}

// Clone returns a shallow copy.
func (f *Fields) Clone() *Fields {
	c := &Fields{}
	c.Merge(f)
	return c
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
