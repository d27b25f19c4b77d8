package generator

import "strconv"

// NameResolver hands out collision-free test method names within one class.
// It is not safe for concurrent use; create one per synthesized class.
type NameResolver struct {
	used []string
}

// NewNameResolver creates an empty resolver scope
func NewNameResolver() *NameResolver {
	return &NameResolver{used: make([]string, 0)}
}

// Resolve returns base + "Test" + n for the smallest n >= 0 not yet used,
// and records it
func (r *NameResolver) Resolve(base string) string {
	prefix := base + "Test"
	for n := 0; ; n++ {
		candidate := prefix + strconv.Itoa(n)
		if !r.contains(candidate) {
			r.used = append(r.used, candidate)
			return candidate
		}
	}
}

// Used returns the names handed out so far, in order
func (r *NameResolver) Used() []string {
	return append([]string(nil), r.used...)
}

func (r *NameResolver) contains(name string) bool {
	for _, existing := range r.used {
		if existing == name {
			return true
		}
	}
	return false
}
