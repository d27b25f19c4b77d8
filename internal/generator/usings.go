package generator

import "github.com/toyz/scaffold/internal/models"

// DefaultUsings are required by every generated test class
var DefaultUsings = []string{
	"System",
	"System.Collections",
	"System.Collections.Generic",
	"Xunit",
	"Moq",
}

// UsingSet is an insertion-ordered set of using directives keyed by qualified
// name. The first directive added for a name wins.
type UsingSet struct {
	index map[string]int
	items []models.UsingDirective
}

// NewUsingSet creates an empty set
func NewUsingSet() *UsingSet {
	return &UsingSet{
		index: make(map[string]int),
		items: make([]models.UsingDirective, 0),
	}
}

// Add inserts the directive unless its name is already present.
// It reports whether the directive was inserted.
func (s *UsingSet) Add(u models.UsingDirective) bool {
	key := u.Key()
	if key == "" {
		return false
	}
	if _, exists := s.index[key]; exists {
		return false
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, u)
	return true
}

// AddName inserts a plain "using name;" directive
func (s *UsingSet) AddName(name string) bool {
	return s.Add(models.UsingDirective{Name: name})
}

// Contains reports whether a directive with the name is present
func (s *UsingSet) Contains(name string) bool {
	_, exists := s.index[name]
	return exists
}

// Len returns the number of directives
func (s *UsingSet) Len() int {
	return len(s.items)
}

// Directives returns the directives in insertion order
func (s *UsingSet) Directives() []models.UsingDirective {
	return append([]models.UsingDirective(nil), s.items...)
}

// MergeUsings builds the using list of a generated unit: the file's own
// namespace first, then the defaults, then the file's original directives
func MergeUsings(namespace string, original []models.UsingDirective) []models.UsingDirective {
	set := NewUsingSet()
	if namespace != "" {
		set.AddName(namespace)
	}
	for _, name := range DefaultUsings {
		set.AddName(name)
	}
	for _, u := range original {
		set.Add(u)
	}
	return set.Directives()
}
