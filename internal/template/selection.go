package template

import "strings"

// Selection tracks which fields the operator has picked. Membership is a
// toggle; the ordering used by the template comes from the Builder, not from
// here, but insertion order is kept so repeated wizard passes are stable.
type Selection struct {
	order  []string
	member map[string]bool
}

// NewSelection creates an empty field selection.
func NewSelection() *Selection {
	return &Selection{member: make(map[string]bool)}
}

// Toggle flips membership of the named field and reports the new state.
func (s *Selection) Toggle(name string) bool {
	if s.member[name] {
		delete(s.member, name)
		for i, n := range s.order {
			if n == name {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	s.member[name] = true
	s.order = append(s.order, name)
	return true
}

// IsSelected reports whether the named field is currently selected.
func (s *Selection) IsSelected(name string) bool {
	return s.member[name]
}

// Selected returns the selected field names in the order they were toggled on.
func (s *Selection) Selected() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Count returns the number of selected fields.
func (s *Selection) Count() int {
	return len(s.order)
}

// Filter returns the subset of candidates containing the query,
// case-insensitively. An empty query returns all candidates.
func Filter(candidates []string, query string) []string {
	if query == "" {
		out := make([]string, len(candidates))
		copy(out, candidates)
		return out
	}
	q := strings.ToLower(query)
	var out []string
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), q) {
			out = append(out, c)
		}
	}
	return out
}
