package page

import (
	"fmt"

	"github.com/alexisbeaulieu97/uikit/internal/config"
)

// idSet hands out element ids that are unique within one document.
type idSet struct {
	taken map[string]bool
	next  map[string]int
}

func newIDSet() *idSet {
	return &idSet{taken: make(map[string]bool), next: make(map[string]int)}
}

// reserve marks the explicit ids of specs, footers included, as taken so
// generated ids never reuse them.
func (s *idSet) reserve(specs []config.ComponentSpec) {
	for _, spec := range specs {
		if spec.ID != "" {
			s.taken[spec.ID] = true
		}
		s.reserve(spec.Footer)
	}
}

// id returns explicit when set, otherwise the next free "<prefix>-<n>".
func (s *idSet) id(prefix, explicit string) string {
	if explicit != "" {
		s.taken[explicit] = true
		return explicit
	}
	for {
		s.next[prefix]++
		candidate := fmt.Sprintf("%s-%d", prefix, s.next[prefix])
		if !s.taken[candidate] {
			s.taken[candidate] = true
			return candidate
		}
	}
}
