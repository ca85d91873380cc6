package grouping

import "github.com/FengLee1113/sentry/pkg/core"

// Stats counts the entries of a component tree.
type Stats struct {
	Contributing    int `json:"contributing" yaml:"contributing"`
	NonContributing int `json:"non_contributing" yaml:"non_contributing"`
	Dead            int `json:"dead" yaml:"dead"`
	Leaves          int `json:"leaves" yaml:"leaves"`
	Depth           int `json:"depth" yaml:"depth"`
}

// Count walks the unfiltered tree rooted at c. The root itself is counted.
func Count(c *core.GroupComponent) Stats {
	var s Stats
	if c == nil {
		return s
	}
	count(c, 1, &s)
	return s
}

func count(c *core.GroupComponent, depth int, s *Stats) {
	switch {
	case c.IsDead():
		s.Dead++
	case c.Contributes:
		s.Contributing++
	default:
		s.NonContributing++
	}
	if depth > s.Depth {
		s.Depth = depth
	}

	for _, v := range c.Values {
		switch tv := v.(type) {
		case *core.GroupComponent:
			count(tv, depth+1, s)
		case core.Leaf:
			s.Leaves++
		}
	}
}
