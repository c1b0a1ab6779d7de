package jsondiff

// Counts tallies leaf deltas by kind
type Counts struct {
	Added       int `json:"added"`
	Removed     int `json:"removed"`
	Changed     int `json:"changed"`
	TypeChanged int `json:"typeChanged"`
	Unchanged   int `json:"unchanged"`
}

// Changes is the number of leaves that differ
func (c Counts) Changes() int {
	return c.Added + c.Removed + c.Changed + c.TypeChanged
}

// Leaves is the number of leaves counted, changed or not
func (c Counts) Leaves() int {
	return c.Changes() + c.Unchanged
}

func (c *Counts) add(k Kind) {
	switch k {
	case KindAdded:
		c.Added++
	case KindRemoved:
		c.Removed++
	case KindChanged:
		c.Changed++
	case KindTypeChanged:
		c.TypeChanged++
	default:
		c.Unchanged++
	}
}

// Stats holds statistical metadata about a diff. only leaf deltas are
// counted (scalars, added & removed subtrees, opaque or collapsed
// containers), so a changed container and its changed child aren't counted
// twice
type Stats struct {
	Counts
	TotalChanges    int `json:"totalChanges"`    // added + removed + changed + typeChanged
	MaxDepthReached int `json:"maxDepthReached"` // longest path visited

	ByDepth map[int]Counts    `json:"byDepth,omitempty"` // leaf counts keyed by path length
	ByType  map[string]Counts `json:"byType,omitempty"`  // leaf counts keyed by value type
}

// CalcStats walks a diff tree, tallying every leaf exactly once
func CalcStats(tree *Delta) *Stats {
	st := &Stats{
		ByDepth: map[int]Counts{},
		ByType:  map[string]Counts{},
	}

	Walk(tree, func(d *Delta) bool {
		depth := d.Path.Depth()
		if depth > st.MaxDepthReached {
			st.MaxDepthReached = depth
		}
		if !d.Leaf() {
			return true
		}

		st.Counts.add(d.Kind)

		c := st.ByDepth[depth]
		c.add(d.Kind)
		st.ByDepth[depth] = c

		t := typeOf(d.B)
		if d.B == nil {
			t = typeOf(d.A)
		}
		c = st.ByType[t.String()]
		c.add(d.Kind)
		st.ByType[t.String()] = c
		return true
	})

	st.TotalChanges = st.Changes()
	return st
}
