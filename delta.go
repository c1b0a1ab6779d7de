package jsondiff

// Kind classifies the relationship between the two sides of a Delta
type Kind uint8

const (
	// KindUnchanged indicates values present and equal in both A and B
	KindUnchanged Kind = iota
	// KindAdded means the value is present only in B
	KindAdded
	// KindRemoved means the value is present only in A
	KindRemoved
	// KindChanged means both sides are present, share a type, and differ.
	// containers are Changed when any descendant differs
	KindChanged
	// KindTypeChanged means both sides are present with different types,
	// eg: a number replaced by a string
	KindTypeChanged
)

// String implements the stringer interface
func (k Kind) String() string {
	switch k {
	case KindUnchanged:
		return "Unchanged"
	case KindAdded:
		return "Added"
	case KindRemoved:
		return "Removed"
	case KindChanged:
		return "Changed"
	case KindTypeChanged:
		return "TypeChanged"
	default:
		return "Unknown"
	}
}

// Symbol returns a single-character marker for the kind, in the style of
// unix diff output
func (k Kind) Symbol() string {
	switch k {
	case KindAdded:
		return "+"
	case KindRemoved:
		return "-"
	case KindChanged:
		return "~"
	case KindTypeChanged:
		return "!"
	default:
		return " "
	}
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Delta is a node in a diff tree. The tree mirrors the shape of the compared
// documents, but only descends where something changed: a container whose
// descendants are all unchanged is a single childless Unchanged delta
//
// A is absent (nil) for Added deltas, B is absent for Removed deltas, all
// other kinds carry both. A and B reference the caller's input values and
// must be treated as read-only
type Delta struct {
	// Path is the chain of keys & indexes from the root
	Path Path
	// Kind classifies the change
	Kind Kind
	// A is the left-hand ("before") value
	A Value
	// B is the right-hand ("after") value
	B Value
	// Child Changes, only populated for Changed containers
	Deltas []*Delta
}

// Leaf reports whether this delta has no children. Leaves are the units
// statistics are counted in
func (d *Delta) Leaf() bool {
	return len(d.Deltas) == 0
}

// MarshalJSON implements a custom JSON Marshaller
func (d *Delta) MarshalJSON() ([]byte, error) {
	return marshalCompact(struct {
		Kind   Kind     `json:"kind"`
		Path   string   `json:"path"`
		A      Value    `json:"a,omitempty"`
		B      Value    `json:"b,omitempty"`
		Deltas []*Delta `json:"deltas,omitempty"`
	}{d.Kind, d.Path.String(), d.A, d.B, d.Deltas})
}

// Walk traverses a diff tree in pre-order. Returning false from fn skips
// the children of the delta just visited
func Walk(d *Delta, fn func(d *Delta) bool) {
	if d == nil {
		return
	}
	if !fn(d) {
		return
	}
	for _, ch := range d.Deltas {
		Walk(ch, fn)
	}
}
