package jsondiff

import (
	"strconv"
	"strings"
)

// Addr is a single step in a path: an object key, an array index, or the
// key of an array element that was correlated by key fields
type Addr interface {
	// Value returns the underlying key or index
	Value() interface{}
	// String renders the address as it appears in a dotted path
	String() string
	// Eq tests for equality with another address
	Eq(b Addr) bool
}

// StringAddr is an object key
type StringAddr string

// Value implements the Addr interface
func (a StringAddr) Value() interface{} { return string(a) }

// String implements the Addr interface
func (a StringAddr) String() string { return string(a) }

// Eq implements the Addr interface
func (a StringAddr) Eq(b Addr) bool {
	x, ok := b.(StringAddr)
	return ok && x == a
}

// IndexAddr is an array index
type IndexAddr int

// Value implements the Addr interface
func (a IndexAddr) Value() interface{} { return int(a) }

// String implements the Addr interface
func (a IndexAddr) String() string { return strconv.Itoa(int(a)) }

// Eq implements the Addr interface
func (a IndexAddr) Eq(b Addr) bool {
	x, ok := b.(IndexAddr)
	return ok && x == a
}

// KeyAddr addresses an array element by its key fields, eg: id=1.
// Index is the element's position in the array it was read from: the
// right-hand array for matches & additions, the left-hand array for removals
type KeyAddr struct {
	Key   string
	Index int
}

// Value implements the Addr interface
func (a KeyAddr) Value() interface{} { return a.Key }

// String implements the Addr interface
func (a KeyAddr) String() string { return a.Key }

// Eq implements the Addr interface
func (a KeyAddr) Eq(b Addr) bool {
	x, ok := b.(KeyAddr)
	return ok && x == a
}

// Path is the chain of addresses from the root of a document to a value
type Path []Addr

// Depth is the number of steps from the root, the root itself is depth 0
func (p Path) Depth() int { return len(p) }

// Append returns a new path extended by a. p is never modified
func (p Path) Append(a Addr) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, a)
}

// Eq tests two paths for equality
func (p Path) Eq(b Path) bool {
	if len(p) != len(b) {
		return false
	}
	for i, a := range p {
		if !a.Eq(b[i]) {
			return false
		}
	}
	return true
}

// String renders a dotted path: name.list[0].item, [id=1].v
// The root path renders as "$"
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	buf := &strings.Builder{}
	for i, a := range p {
		switch x := a.(type) {
		case IndexAddr:
			buf.WriteString("[" + x.String() + "]")
		case KeyAddr:
			buf.WriteString("[" + x.String() + "]")
		default:
			key := a.String()
			if needsQuoting(key) {
				buf.WriteString("[" + strconv.Quote(key) + "]")
				continue
			}
			if i > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(key)
		}
	}
	return buf.String()
}

func needsQuoting(key string) bool {
	return key == "" || key == "$" || strings.ContainsAny(key, ".[]\" \t\n")
}
