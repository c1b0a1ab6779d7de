package jsondiff

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"
)

// differ is a single comparison run. it's never shared between goroutines:
// the case folder it holds is stateful
type differ struct {
	cfg  *Config
	log  *log.Logger
	fold cases.Caser

	// probing is non-zero while candidate pairs are being scored for
	// unordered array matching. warnings raised while probing are dropped,
	// the real comparison raises them again
	probing  int
	warnings []string
}

func newDiffer(cfg *Config) *differ {
	return &differ{
		cfg:  cfg,
		log:  cfg.logger(),
		fold: cases.Fold(),
	}
}

// compare classifies the relationship between a & b, recursing into
// containers. a nil value is absent
func (d *differ) compare(a, b Value, p Path) (*Delta, error) {
	switch {
	case a == nil && b == nil:
		return nil, &InvalidComparisonError{Path: p}
	case a == nil:
		return &Delta{Path: p, Kind: KindAdded, B: b}, nil
	case b == nil:
		return &Delta{Path: p, Kind: KindRemoved, A: a}, nil
	case a.Type() != b.Type():
		return &Delta{Path: p, Kind: KindTypeChanged, A: a, B: b}, nil
	}

	switch x := a.(type) {
	case Null, Bool, Number, String:
		return d.compareScalar(a, b, p), nil
	case *Object:
		if p.Depth() >= d.cfg.MaxDepth {
			return d.compareOpaque(a, b, p), nil
		}
		return d.diffObjects(x, b.(*Object), p)
	case *Array:
		if p.Depth() >= d.cfg.MaxDepth {
			return d.compareOpaque(a, b, p), nil
		}
		return d.diffArrays(x, b.(*Array), p)
	default:
		return nil, fmt.Errorf("unexpected value type %T at %s", a, p)
	}
}

// compareScalar compares two scalar values of the same type
func (d *differ) compareScalar(a, b Value, p Path) *Delta {
	kind := KindChanged
	if d.scalarEqual(a, b) {
		kind = KindUnchanged
	}
	return &Delta{Path: p, Kind: kind, A: a, B: b}
}

// compareOpaque compares two containers as single units, without
// descending into them
func (d *differ) compareOpaque(a, b Value, p Path) *Delta {
	kind := KindChanged
	if d.equal(a, b) {
		kind = KindUnchanged
	}
	return &Delta{Path: p, Kind: kind, A: a, B: b}
}

// scalarEqual applies leaf comparison rules: exact for booleans, case
// folding for strings when configured, tolerance for numbers. null always
// equals null
func (d *differ) scalarEqual(a, b Value) bool {
	switch x := a.(type) {
	case Null:
		return typeOf(b) == NTNull
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		if !ok {
			return false
		}
		if x == y {
			return true
		}
		return math.Abs(float64(x)-float64(y)) <= d.cfg.NumericTolerance
	case String:
		y, ok := b.(String)
		if !ok {
			return false
		}
		if x == y {
			return true
		}
		return d.cfg.IgnoreCase && d.fold.String(string(x)) == d.fold.String(string(y))
	}
	return false
}

// equal is structural equality that honors leaf comparison rules. arrays
// are compared by position, object key order is ignored
func (d *differ) equal(a, b Value) bool {
	if typeOf(a) != typeOf(b) {
		return false
	}
	switch x := a.(type) {
	case *Object:
		y := b.(*Object)
		if x.Len() != y.Len() {
			return false
		}
		for _, key := range x.Keys() {
			xv, _ := x.Get(key)
			yv, ok := y.Get(key)
			if !ok || !d.equal(xv, yv) {
				return false
			}
		}
		return true
	case *Array:
		y := b.(*Array)
		if x.Len() != y.Len() {
			return false
		}
		for i := 0; i < x.Len(); i++ {
			if !d.equal(x.At(i), y.At(i)) {
				return false
			}
		}
		return true
	default:
		return d.scalarEqual(a, b)
	}
}

// warn records an inconsistency in the input that the differ worked around
func (d *differ) warn(msg string, keyvals ...interface{}) {
	if d.probing > 0 {
		return
	}
	d.log.Warn(msg, keyvals...)
	w := msg
	for i := 0; i+1 < len(keyvals); i += 2 {
		w += fmt.Sprintf(" %v=%v", keyvals[i], keyvals[i+1])
	}
	d.warnings = append(d.warnings, w)
}
