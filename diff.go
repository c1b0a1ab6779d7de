package jsondiff

// pair is two correlated array elements, either side may be absent.
// addr is where the pair sits in the diff tree
type pair struct {
	a, b Value
	addr Addr
}

// diffObjects compares two objects key by key. keys are visited in a's
// order, followed by keys only present in b, in b's order
func (d *differ) diffObjects(a, b *Object, p Path) (*Delta, error) {
	dlt := &Delta{Path: p, A: a, B: b}

	for _, key := range a.Keys() {
		av, _ := a.Get(key)
		bv, _ := b.Get(key)
		ch, err := d.compare(av, bv, p.Append(StringAddr(key)))
		if err != nil {
			return nil, err
		}
		dlt.Deltas = append(dlt.Deltas, ch)
	}

	for _, key := range b.Keys() {
		if _, ok := a.Get(key); ok {
			continue
		}
		bv, _ := b.Get(key)
		ch, err := d.compare(nil, bv, p.Append(StringAddr(key)))
		if err != nil {
			return nil, err
		}
		dlt.Deltas = append(dlt.Deltas, ch)
	}

	return collapse(dlt), nil
}

// diffArrays correlates array elements using the configured strategy, then
// compares each correlated pair. key fields only apply to arrays holding
// objects, other arrays fall through to content or positional correlation
func (d *differ) diffArrays(a, b *Array, p Path) (*Delta, error) {
	var (
		pairs []pair
		err   error
	)

	switch {
	case len(d.cfg.KeyFields) > 0 && (hasObjects(a) || hasObjects(b)):
		pairs = d.correlateByKey(a, b, p)
	case d.cfg.IgnoreArrayOrder:
		if pairs, err = d.correlateByContent(a, b, p); err != nil {
			return nil, err
		}
	default:
		pairs = correlateByIndex(a, b)
	}

	dlt := &Delta{Path: p, A: a, B: b}
	for _, pr := range pairs {
		ch, err := d.compare(pr.a, pr.b, p.Append(pr.addr))
		if err != nil {
			return nil, err
		}
		dlt.Deltas = append(dlt.Deltas, ch)
	}

	return collapse(dlt), nil
}

// collapse sets a container's kind from its children. a container is
// Unchanged only if every child is, in which case the children are dropped
// to keep the tree proportional to the volume of change
func collapse(dlt *Delta) *Delta {
	for _, ch := range dlt.Deltas {
		if ch.Kind != KindUnchanged {
			dlt.Kind = KindChanged
			return dlt
		}
	}
	dlt.Kind = KindUnchanged
	dlt.Deltas = nil
	return dlt
}

// hasObjects reports whether any element of arr is an object
func hasObjects(arr *Array) bool {
	for _, v := range arr.Values() {
		if _, ok := v.(*Object); ok {
			return true
		}
	}
	return false
}

// correlateByIndex pairs element i of a with element i of b. indexes past
// the end of one array are absent on that side
func correlateByIndex(a, b *Array) []pair {
	n := a.Len()
	if b.Len() > n {
		n = b.Len()
	}
	pairs := make([]pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = pair{a: a.At(i), b: b.At(i), addr: IndexAddr(i)}
	}
	return pairs
}
