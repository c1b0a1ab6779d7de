package jsondiff

import (
	"sort"
	"strings"
)

// candidate is a scored pairing of a[i] with b[j]
type candidate struct {
	i, j int
	sim  float64
}

// correlateByContent greedily matches array elements by similarity,
// ignoring position. every pairing with a non-zero similarity is scored,
// then pairings are taken best-first: highest similarity, then lowest index
// in a, then lowest index in b. this isn't guaranteed to find a globally
// optimal matching, but it's deterministic
//
// matched & added elements are addressed by their index in b, removed
// elements by their index in a
func (d *differ) correlateByContent(a, b *Array, p Path) ([]pair, error) {
	av, bv := a.Values(), b.Values()

	// bucket b by content hash so exact matches skip a full comparison
	bHashes := make(map[string][]int, len(bv))
	for j, v := range bv {
		key := hashStr(hashValue(v))
		bHashes[key] = append(bHashes[key], j)
	}

	var cands []candidate
	for i, x := range av {
		exact := map[int]bool{}
		for _, j := range bHashes[hashStr(hashValue(x))] {
			if x.Equal(bv[j]) {
				exact[j] = true
				cands = append(cands, candidate{i: i, j: j, sim: 1})
			}
		}
		for j, y := range bv {
			if exact[j] {
				continue
			}
			sim, err := d.similarity(x, y, p.Append(IndexAddr(j)))
			if err != nil {
				return nil, err
			}
			if sim > 0 {
				cands = append(cands, candidate{i: i, j: j, sim: sim})
			}
		}
	}

	sort.Slice(cands, func(x, y int) bool {
		if cands[x].sim != cands[y].sim {
			return cands[x].sim > cands[y].sim
		}
		if cands[x].i != cands[y].i {
			return cands[x].i < cands[y].i
		}
		return cands[x].j < cands[y].j
	})

	aMatch := make([]int, len(av))
	for i := range aMatch {
		aMatch[i] = -1
	}
	bUsed := make([]bool, len(bv))
	for _, c := range cands {
		if aMatch[c.i] >= 0 || bUsed[c.j] {
			continue
		}
		aMatch[c.i] = c.j
		bUsed[c.j] = true
	}

	pairs := make([]pair, 0, len(av)+len(bv))
	for i, x := range av {
		if j := aMatch[i]; j >= 0 {
			pairs = append(pairs, pair{a: x, b: bv[j], addr: IndexAddr(j)})
		} else {
			pairs = append(pairs, pair{a: x, addr: IndexAddr(i)})
		}
	}
	for j, y := range bv {
		if !bUsed[j] {
			pairs = append(pairs, pair{b: y, addr: IndexAddr(j)})
		}
	}
	return pairs, nil
}

// similarity scores how alike two values are, from 0 (nothing in common) to
// 1 (equal under the configured comparison rules). for containers it's the
// share of leaf weight left unchanged when the two are compared
func (d *differ) similarity(a, b Value, p Path) (float64, error) {
	if typeOf(a) != typeOf(b) {
		return 0, nil
	}
	if !isContainer(a) {
		if d.scalarEqual(a, b) {
			return 1, nil
		}
		return 0, nil
	}

	d.probing++
	dlt, err := d.compare(a, b, p)
	d.probing--
	if err != nil {
		return 0, err
	}
	if dlt.Kind == KindUnchanged {
		return 1, nil
	}

	same, total := 0, 0
	Walk(dlt, func(x *Delta) bool {
		if !x.Leaf() {
			return true
		}
		w := weight(x.A)
		if wb := weight(x.B); wb > w {
			w = wb
		}
		total += w
		if x.Kind == KindUnchanged {
			same += w
		}
		return true
	})
	if total == 0 {
		return 0, nil
	}
	return float64(same) / float64(total), nil
}

// arrayKey is the identity of an array element under the configured key
// fields. id is unambiguous & used for lookups, label is for display
type arrayKey struct {
	id    string
	label string
}

// elementKey reads the key fields from v. elements that aren't objects or
// lack any key field have no key
func (d *differ) elementKey(v Value) (arrayKey, bool) {
	obj, ok := v.(*Object)
	if !ok {
		return arrayKey{}, false
	}

	ids := make([]string, len(d.cfg.KeyFields))
	labels := make([]string, len(d.cfg.KeyFields))
	for i, field := range d.cfg.KeyFields {
		fv, ok := obj.Get(field)
		if !ok {
			return arrayKey{}, false
		}
		id, err := marshalCompact(fv)
		if err != nil {
			return arrayKey{}, false
		}
		ids[i] = string(id)
		if s, ok := fv.(String); ok {
			labels[i] = field + "=" + string(s)
		} else {
			labels[i] = field + "=" + string(id)
		}
	}
	return arrayKey{
		id:    "[" + strings.Join(ids, ",") + "]",
		label: strings.Join(labels, ","),
	}, true
}

// keyedSide indexes one array by element key. elements without a key, and
// every occurrence of a key after the first, fall back to positional
// correlation
type keyedSide struct {
	keys     []arrayKey
	keyed    []bool
	byKey    map[string]int
	fallback []bool
}

func (d *differ) indexKeys(arr *Array, side string, p Path) *keyedSide {
	ks := &keyedSide{
		keys:     make([]arrayKey, arr.Len()),
		keyed:    make([]bool, arr.Len()),
		byKey:    map[string]int{},
		fallback: make([]bool, arr.Len()),
	}
	for i, v := range arr.Values() {
		key, ok := d.elementKey(v)
		if !ok {
			ks.fallback[i] = true
			continue
		}
		if first, dup := ks.byKey[key.id]; dup {
			d.warn("duplicate array key, correlating by position",
				"path", p.String(), "side", side, "key", key.label, "first", first, "index", i)
			ks.fallback[i] = true
			continue
		}
		ks.keys[i] = key
		ks.keyed[i] = true
		ks.byKey[key.id] = i
	}
	return ks
}

// correlateByKey matches elements of a & b that share key field values.
// elements without a usable key pair with the element at the same index on
// the other side when that element is also unmatched. whatever is left
// over is removed (from a) or added (from b)
func (d *differ) correlateByKey(a, b *Array, p Path) []pair {
	av, bv := a.Values(), b.Values()
	ak := d.indexKeys(a, "left", p)
	bk := d.indexKeys(b, "right", p)

	aMatch := make([]int, len(av))
	for i := range aMatch {
		aMatch[i] = -1
	}
	bUsed := make([]bool, len(bv))
	byIndex := make([]bool, len(av))

	for i := range av {
		if !ak.keyed[i] {
			continue
		}
		if j, ok := bk.byKey[ak.keys[i].id]; ok {
			aMatch[i] = j
			bUsed[j] = true
		}
	}

	for i := range av {
		if aMatch[i] >= 0 || i >= len(bv) || bUsed[i] {
			continue
		}
		if ak.fallback[i] || bk.fallback[i] {
			aMatch[i] = i
			bUsed[i] = true
			byIndex[i] = true
		}
	}

	pairs := make([]pair, 0, len(av)+len(bv))
	for i, x := range av {
		j := aMatch[i]
		switch {
		case j < 0 && ak.keyed[i]:
			pairs = append(pairs, pair{a: x, addr: KeyAddr{Key: ak.keys[i].label, Index: i}})
		case j < 0:
			pairs = append(pairs, pair{a: x, addr: IndexAddr(i)})
		case byIndex[i]:
			pairs = append(pairs, pair{a: x, b: bv[j], addr: IndexAddr(j)})
		default:
			pairs = append(pairs, pair{a: x, b: bv[j], addr: KeyAddr{Key: ak.keys[i].label, Index: j}})
		}
	}
	for j, y := range bv {
		if bUsed[j] {
			continue
		}
		if bk.keyed[j] {
			pairs = append(pairs, pair{b: y, addr: KeyAddr{Key: bk.keys[j].label, Index: j}})
		} else {
			pairs = append(pairs, pair{b: y, addr: IndexAddr(j)})
		}
	}
	return pairs
}
