package jsondiff

import (
	"encoding/hex"
	"hash"
	"hash/fnv"
	"sort"
	"strconv"
)

// NewHash returns a new hash interface, wrapped in a function for easy
// hash algorithm switching, package consumers can override NewHash
// with their own desired hash.Hash implementation if the value space is
// particularly large. default is 64-bit FNV 1 for fast, cheap,
// (non-cryptographic) hashing
var NewHash = func() hash.Hash {
	return fnv.New64()
}

// hashString converts a hash sum to a string using hex encoding
// localized here for easy encoding swapping
func hashStr(sum []byte) string {
	return hex.EncodeToString(sum)
}

// hashValue computes a content hash for a value & all of its descendants.
// object keys are sorted before hashing, so two structurally equal values
// always hash the same regardless of key order. hashes are only ever used to
// shortlist candidates, equality is always confirmed with Equal
func hashValue(v Value) []byte {
	hasher := NewHash()
	switch x := v.(type) {
	case nil:
		hasher.Write([]byte("absent"))
	case Null:
		hasher.Write([]byte("null"))
	case Bool:
		hasher.Write([]byte("bool:" + strconv.FormatBool(bool(x))))
	case Number:
		hasher.Write([]byte("number:" + strconv.FormatFloat(float64(x), 'g', -1, 64)))
	case String:
		hasher.Write([]byte("string:"))
		hasher.Write([]byte(x))
	case *Array:
		hasher.Write([]byte("array"))
		for _, el := range x.Values() {
			hasher.Write(hashValue(el))
		}
	case *Object:
		hasher.Write([]byte("object"))
		// gotta sort keys for consistent hashing :(
		keys := x.Keys()
		sort.Strings(keys)
		for _, key := range keys {
			ch, _ := x.Get(key)
			hasher.Write([]byte(strconv.Quote(key)))
			hasher.Write(hashValue(ch))
		}
	}
	return hasher.Sum(nil)
}

// weight is a count of the leaves under a value: scalars & empty containers
// weigh 1, non-empty containers weigh the sum of their children. it's the
// unit similarity between two subtrees is measured in
func weight(v Value) int {
	switch x := v.(type) {
	case nil:
		return 0
	case *Array:
		if x.Len() == 0 {
			return 1
		}
		w := 0
		for _, el := range x.Values() {
			w += weight(el)
		}
		return w
	case *Object:
		if x.Len() == 0 {
			return 1
		}
		w := 0
		for _, key := range x.Keys() {
			ch, _ := x.Get(key)
			w += weight(ch)
		}
		return w
	default:
		return 1
	}
}

// checkAcyclic walks v, failing with a *CircularReferenceError if a container
// is reached again while it's still being walked. shared subtrees (the same
// container referenced from two places) are fine, and are only walked once
func checkAcyclic(v Value, p Path) error {
	return (&cycleCheck{
		visiting: map[Value]bool{},
		done:     map[Value]bool{},
	}).walk(v, p)
}

type cycleCheck struct {
	visiting map[Value]bool
	done     map[Value]bool
}

func (c *cycleCheck) walk(v Value, p Path) error {
	if !isContainer(v) || c.done[v] {
		return nil
	}
	if c.visiting[v] {
		return &CircularReferenceError{Path: p}
	}
	c.visiting[v] = true

	switch x := v.(type) {
	case *Array:
		for i, el := range x.Values() {
			if err := c.walk(el, p.Append(IndexAddr(i))); err != nil {
				return err
			}
		}
	case *Object:
		for _, key := range x.Keys() {
			ch, _ := x.Get(key)
			if err := c.walk(ch, p.Append(StringAddr(key))); err != nil {
				return err
			}
		}
	}

	delete(c.visiting, v)
	c.done[v] = true
	return nil
}
