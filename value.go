package jsondiff

import (
	"bytes"
	"encoding/json"
)

// NodeType defines all of the atoms in our universe, or the types of data we
// will encounter while generating a diff
type NodeType uint8

const (
	// NTUnknown defines a type outside our universe, should never be encountered
	NTUnknown NodeType = iota
	// NTNull is the JSON null literal
	NTNull
	// NTBool is true or false
	NTBool
	// NTNumber is any JSON number, held as a float64
	NTNumber
	// NTString is a JSON string
	NTString
	// NTObject is an ordered set of key / value pairs
	NTObject
	// NTArray is an ordered sequence of values
	NTArray
)

// String implements the stringer interface for NodeType
func (nt NodeType) String() string {
	switch nt {
	case NTNull:
		return "null"
	case NTBool:
		return "boolean"
	case NTNumber:
		return "number"
	case NTString:
		return "string"
	case NTObject:
		return "object"
	case NTArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a parsed JSON value. The set of implementations is closed:
// Null, Bool, Number, String, *Object and *Array.
// A nil Value means "absent", which is distinct from Null
type Value interface {
	// Type reports which variant this value is
	Type() NodeType
	// Equal reports exact structural equality. Object key order is ignored,
	// array element order is not
	Equal(Value) bool

	isValue()
}

// Null is the JSON null literal
type Null struct{}

// Type implements the Value interface
func (Null) Type() NodeType { return NTNull }

// Equal implements the Value interface
func (Null) Equal(v Value) bool {
	_, ok := v.(Null)
	return ok
}

// MarshalJSON implements the json.Marshaler interface
func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (Null) isValue() {}

// Bool is a JSON boolean
type Bool bool

// Type implements the Value interface
func (Bool) Type() NodeType { return NTBool }

// Equal implements the Value interface
func (b Bool) Equal(v Value) bool {
	x, ok := v.(Bool)
	return ok && x == b
}

// MarshalJSON implements the json.Marshaler interface
func (b Bool) MarshalJSON() ([]byte, error) { return json.Marshal(bool(b)) }

func (Bool) isValue() {}

// Number is a JSON number
type Number float64

// Type implements the Value interface
func (Number) Type() NodeType { return NTNumber }

// Equal implements the Value interface
func (n Number) Equal(v Value) bool {
	x, ok := v.(Number)
	return ok && x == n
}

// MarshalJSON implements the json.Marshaler interface
func (n Number) MarshalJSON() ([]byte, error) { return json.Marshal(float64(n)) }

func (Number) isValue() {}

// String is a JSON string
type String string

// Type implements the Value interface
func (String) Type() NodeType { return NTString }

// Equal implements the Value interface
func (s String) Equal(v Value) bool {
	x, ok := v.(String)
	return ok && x == s
}

// MarshalJSON implements the json.Marshaler interface
func (s String) MarshalJSON() ([]byte, error) { return marshalCompact(string(s)) }

func (String) isValue() {}

// Object is a JSON object that remembers the order keys were set in.
// Key order has no bearing on equality, but drives report ordering
type Object struct {
	keys   []string
	fields map[string]Value
}

// NewObject allocates an empty object
func NewObject() *Object {
	return &Object{fields: map[string]Value{}}
}

// Type implements the Value interface
func (o *Object) Type() NodeType { return NTObject }

// Set assigns key to v. Setting an existing key replaces the value in place,
// new keys are appended. A nil v is stored as Null
func (o *Object) Set(key string, v Value) *Object {
	if v == nil {
		v = Null{}
	}
	if o.fields == nil {
		o.fields = map[string]Value{}
	}
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = v
	return o
}

// Get returns the value at key & whether it's present
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.fields[key]
	return v, ok
}

// Keys returns object keys in insertion order
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Len returns the number of keys
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Equal implements the Value interface
func (o *Object) Equal(v Value) bool {
	x, ok := v.(*Object)
	if !ok || o.Len() != x.Len() {
		return false
	}
	if o.Len() == 0 {
		return true
	}
	for _, key := range o.keys {
		xv, ok := x.fields[key]
		if !ok || !o.fields[key].Equal(xv) {
			return false
		}
	}
	return true
}

// MarshalJSON writes compact JSON, keys in insertion order
func (o *Object) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, key := range o.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalCompact(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := marshalCompact(o.fields[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *Object) isValue() {}

// Array is an ordered sequence of JSON values
type Array struct {
	elems []Value
}

// NewArray creates an array holding vals. nil entries are stored as Null
func NewArray(vals ...Value) *Array {
	return (&Array{elems: make([]Value, 0, len(vals))}).Append(vals...)
}

// Type implements the Value interface
func (a *Array) Type() NodeType { return NTArray }

// Append adds vals to the end of the array
func (a *Array) Append(vals ...Value) *Array {
	for _, v := range vals {
		if v == nil {
			v = Null{}
		}
		a.elems = append(a.elems, v)
	}
	return a
}

// Len returns the number of elements
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.elems)
}

// At returns the element at index i, nil if i is out of range
func (a *Array) At(i int) Value {
	if i < 0 || i >= a.Len() {
		return nil
	}
	return a.elems[i]
}

// Values returns a copy of the array's elements
func (a *Array) Values() []Value {
	if a == nil {
		return nil
	}
	return append([]Value(nil), a.elems...)
}

// Equal implements the Value interface
func (a *Array) Equal(v Value) bool {
	x, ok := v.(*Array)
	if !ok || a.Len() != x.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	for i, el := range a.elems {
		if !el.Equal(x.elems[i]) {
			return false
		}
	}
	return true
}

// MarshalJSON writes compact JSON
func (a *Array) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('[')
	for i, el := range a.Values() {
		if i > 0 {
			buf.WriteByte(',')
		}
		v, err := marshalCompact(el)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (a *Array) isValue() {}

// marshalCompact encodes v as compact JSON without escaping HTML characters,
// matching what browser JSON.stringify produces
func marshalCompact(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// typeOf returns the node type of v, NTUnknown for an absent value
func typeOf(v Value) NodeType {
	if v == nil {
		return NTUnknown
	}
	return v.Type()
}

func isContainer(v Value) bool {
	t := typeOf(v)
	return t == NTObject || t == NTArray
}
