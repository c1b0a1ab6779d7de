package jsondiff

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names an input encoding values can be parsed from
type Format string

const (
	// FormatJSON is RFC 8259 JSON text
	FormatJSON = Format("json")
	// FormatYAML is YAML 1.2, mapping keys must be scalars
	FormatYAML = Format("yaml")
	// FormatTOML is TOML v1.0
	FormatTOML = Format("toml")
)

// FormatFromPath picks a format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unrecognized file extension %q", filepath.Ext(path))
	}
}

// ParseFormat parses data in the given format
func ParseFormat(f Format, data []byte) (Value, error) {
	switch f {
	case FormatJSON:
		return ParseJSON(data)
	case FormatYAML:
		return ParseYAML(data)
	case FormatTOML:
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}

// ParseJSON parses JSON text into a Value, keeping object keys in the order
// they appear. Duplicate keys keep their first position & last value.
// malformed input returns a *SyntaxError
func ParseJSON(data []byte) (Value, error) {
	// a full decode into interface{} gets us the standard library's syntax
	// checking, including trailing data after the top-level value
	var discard interface{}
	if err := json.Unmarshal(data, &discard); err != nil {
		return nil, newSyntaxError(data, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, newSyntaxError(data, err)
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", kt)
				}
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := NewArray()
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Append(v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %s out of range", t)
		}
		return Number(f), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// newSyntaxError converts a decoding error into a *SyntaxError, resolving
// the byte offset into a line & column when the error carries one
func newSyntaxError(data []byte, err error) *SyntaxError {
	se := &SyntaxError{Msg: strings.TrimPrefix(err.Error(), "json: "), Offset: -1}

	var (
		syn *json.SyntaxError
		typ *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &syn):
		se.Offset = syn.Offset
	case errors.As(err, &typ):
		se.Offset = typ.Offset
	case errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF):
		se.Msg = "unexpected end of JSON input"
		se.Offset = int64(len(data))
	}

	if se.Offset >= 0 {
		se.Line, se.Column = lineColumn(data, se.Offset)
	}
	return se
}

// lineColumn resolves a byte offset into a 1-based line & column. columns
// count characters, not bytes
func lineColumn(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte("\n")) + 1
	lastLine := prefix[bytes.LastIndexByte(prefix, '\n')+1:]
	col = utf8.RuneCount(lastLine)
	if col == 0 {
		col = 1
	}
	return line, col
}

// FromGo converts native go data into a Value. it accepts the types
// encoding/json (and most other decoders) produce: maps with string keys,
// slices & arrays, all int, uint & float widths, json.Number, string, bool,
// time.Time (as an RFC 3339 string) and nil. pointers & interfaces are
// followed. map keys have no order in go, so object keys are sorted
func FromGo(v interface{}) (Value, error) {
	c := &goConverter{visiting: map[goRef]bool{}}
	return c.convert(reflect.ValueOf(v), Path{})
}

// goRef identifies a map or slice for cycle detection. slices sharing a
// backing array are told apart by length
type goRef struct {
	kind reflect.Kind
	ptr  uintptr
	len  int
}

type goConverter struct {
	visiting map[goRef]bool
}

var (
	valueType  = reflect.TypeOf((*Value)(nil)).Elem()
	timeType   = reflect.TypeOf(time.Time{})
	numberType = reflect.TypeOf(json.Number(""))
)

func (c *goConverter) convert(rv reflect.Value, p Path) (Value, error) {
	if !rv.IsValid() {
		return Null{}, nil
	}
	if rv.Type().Implements(valueType) && rv.Kind() != reflect.Interface {
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return Null{}, nil
		}
		return rv.Interface().(Value), nil
	}

	switch rv.Type() {
	case timeType:
		return String(rv.Interface().(time.Time).Format(time.RFC3339Nano)), nil
	case numberType:
		f, err := rv.Interface().(json.Number).Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number at %s: %w", p, err)
		}
		return Number(f), nil
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		return c.convert(rv.Elem(), p)
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("non-finite number %v at %s can't be represented in JSON", f, p)
		}
		return Number(f), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type %s at %s", rv.Type().Key(), p)
		}
		if rv.IsNil() {
			return Null{}, nil
		}
		ref := goRef{kind: reflect.Map, ptr: rv.Pointer()}
		if c.visiting[ref] {
			return nil, &CircularReferenceError{Path: p}
		}
		c.visiting[ref] = true
		defer delete(c.visiting, ref)

		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)

		obj := NewObject()
		for _, key := range keys {
			ch, err := c.convert(rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key())), p.Append(StringAddr(key)))
			if err != nil {
				return nil, err
			}
			obj.Set(key, ch)
		}
		return obj, nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice {
			if rv.IsNil() {
				return Null{}, nil
			}
			ref := goRef{kind: reflect.Slice, ptr: rv.Pointer(), len: rv.Len()}
			if c.visiting[ref] {
				return nil, &CircularReferenceError{Path: p}
			}
			c.visiting[ref] = true
			defer delete(c.visiting, ref)
		}

		arr := NewArray()
		for i := 0; i < rv.Len(); i++ {
			ch, err := c.convert(rv.Index(i), p.Append(IndexAddr(i)))
			if err != nil {
				return nil, err
			}
			arr.Append(ch)
		}
		return arr, nil
	}

	return nil, fmt.Errorf("unsupported type %s at %s", rv.Type(), p)
}

// ParseYAML parses a single YAML document. mapping key order is kept,
// anchors & aliases are expanded, and "<<" merge keys are applied. an alias
// that refers to one of its own ancestors returns a *CircularReferenceError
func ParseYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &SyntaxError{Msg: strings.TrimPrefix(err.Error(), "yaml: "), Offset: -1}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, &SyntaxError{Msg: "empty YAML document", Offset: -1}
	}
	c := &yamlConverter{visiting: map[*yaml.Node]bool{}}
	return c.convert(doc.Content[0], Path{})
}

type yamlConverter struct {
	visiting map[*yaml.Node]bool
}

func (c *yamlConverter) convert(n *yaml.Node, p Path) (Value, error) {
	if c.visiting[n] {
		return nil, &CircularReferenceError{Path: p}
	}
	c.visiting[n] = true
	defer delete(c.visiting, n)

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null{}, nil
		}
		return c.convert(n.Content[0], p)
	case yaml.AliasNode:
		return c.convert(n.Alias, p)
	case yaml.SequenceNode:
		arr := NewArray()
		for i, ch := range n.Content {
			v, err := c.convert(ch, p.Append(IndexAddr(i)))
			if err != nil {
				return nil, err
			}
			arr.Append(v)
		}
		return arr, nil
	case yaml.MappingNode:
		obj := NewObject()
		if err := c.mapping(obj, n, p); err != nil {
			return nil, err
		}
		return obj, nil
	case yaml.ScalarNode:
		var x interface{}
		if err := n.Decode(&x); err != nil {
			return nil, &SyntaxError{Msg: err.Error(), Offset: -1, Line: n.Line, Column: n.Column}
		}
		v, err := FromGo(x)
		if err != nil {
			return nil, &SyntaxError{Msg: err.Error(), Offset: -1, Line: n.Line, Column: n.Column}
		}
		return v, nil
	}
	return nil, &SyntaxError{Msg: fmt.Sprintf("unsupported YAML node kind %d", n.Kind), Offset: -1, Line: n.Line, Column: n.Column}
}

// mapping copies key / value pairs from a mapping node into obj. keys set
// explicitly take precedence over keys pulled in by a merge
func (c *yamlConverter) mapping(obj *Object, n *yaml.Node, p Path) error {
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return &SyntaxError{Msg: "mapping keys must be scalars", Offset: -1, Line: k.Line, Column: k.Column}
		}
		if isMergeKey(k) {
			merges = append(merges, v)
			continue
		}
		ch, err := c.convert(v, p.Append(StringAddr(k.Value)))
		if err != nil {
			return err
		}
		obj.Set(k.Value, ch)
	}

	for _, m := range merges {
		var sources []*yaml.Node
		if m.Kind == yaml.SequenceNode {
			sources = m.Content
		} else {
			sources = []*yaml.Node{m}
		}
		for _, src := range sources {
			v, err := c.convert(src, p)
			if err != nil {
				return err
			}
			merged, ok := v.(*Object)
			if !ok {
				return &SyntaxError{Msg: "merge value must be a mapping", Offset: -1, Line: src.Line, Column: src.Column}
			}
			for _, key := range merged.Keys() {
				if _, exists := obj.Get(key); exists {
					continue
				}
				mv, _ := merged.Get(key)
				obj.Set(key, mv)
			}
		}
	}
	return nil
}

func isMergeKey(n *yaml.Node) bool {
	return n.Value == "<<" && (n.Tag == "" || n.Tag == "!!merge")
}

// ParseTOML parses a TOML document. decoded tables carry no key order, so
// keys are sorted. dates & times become RFC 3339 strings
func ParseTOML(data []byte) (Value, error) {
	var doc map[string]interface{}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, &SyntaxError{Msg: strings.TrimPrefix(err.Error(), "toml: "), Offset: -1}
	}
	return FromGo(doc)
}
