package jsondiff

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObjectOrder(t *testing.T) {
	obj := NewObject().Set("b", Number(1)).Set("a", Number(2)).Set("c", nil)
	obj.Set("b", String("replaced"))

	if diff := cmp.Diff([]string{"b", "a", "c"}, obj.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
	if v, _ := obj.Get("b"); !v.Equal(String("replaced")) {
		t.Errorf("expected b to be replaced in place, got %v", v)
	}
	if v, _ := obj.Get("c"); !v.Equal(Null{}) {
		t.Errorf("expected nil to be stored as null, got %v", v)
	}
	if _, ok := obj.Get("missing"); ok {
		t.Error("expected missing key to be absent")
	}

	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"b":"replaced","a":2,"c":null}` {
		t.Errorf("unexpected marshaled object: %s", data)
	}
}

func TestValueEqual(t *testing.T) {
	cases := []struct {
		a, b   string
		expect bool
	}{
		{`null`, `null`, true},
		{`1`, `1.0`, true},
		{`1`, `"1"`, false},
		{`{"a":1,"b":[1,2]}`, `{"b":[1,2],"a":1}`, true},
		{`{"a":1}`, `{"a":1,"b":2}`, false},
		{`{"a":1}`, `{"b":1}`, false},
		{`[1,2]`, `[2,1]`, false},
		{`[]`, `[]`, true},
		{`{}`, `[]`, false},
	}

	for _, c := range cases {
		a, b := mustParse(t, c.a), mustParse(t, c.b)
		if got := a.Equal(b); got != c.expect {
			t.Errorf("%s == %s: want %t, got %t", c.a, c.b, c.expect, got)
		}
		if got := b.Equal(a); got != c.expect {
			t.Errorf("%s == %s: want %t, got %t", c.b, c.a, c.expect, got)
		}
	}

	if NewObject().Equal(nil) || NewArray().Equal(nil) {
		t.Error("containers should never equal an absent value")
	}
}

func TestArray(t *testing.T) {
	arr := NewArray(Number(1), nil).Append(String("x"))
	if arr.Len() != 3 {
		t.Fatalf("expected 3 elements, got %d", arr.Len())
	}
	if !arr.At(1).Equal(Null{}) {
		t.Errorf("expected nil to be stored as null, got %v", arr.At(1))
	}
	if arr.At(3) != nil || arr.At(-1) != nil {
		t.Error("expected out of range indexes to be absent")
	}

	data, err := json.Marshal(arr)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[1,null,"x"]` {
		t.Errorf("unexpected marshaled array: %s", data)
	}
}

func TestStringMarshalNoHTMLEscape(t *testing.T) {
	data, err := marshalCompact(NewObject().Set("html", String("<a href=\"x\">&</a>")))
	if err != nil {
		t.Fatal(err)
	}
	expect := `{"html":"<a href=\"x\">&</a>"}`
	if string(data) != expect {
		t.Errorf("want: %s\ngot:  %s", expect, data)
	}
}

func TestNodeTypeString(t *testing.T) {
	expect := map[NodeType]string{
		NTUnknown: "unknown",
		NTNull:    "null",
		NTBool:    "boolean",
		NTNumber:  "number",
		NTString:  "string",
		NTObject:  "object",
		NTArray:   "array",
	}
	for nt, str := range expect {
		if nt.String() != str {
			t.Errorf("want %q, got %q", str, nt.String())
		}
	}
}

func TestWeight(t *testing.T) {
	cases := []struct {
		doc    string
		expect int
	}{
		{`1`, 1},
		{`[]`, 1},
		{`{}`, 1},
		{`[1,2,3]`, 3},
		{`{"a":[1,{"b":null}],"c":{}}`, 3},
	}
	for _, c := range cases {
		if got := weight(mustParse(t, c.doc)); got != c.expect {
			t.Errorf("weight(%s) want: %d. got: %d", c.doc, c.expect, got)
		}
	}
	if weight(nil) != 0 {
		t.Error("absent values should weigh nothing")
	}
}

func TestHashValue(t *testing.T) {
	a := mustParse(t, `{"a":1,"b":[true,"x"]}`)
	b := mustParse(t, `{"b":[true,"x"],"a":1}`)
	c := mustParse(t, `{"a":1,"b":["x",true]}`)

	if hashStr(hashValue(a)) != hashStr(hashValue(b)) {
		t.Error("key order should not change a hash")
	}
	if hashStr(hashValue(a)) == hashStr(hashValue(c)) {
		t.Error("array order should change a hash")
	}
	if hashStr(hashValue(String("1"))) == hashStr(hashValue(Number(1))) {
		t.Error("values of different types should hash differently")
	}
}
