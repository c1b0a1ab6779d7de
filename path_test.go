package jsondiff

import (
	"testing"
)

func TestPathString(t *testing.T) {
	cases := []struct {
		path   Path
		expect string
	}{
		{Path{}, "$"},
		{nil, "$"},
		{Path{StringAddr("a")}, "a"},
		{Path{StringAddr("a"), IndexAddr(0), StringAddr("b")}, "a[0].b"},
		{Path{IndexAddr(2)}, "[2]"},
		{Path{IndexAddr(0), IndexAddr(1)}, "[0][1]"},
		{Path{KeyAddr{Key: "id=1"}, StringAddr("v")}, "[id=1].v"},
		{Path{StringAddr("list"), KeyAddr{Key: "name=x", Index: 3}}, "list[name=x]"},
		{Path{StringAddr("a.b")}, `["a.b"]`},
		{Path{StringAddr("x"), StringAddr("a b")}, `x["a b"]`},
		{Path{StringAddr("")}, `[""]`},
		{Path{StringAddr("$")}, `["$"]`},
	}

	for _, c := range cases {
		if got := c.path.String(); got != c.expect {
			t.Errorf("want %q, got %q", c.expect, got)
		}
	}
}

func TestPathAppend(t *testing.T) {
	p := Path{StringAddr("a")}
	q := p.Append(IndexAddr(1))
	r := p.Append(IndexAddr(2))

	if len(p) != 1 {
		t.Errorf("Append modified its receiver: %s", p)
	}
	if q.String() != "a[1]" || r.String() != "a[2]" {
		t.Errorf("appended paths share storage: %s, %s", q, r)
	}
	if q.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", q.Depth())
	}
}

func TestPathEq(t *testing.T) {
	cases := []struct {
		a, b   Path
		expect bool
	}{
		{Path{}, nil, true},
		{Path{StringAddr("a")}, Path{StringAddr("a")}, true},
		{Path{StringAddr("0")}, Path{IndexAddr(0)}, false},
		{Path{KeyAddr{Key: "id=1", Index: 0}}, Path{KeyAddr{Key: "id=1", Index: 0}}, true},
		{Path{KeyAddr{Key: "id=1", Index: 0}}, Path{KeyAddr{Key: "id=1", Index: 1}}, false},
		{Path{StringAddr("a")}, Path{StringAddr("a"), StringAddr("b")}, false},
	}

	for i, c := range cases {
		if got := c.a.Eq(c.b); got != c.expect {
			t.Errorf("case %d: %s == %s want %t, got %t", i, c.a, c.b, c.expect, got)
		}
	}
}
