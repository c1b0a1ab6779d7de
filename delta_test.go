package jsondiff

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeltaJSON(t *testing.T) {
	dlt := &Delta{Path: Path{}, Kind: KindChanged, Deltas: []*Delta{
		{Path: Path{StringAddr("a")}, Kind: KindChanged, A: Number(1), B: Number(2)},
		{Path: Path{StringAddr("b")}, Kind: KindAdded, B: String("x")},
		{Path: Path{StringAddr("c")}, Kind: KindRemoved, A: Null{}},
	}}

	data, err := json.Marshal(dlt)
	if err != nil {
		t.Fatal(err)
	}

	expect := `{"kind":"Changed","path":"$","deltas":[` +
		`{"kind":"Changed","path":"a","a":1,"b":2},` +
		`{"kind":"Added","path":"b","b":"x"},` +
		`{"kind":"Removed","path":"c","a":null}]}`
	if diff := cmp.Diff(expect, string(data)); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestKindStrings(t *testing.T) {
	cases := []struct {
		kind   Kind
		str    string
		symbol string
	}{
		{KindUnchanged, "Unchanged", " "},
		{KindAdded, "Added", "+"},
		{KindRemoved, "Removed", "-"},
		{KindChanged, "Changed", "~"},
		{KindTypeChanged, "TypeChanged", "!"},
	}
	for _, c := range cases {
		if c.kind.String() != c.str {
			t.Errorf("want %q, got %q", c.str, c.kind.String())
		}
		if c.kind.Symbol() != c.symbol {
			t.Errorf("%s: want symbol %q, got %q", c.str, c.symbol, c.kind.Symbol())
		}
	}
}

func TestWalk(t *testing.T) {
	tree := &Delta{Path: Path{}, Kind: KindChanged, Deltas: []*Delta{
		{Path: Path{StringAddr("a")}, Kind: KindChanged, Deltas: []*Delta{
			{Path: Path{StringAddr("a"), IndexAddr(0)}, Kind: KindAdded},
		}},
		{Path: Path{StringAddr("b")}, Kind: KindRemoved},
	}}

	var visited []string
	Walk(tree, func(d *Delta) bool {
		visited = append(visited, d.Path.String())
		return true
	})
	if diff := cmp.Diff([]string{"$", "a", "a[0]", "b"}, visited); diff != "" {
		t.Errorf("pre-order mismatch (-want +got):\n%s", diff)
	}

	visited = nil
	Walk(tree, func(d *Delta) bool {
		visited = append(visited, d.Path.String())
		return d.Path.Depth() == 0
	})
	if diff := cmp.Diff([]string{"$", "a", "b"}, visited); diff != "" {
		t.Errorf("skipping children mismatch (-want +got):\n%s", diff)
	}
}
