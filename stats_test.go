package jsondiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalcStats(t *testing.T) {
	a := mustParse(t, `{"a": 100,"foo": [1,2,3],"bar": false,"baz": {"a": {"b": 4,"c": false,"d": "apples-and-oranges"},"e": null,"g": "apples-and-oranges"}}`)
	b := mustParse(t, `{"a": 99,"foo": [1,2,3],"bar": false,"baz": {"a": {"b": 5,"c": false,"d": "apples-and-oranges"},"e": "thirty-thousand-something-dogecoin","f": {"a" : false, "b": true}}}`)

	res, err := Compare(a, b, quiet)
	if err != nil {
		t.Fatal(err)
	}

	expect := &Stats{
		Counts:          Counts{Added: 1, Removed: 1, Changed: 2, TypeChanged: 1, Unchanged: 4},
		TotalChanges:    5,
		MaxDepthReached: 3,
		ByDepth: map[int]Counts{
			1: {Changed: 1, Unchanged: 2},
			2: {Added: 1, Removed: 1, TypeChanged: 1},
			3: {Changed: 1, Unchanged: 2},
		},
		ByType: map[string]Counts{
			"number":  {Changed: 2},
			"array":   {Unchanged: 1},
			"boolean": {Unchanged: 2},
			"string":  {Removed: 1, TypeChanged: 1, Unchanged: 1},
			"object":  {Added: 1},
		},
	}

	if diff := cmp.Diff(expect, res.Stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestCalcStatsUnchanged(t *testing.T) {
	res, err := Compare(mustParse(t, `[1,2,3]`), mustParse(t, `[1,2,3]`), quiet)
	if err != nil {
		t.Fatal(err)
	}
	if res.HasChanges {
		t.Error("expected no changes")
	}
	// an unchanged root collapses into a single leaf
	if res.Stats.Unchanged != 1 || res.Stats.MaxDepthReached != 0 {
		t.Errorf("unexpected stats: %+v", res.Stats)
	}
}

func TestCalcStatsNil(t *testing.T) {
	st := CalcStats(nil)
	if st.Leaves() != 0 || st.TotalChanges != 0 {
		t.Errorf("expected empty stats for a nil tree, got %+v", st)
	}
}
