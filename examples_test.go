package jsondiff

import (
	"fmt"
)

func Example() {
	// start with two slightly different json documents
	aJSON := []byte(`{"name": "John", "age": 30}`)
	bJSON := []byte(`{"name": "John", "age": 31, "city": "NYC"}`)

	// parse them into ordered values
	a, err := ParseJSON(aJSON)
	if err != nil {
		panic(err)
	}
	b, err := ParseJSON(bJSON)
	if err != nil {
		panic(err)
	}

	// Report compares the documents using the default configuration and
	// renders the result as text
	report, err := Report(a, b)
	if err != nil {
		panic(err)
	}

	fmt.Print(report)
	// Output:
	// # JSON Diff Report
	//
	// ## Added
	// city: Added (A=absent, B="NYC")
	//
	// ## Changed
	// $: Changed (A={"name":"John","age":30}, B={"name":"John","age":31,"city":"NYC"})
	// age: Changed (A=30, B=31)
	//
	// Summary: 1 added, 0 removed, 1 changed, 0 type changed, 1 unchanged. 2 total changes, max depth 1.
}

func ExampleCompare() {
	a, _ := ParseJSON([]byte(`[{"id": 1, "v": "x"}, {"id": 2, "v": "y"}]`))
	b, _ := ParseJSON([]byte(`[{"id": 2, "v": "y"}, {"id": 1, "v": "z"}]`))

	// correlate array elements by their "id" field instead of position
	res, err := Compare(a, b, OptionKeyFields("id"))
	if err != nil {
		panic(err)
	}

	Walk(res.Tree, func(d *Delta) bool {
		if d.Leaf() && d.Kind != KindUnchanged {
			fmt.Printf("%s %s: %v -> %v\n", d.Kind.Symbol(), d.Path, d.A, d.B)
		}
		return true
	})
	fmt.Println(Summarize(res))
	// Output:
	// ~ [id=1].v: x -> z
	// 1 changed (1 total change)
}

func ExampleValidateText() {
	v := ValidateText(`{"a":}`)
	fmt.Println(v.IsValid, v.Line, v.Column)
	fmt.Println(v.Error)
	// Output:
	// false 1 6
	// invalid character '}' looking for beginning of value
}
