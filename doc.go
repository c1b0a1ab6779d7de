// Package jsondiff is a structural differ for JSON documents. Instead of
// comparing lines of text it walks two parsed documents side by side,
// producing a tree of changes that mirrors the shape of the data itself.
// jsondiff ignores semantically irrelevant differences like whitespace and
// object key order, and can be told to ignore array order, letter case and
// small numeric drift
//
// Documents are held as Values: a closed set of types covering the JSON data
// model:
//   Null, Bool, Number, String
//   *Object (ordered keys)
//   *Array
// ParseJSON keeps object keys in document order, which is the order changes
// are reported in. FromGo converts data decoded by other packages, and
// ParseYAML & ParseTOML read those formats into the same model
//
// Compare classifies every position in the two documents as Unchanged,
// Added, Removed, Changed or TypeChanged. Arrays are correlated one of three
// ways:
//   by index (the default)
//   by best content match, with OptionIgnoreArrayOrder
//   by the values of identifying fields, with OptionKeyFields. this only
//   applies to arrays holding objects
// Unchanged subtrees collapse into a single node, so the size of a diff
// tree follows the volume of change rather than the size of the input
//
// Results carry statistics, and can be rendered as a deterministic text
// report with FormatReport or summarized in a sentence with Summarize
package jsondiff
