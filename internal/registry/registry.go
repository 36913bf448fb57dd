// Package registry enumerates the builtin container types the runtime
// library implements the conversion traits for, and renders that library.
//
// The registry is a fixed table of {type constructor, conversion strategy}
// pairs, grouped by feature. It is initialized once and never mutated.
package registry

import "fmt"

// Strategy is the conversion family a builtin type uses.
type Strategy int

const (
	// Copy: the type holds no borrowed data; both conversions are no-ops.
	Copy Strategy = iota
	// Owned: the type owns its data; borrowing clones, consuming moves.
	Owned
	// ElementWise: the conversion recurses over elements or entries.
	ElementWise
	// CowLike: the conversion allocates an owned backing store for
	// borrowed content.
	CowLike
	// Boxed: the conversion re-boxes the converted contents.
	Boxed
)

func (s Strategy) String() string {
	switch s {
	case Copy:
		return "copy"
	case Owned:
		return "owned"
	case ElementWise:
		return "element-wise"
	case CowLike:
		return "cow-like"
	case Boxed:
		return "boxed"
	}
	return "unknown"
}

// Entry is one builtin type constructor with its rendered impl pair.
type Entry struct {
	Feature  string
	Type     string
	Strategy Strategy
	to       string
	into     string
}

// featureOrder is the set of known features in emission order.
var featureOrder = []string{"core", "alloc", "collections", "std"}

// Features returns the known feature names in emission order.
func Features() []string {
	return append([]string(nil), featureOrder...)
}

// Entries returns the registry entries for the enabled features, in table
// order. Unknown features are an error.
func Entries(features []string) ([]Entry, error) {
	enabled := make(map[string]bool)
	for _, feature := range features {
		known := false
		for _, name := range featureOrder {
			if feature == name {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown feature %q", feature)
		}
		enabled[feature] = true
	}

	var entries []Entry
	for _, entry := range table {
		if enabled[entry.Feature] {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

var table = buildTable()

func buildTable() []Entry {
	entries := []Entry{strEntry()}

	for _, typ := range []string{
		"bool", "char", "f32", "f64",
		"usize", "u8", "u16", "u32", "u64", "u128",
		"isize", "i8", "i16", "i32", "i64", "i128",
	} {
		entries = append(entries, copyEntry(typ))
	}

	entries = append(entries,
		optionEntry(),
		arrayEntry(),

		cowEntry(),
		stringEntry(),
		seqEntry("alloc", "Vec", nil),
		boxEntry(),

		seqEntry("collections", "BinaryHeap", []string{"T::Static: Ord"}),
		mapEntry("collections", "BTreeMap", "", []string{"K::Static: Ord"}),
		seqEntry("collections", "BTreeSet", []string{"T::Static: Ord"}),
		seqEntry("collections", "LinkedList", nil),
		seqEntry("collections", "VecDeque", nil),

		hashMapEntry(),
		hashSetEntry(),
	)
	return entries
}
