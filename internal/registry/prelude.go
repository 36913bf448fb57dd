package registry

import (
	"bytes"
	"strings"
)

// Prelude renders the runtime library source for the enabled features: the
// two trait definitions followed by the impls of every registry entry whose
// feature is enabled. The output is self-contained; derived code refers to
// it by crate path.
func Prelude(features []string) ([]byte, error) {
	entries, err := Entries(features)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("// @generated by staticgen. DO NOT EDIT.\n\n")

	writeUses(&buf, features)
	writeTraits(&buf)

	for _, entry := range entries {
		buf.WriteByte('\n')
		buf.WriteString(entry.to)
		buf.WriteByte('\n')
		buf.WriteString(entry.into)
	}
	return buf.Bytes(), nil
}

func writeUses(buf *bytes.Buffer, features []string) {
	enabled := make(map[string]bool)
	for _, feature := range features {
		enabled[feature] = true
	}

	var uses []string
	if enabled["alloc"] {
		uses = append(uses, "use std::borrow::Cow;")
	}
	if enabled["collections"] {
		uses = append(uses, "use std::collections::{BTreeMap, BTreeSet, BinaryHeap, LinkedList, VecDeque};")
	}
	if len(uses) != 0 {
		buf.WriteString(strings.Join(uses, "\n") + "\n\n")
	}
}

func writeTraits(buf *bytes.Buffer) {
	buf.WriteString(`/// A trait for converting an &T to an owned T such that T: 'static.
pub trait ToBoundedStatic {
    /// The target type is bounded by the 'static lifetime.
    type Static: 'static;

    /// Convert an &T to an owned T such that T: 'static.
    #[must_use = "converting is often expensive and is not expected to have side effects"]
    fn to_static(&self) -> Self::Static;
}

/// A trait for converting an owned T into an owned T such that T: 'static.
pub trait IntoBoundedStatic {
    /// The target type is bounded by the 'static lifetime.
    type Static: 'static;

    /// Convert an owned T into an owned T such that T: 'static.
    #[must_use = "converting is often expensive and is not expected to have side effects"]
    fn into_static(self) -> Self::Static;
}
`)
}
