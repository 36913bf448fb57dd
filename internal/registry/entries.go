package registry

import (
	"fmt"
	"strings"
)

// implSpec renders one impl block of the runtime library. The library
// defines the traits itself, so impls refer to them unqualified.
type implSpec struct {
	params string
	typ    string
	where  []string
	static string
	body   string
}

func (s implSpec) render(trait, method, recv string) string {
	var b strings.Builder

	b.WriteString("impl")
	if s.params != "" {
		b.WriteString("<" + s.params + ">")
	}
	b.WriteString(" " + trait + " for " + s.typ)

	if len(s.where) == 0 {
		b.WriteString(" {\n")
	} else {
		b.WriteString("\nwhere\n")
		for _, pred := range s.where {
			b.WriteString("    " + pred + ",\n")
		}
		b.WriteString("{\n")
	}

	fmt.Fprintf(&b, "    type Static = %s;\n\n", s.static)
	fmt.Fprintf(&b, "    fn %s(%s) -> Self::Static {\n", method, recv)
	fmt.Fprintf(&b, "        %s\n", s.body)
	b.WriteString("    }\n}\n")
	return b.String()
}

func (s implSpec) to() string   { return s.render("ToBoundedStatic", "to_static", "&self") }
func (s implSpec) into() string { return s.render("IntoBoundedStatic", "into_static", "self") }

// strEntry covers &'static str, the one reference type that is already
// bounded; both conversions are no-ops.
func strEntry() Entry {
	spec := implSpec{typ: "&'static str", static: "&'static str", body: "self"}
	return Entry{
		Feature:  "core",
		Type:     "&'static str",
		Strategy: Copy,
		to:       spec.to(),
		into:     spec.into(),
	}
}

func copyEntry(typ string) Entry {
	spec := implSpec{typ: typ, static: typ}
	spec.body = "*self"
	to := spec.to()
	spec.body = "self"
	return Entry{Feature: "core", Type: typ, Strategy: Copy, to: to, into: spec.into()}
}

func optionEntry() Entry {
	spec := implSpec{
		params: "T",
		typ:    "Option<T>",
		static: "Option<T::Static>",
	}
	spec.where = []string{"T: ToBoundedStatic"}
	spec.body = "self.as_ref().map(ToBoundedStatic::to_static)"
	to := spec.to()
	spec.where = []string{"T: IntoBoundedStatic"}
	spec.body = "self.map(IntoBoundedStatic::into_static)"
	return Entry{Feature: "core", Type: "Option<T>", Strategy: ElementWise, to: to, into: spec.into()}
}

func arrayEntry() Entry {
	spec := implSpec{
		params: "T, const N: usize",
		typ:    "[T; N]",
		static: "[T::Static; N]",
	}
	// The borrowing conversion maps the array by value, so it needs Copy.
	spec.where = []string{"T: ToBoundedStatic + Copy"}
	spec.body = "self.map(|item| item.to_static())"
	to := spec.to()
	spec.where = []string{"T: IntoBoundedStatic"}
	spec.body = "self.map(IntoBoundedStatic::into_static)"
	return Entry{Feature: "core", Type: "[T; N]", Strategy: ElementWise, to: to, into: spec.into()}
}

func cowEntry() Entry {
	spec := implSpec{
		params: "T",
		typ:    "Cow<'_, T>",
		where:  []string{"T: 'static + ToOwned + ?Sized"},
		static: "Cow<'static, T>",
	}
	spec.body = "Cow::Owned(self.clone().into_owned())"
	to := spec.to()
	spec.body = "Cow::Owned(self.into_owned())"
	return Entry{Feature: "alloc", Type: "Cow<'_, T>", Strategy: CowLike, to: to, into: spec.into()}
}

func stringEntry() Entry {
	spec := implSpec{typ: "String", static: "Self"}
	spec.body = "self.clone()"
	to := spec.to()
	spec.body = "self"
	return Entry{Feature: "alloc", Type: "String", Strategy: Owned, to: to, into: spec.into()}
}

func boxEntry() Entry {
	spec := implSpec{
		params: "T",
		typ:    "Box<T>",
		static: "Box<T::Static>",
	}
	spec.where = []string{"T: ToBoundedStatic"}
	spec.body = "Box::new(self.as_ref().to_static())"
	to := spec.to()
	spec.where = []string{"T: IntoBoundedStatic"}
	spec.body = "Box::new((*self).into_static())"
	return Entry{Feature: "alloc", Type: "Box<T>", Strategy: Boxed, to: to, into: spec.into()}
}

// seqEntry covers single-element containers that rebuild via collect.
func seqEntry(feature, name string, extraWhere []string) Entry {
	spec := implSpec{
		params: "T",
		typ:    name + "<T>",
		static: name + "<T::Static>",
	}
	spec.where = append([]string{"T: ToBoundedStatic"}, extraWhere...)
	spec.body = "self.iter().map(ToBoundedStatic::to_static).collect()"
	to := spec.to()
	spec.where = append([]string{"T: IntoBoundedStatic"}, extraWhere...)
	spec.body = "self.into_iter().map(IntoBoundedStatic::into_static).collect()"
	return Entry{Feature: feature, Type: name + "<T>", Strategy: ElementWise, to: to, into: spec.into()}
}

// mapEntry covers key-value containers that rebuild via collect.
func mapEntry(feature, name, extraParams string, keyWhere []string) Entry {
	params := "K, V"
	if extraParams != "" {
		params += ", " + extraParams
	}
	spec := implSpec{
		params: params,
		typ:    name + "<K, V>",
		static: name + "<K::Static, V::Static>",
	}
	spec.where = append(append([]string{"K: ToBoundedStatic"}, keyWhere...), "V: ToBoundedStatic")
	spec.body = "self.iter().map(|(k, v)| (k.to_static(), v.to_static())).collect()"
	to := spec.to()
	spec.where = append(append([]string{"K: IntoBoundedStatic"}, keyWhere...), "V: IntoBoundedStatic")
	spec.body = "self.into_iter().map(|(k, v)| (k.into_static(), v.into_static())).collect()"
	return Entry{Feature: feature, Type: name + "<K, V>", Strategy: ElementWise, to: to, into: spec.into()}
}

func hashMapEntry() Entry {
	spec := implSpec{
		params: "K, V, S: std::hash::BuildHasher",
		typ:    "std::collections::HashMap<K, V, S>",
		static: "std::collections::HashMap<K::Static, V::Static>",
	}
	keyWhere := "K::Static: Eq + std::hash::Hash"
	spec.where = []string{"K: ToBoundedStatic", keyWhere, "V: ToBoundedStatic"}
	spec.body = "self.iter().map(|(k, v)| (k.to_static(), v.to_static())).collect()"
	to := spec.to()
	spec.where = []string{"K: IntoBoundedStatic", keyWhere, "V: IntoBoundedStatic"}
	spec.body = "self.into_iter().map(|(k, v)| (k.into_static(), v.into_static())).collect()"
	return Entry{Feature: "std", Type: "HashMap<K, V, S>", Strategy: ElementWise, to: to, into: spec.into()}
}

func hashSetEntry() Entry {
	spec := implSpec{
		params: "T, S: std::hash::BuildHasher",
		typ:    "std::collections::HashSet<T, S>",
		static: "std::collections::HashSet<T::Static>",
	}
	elemWhere := "T::Static: Eq + std::hash::Hash"
	spec.where = []string{"T: ToBoundedStatic", elemWhere}
	spec.body = "self.iter().map(ToBoundedStatic::to_static).collect()"
	to := spec.to()
	spec.where = []string{"T: IntoBoundedStatic", elemWhere}
	spec.body = "self.into_iter().map(IntoBoundedStatic::into_static).collect()"
	return Entry{Feature: "std", Type: "HashSet<T, S>", Strategy: ElementWise, to: to, into: spec.into()}
}
