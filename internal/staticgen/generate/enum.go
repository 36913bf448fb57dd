package generate

import (
	"fmt"
	"strings"

	"github.com/staticgen-dev/staticgen/internal/codefmt"
	"github.com/staticgen-dev/staticgen/internal/rsyn"
)

// emitEnum emits both impls for an enum: one match arm per variant per
// trait. The borrowing impl matches on &self, so arm bindings are
// references and to_static is called through them; the consuming impl
// matches the moved value, so bindings are owned and into_static never
// needs a clone. The arm text is identical either way, only the invoked
// method differs.
func emitEnum(w *codefmt.Writer, item *rsyn.Item, crate string) {
	im := impl{w, item, crate}
	for i, target := range targets {
		if i != 0 {
			w.Blank()
		}
		im.open(target)
		w.Linef("match self {")
		w.In()
		for _, variant := range item.Variants {
			w.Linef("%s,", variantArm(item.Name.Text, variant, target))
		}
		w.Out()
		w.Linef("}")
		im.close()
	}
}

// variantArm builds one match arm.
//
// Unit:    Baz::Third => Baz::Third
// Named:   Baz::Second { fst, snd } => Baz::Second { fst: fst.to_static(), snd: snd.to_static() }
// Unnamed: Baz::First(field_0, field_1) => Baz::First(field_0.to_static(), field_1.to_static())
func variantArm(name string, variant *rsyn.Variant, target Target) string {
	path := name + "::" + variant.Name.Text
	method := target.Method()

	switch variant.Fields.Kind {
	case rsyn.UnitFields:
		return path + " => " + path

	case rsyn.NamedFields:
		pats := make([]string, len(variant.Fields.List))
		inits := make([]string, len(variant.Fields.List))
		for i, field := range variant.Fields.List {
			pats[i] = field.Name.Text
			inits[i] = fmt.Sprintf("%s: %s.%s()", field.Name.Text, field.Name.Text, method)
		}
		return fmt.Sprintf("%s { %s } => %s { %s }",
			path, strings.Join(pats, ", "), path, strings.Join(inits, ", "))

	case rsyn.UnnamedFields:
		ns := codefmt.NewNS()
		pats := make([]string, len(variant.Fields.List))
		inits := make([]string, len(variant.Fields.List))
		for i, field := range variant.Fields.List {
			binding := ns.Name(fmt.Sprintf("field_%d", field.Index))
			pats[i] = binding
			inits[i] = fmt.Sprintf("%s.%s()", binding, method)
		}
		return fmt.Sprintf("%s(%s) => %s(%s)",
			path, strings.Join(pats, ", "), path, strings.Join(inits, ", "))
	}
	panic("unknown field shape")
}
