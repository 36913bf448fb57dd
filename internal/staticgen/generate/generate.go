package generate

import (
	"github.com/staticgen-dev/staticgen/internal/codefmt"
	"github.com/staticgen-dev/staticgen/internal/rsyn"
)

// Item generates the ToBoundedStatic and IntoBoundedStatic impls for one
// item, dispatching on its shape. The union shape is rejected
// unconditionally. crate is the crate path the emitted impls refer the
// traits through.
//
// Fields must have passed [CheckItem] before emission.
func Item(file *rsyn.File, item *rsyn.Item, crate string) ([]byte, error) {
	if item.Kind == rsyn.UnionItem {
		return nil, codefmt.Errorf(file, item, "union is not supported: %s", item.Name.Text)
	}

	w := codefmt.NewWriter(file)
	switch {
	case item.Kind == rsyn.EnumItem:
		emitEnum(w, item, crate)
	case item.Fields.Kind == rsyn.NamedFields:
		emitStructNamed(w, item, crate)
	case item.Fields.Kind == rsyn.UnnamedFields:
		emitStructUnnamed(w, item, crate)
	default:
		emitStructUnit(w, item, crate)
	}
	return w.Bytes(), nil
}
