package generate

import (
	"fmt"
	"strings"

	"github.com/staticgen-dev/staticgen/internal/codefmt"
	"github.com/staticgen-dev/staticgen/internal/rsyn"
)

// emitStructNamed emits both impls for a struct with named fields. Each
// field is rebuilt by invoking its own conversion:
//
//	Foo {
//	    aaa: self.aaa.to_static(),
//	}
func emitStructNamed(w *codefmt.Writer, item *rsyn.Item, crate string) {
	im := impl{w, item, crate}
	for i, target := range targets {
		if i != 0 {
			w.Blank()
		}
		im.open(target)
		w.Linef("%s {", item.Name.Text)
		w.In()
		for _, field := range item.Fields.List {
			w.Linef("%s: self.%s.%s(),", field.Name.Text, field.Name.Text, target.Method())
		}
		w.Out()
		w.Linef("}")
		im.close()
	}
}

// emitStructUnnamed emits both impls for a tuple struct. Fields are
// referenced positionally:
//
//	Bar(self.0.to_static(), self.1.to_static())
func emitStructUnnamed(w *codefmt.Writer, item *rsyn.Item, crate string) {
	im := impl{w, item, crate}
	for i, target := range targets {
		if i != 0 {
			w.Blank()
		}
		im.open(target)
		args := make([]string, len(item.Fields.List))
		for j, field := range item.Fields.List {
			args[j] = fmt.Sprintf("self.%d.%s()", field.Index, target.Method())
		}
		w.Linef("%s(%s)", item.Name.Text, strings.Join(args, ", "))
		im.close()
	}
}

// emitStructUnit emits both impls for a unit struct. There is nothing to
// convert; both methods reconstruct the value.
func emitStructUnit(w *codefmt.Writer, item *rsyn.Item, crate string) {
	im := impl{w, item, crate}
	for i, target := range targets {
		if i != 0 {
			w.Blank()
		}
		im.open(target)
		w.Linef("%s", item.Name.Text)
		im.close()
	}
}
