package generate

import (
	"strings"

	"github.com/staticgen-dev/staticgen/internal/codefmt"
	"github.com/staticgen-dev/staticgen/internal/rsyn"
)

// impl writes the shared skeleton of one trait implementation: the header
// with the bounded generic list, the where clause, the Static associated
// type, and the method signature. The shape-specific emitters fill in the
// body between open and close.
type impl struct {
	w     *codefmt.Writer
	item  *rsyn.Item
	crate string
}

func (im impl) open(target Target) {
	name := im.item.Name.Text
	bounded := BoundedParams(im.item.Generics, target, im.crate)
	unbounded := UnboundedArgs(im.item.Generics)
	where := ImplWhere(im.item.Generics, im.item.Where, target, im.crate)

	var head strings.Builder
	head.WriteString("impl")
	if len(bounded) != 0 {
		head.WriteString("<" + strings.Join(bounded, ", ") + ">")
	}
	head.WriteString(" " + target.Bound(im.crate) + " for " + name)
	if len(unbounded) != 0 {
		head.WriteString("<" + strings.Join(unbounded, ", ") + ">")
	}

	if len(where) == 0 {
		im.w.Linef("%s {", head.String())
	} else {
		im.w.Linef("%s", head.String())
		im.w.Linef("where")
		im.w.In()
		for _, pred := range where {
			im.w.Linef("%s,", pred)
		}
		im.w.Out()
		im.w.Linef("{")
	}

	im.w.In()
	static := name
	if args := TargetArgs(im.item.Generics); len(args) != 0 {
		static += "<" + strings.Join(args, ", ") + ">"
	}
	im.w.Linef("type Static = %s;", static)
	im.w.Blank()
	im.w.Linef("fn %s(%s) -> Self::Static {", target.Method(), target.Receiver())
	im.w.In()
}

func (im impl) close() {
	im.w.Out()
	im.w.Linef("}")
	im.w.Out()
	im.w.Linef("}")
}
