package generate

import (
	"strings"

	"github.com/staticgen-dev/staticgen/internal/rsyn"
)

// The three projections of an item's generic parameter list. Each preserves
// declaration order and each is a pure function of the list; an item with no
// generics simply yields empty projections.

// TargetArgs projects the generic arguments of the Static associated type.
//
// i.e. Static = Foo<'static, 'static, T::Static, N>
func TargetArgs(g *rsyn.Generics) []string {
	if g == nil {
		return nil
	}
	args := make([]string, 0, len(g.Params))
	for _, param := range g.Params {
		switch param := param.(type) {
		case *rsyn.LifetimeParam:
			args = append(args, "'static")
		case *rsyn.TypeParam:
			args = append(args, param.Name.Text+"::Static")
		case *rsyn.ConstParam:
			args = append(args, param.Name.Text)
		}
	}
	return args
}

// UnboundedArgs projects the generic arguments naming the source type.
//
// i.e. impl ... for Foo<'_, '_, T, N>
func UnboundedArgs(g *rsyn.Generics) []string {
	if g == nil {
		return nil
	}
	args := make([]string, 0, len(g.Params))
	for _, param := range g.Params {
		switch param := param.(type) {
		case *rsyn.LifetimeParam:
			args = append(args, "'_")
		case *rsyn.TypeParam:
			args = append(args, param.Name.Text)
		case *rsyn.ConstParam:
			args = append(args, param.Name.Text)
		}
	}
	return args
}

// BoundedParams projects the impl's own generic parameter list. Lifetime
// parameters are dropped: the impl is written for all lifetimes through
// [UnboundedArgs], so it declares none. Every type parameter keeps its
// inline bounds and gains the target trait as a capability bound. Const
// parameters pass through, with any declared default stripped since
// defaults are not legal on an impl.
func BoundedParams(g *rsyn.Generics, target Target, crate string) []string {
	if g == nil {
		return nil
	}
	var params []string
	for _, param := range g.Params {
		switch param := param.(type) {
		case *rsyn.LifetimeParam:
			// dropped

		case *rsyn.TypeParam:
			bounds := boundCodes(param.Bounds)
			bounds = append(bounds, target.Bound(crate))
			params = append(params, param.Name.Text+": "+strings.Join(bounds, " + "))

		case *rsyn.ConstParam:
			params = append(params, "const "+param.Name.Text+": "+param.Type.Code())
		}
	}
	return params
}

// boundCodes reprints bounds, dropping bare non-static lifetime bounds:
// the lifetimes they name are not declared on the impl.
func boundCodes(bounds []*rsyn.Bound) []string {
	var codes []string
	for _, bound := range bounds {
		if bound.Lifetime && !bound.Static {
			continue
		}
		codes = append(codes, bound.Code())
	}
	return codes
}
