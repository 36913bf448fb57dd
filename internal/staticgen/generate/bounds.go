package generate

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/staticgen-dev/staticgen/internal/rsyn"
)

// ImplWhere assembles the generated impl's where clause: the item's own
// predicates carried over (augmented with the capability bound), followed by
// one Static assertion per bounded type parameter. An empty result means the
// impl needs no where clause.
func ImplWhere(g *rsyn.Generics, where []*rsyn.Predicate, target Target, crate string) []string {
	idx := predicateIndex(where)
	items := restatedPredicates(where, target, crate)
	items = append(items, staticPredicates(g, idx)...)
	return items
}

// predicateIndex indexes where-clause predicates by type parameter
// identifier, in declaration order. A predicate is associated with a
// parameter only when its subject is exactly that parameter's identifier;
// predicates over any other type expression are never matched.
func predicateIndex(where []*rsyn.Predicate) *linkedhashmap.Map {
	idx := linkedhashmap.New() // ident -> []*rsyn.Bound
	for _, pred := range where {
		ident := pred.SubjectIdent()
		if ident == "" {
			continue
		}
		bounds := pred.Bounds
		if prev, ok := idx.Get(ident); ok {
			bounds = append(prev.([]*rsyn.Bound), bounds...)
		}
		idx.Put(ident, bounds)
	}
	return idx
}

// restatedPredicates carries the item's own predicates into the impl so the
// impl satisfies the item's declared constraints. Predicates whose subject
// is a type parameter gain the capability bound, matching the bound added to
// the parameter itself. Predicates over other subjects are dropped: they may
// name lifetimes the impl does not declare, and association is by exact
// parameter identifier only.
func restatedPredicates(where []*rsyn.Predicate, target Target, crate string) []string {
	var items []string
	for _, pred := range where {
		ident := pred.SubjectIdent()
		if ident == "" {
			continue
		}
		bounds := boundCodes(pred.Bounds)
		bounds = append(bounds, target.Bound(crate))
		items = append(items, ident+": "+strings.Join(bounds, " + "))
	}
	return items
}

// staticPredicates asserts, for every type parameter T carrying at least one
// bound, that T::Static satisfies the same bounds. The owned counterpart of
// T is otherwise not known to satisfy them, and downstream code relying on,
// say, an ordered collection of T::Static would fail without the assertion.
//
// The asserted set is the union of the parameter's inline bounds and its
// matching where-clause bounds, inline first, order preserved. Duplicates
// collapse, though repeating a bound would be harmless anyway.
func staticPredicates(g *rsyn.Generics, idx *linkedhashmap.Map) []string {
	if g == nil {
		return nil
	}

	var items []string
	for _, param := range g.Params {
		param, ok := param.(*rsyn.TypeParam)
		if !ok {
			continue
		}

		union := linkedhashset.New()
		for _, code := range boundCodes(param.Bounds) {
			union.Add(code)
		}
		if matched, ok := idx.Get(param.Name.Text); ok {
			for _, code := range boundCodes(matched.([]*rsyn.Bound)) {
				union.Add(code)
			}
		}
		if union.Empty() {
			continue
		}

		codes := make([]string, 0, union.Size())
		for _, code := range union.Values() {
			codes = append(codes, code.(string))
		}
		items = append(items, param.Name.Text+"::Static: "+strings.Join(codes, " + "))
	}
	return items
}
