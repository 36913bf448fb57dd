// Package generate synthesizes the borrowing and consuming conversion impls
// for one declared item.
//
// For every item it emits two trait implementations: ToBoundedStatic, whose
// to_static method borrows the value and returns its owned counterpart, and
// IntoBoundedStatic, whose into_static method consumes the value. The owned
// counterpart is named by the Static associated type, built by substituting
// 'static for every lifetime argument and T::Static for every type argument.
package generate

// Target selects which of the two traits is being generated.
type Target int

const (
	ToBoundedStatic Target = iota
	IntoBoundedStatic
)

// Method returns the trait's conversion method name.
func (t Target) Method() string {
	switch t {
	case ToBoundedStatic:
		return "to_static"
	case IntoBoundedStatic:
		return "into_static"
	}
	panic("unknown target")
}

// Trait returns the trait's bare name.
func (t Target) Trait() string {
	switch t {
	case ToBoundedStatic:
		return "ToBoundedStatic"
	case IntoBoundedStatic:
		return "IntoBoundedStatic"
	}
	panic("unknown target")
}

// Bound returns the fully qualified trait path used as a capability bound,
// e.g. "::bounded_static::ToBoundedStatic".
func (t Target) Bound(crate string) string {
	return "::" + crate + "::" + t.Trait()
}

// Receiver returns the method's receiver, "&self" or "self".
func (t Target) Receiver() string {
	if t == ToBoundedStatic {
		return "&self"
	}
	return "self"
}

// targets lists both traits in emission order.
var targets = [...]Target{ToBoundedStatic, IntoBoundedStatic}
