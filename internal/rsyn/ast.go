package rsyn

// File is a parsed declaration file.
type File struct {
	Name  string // file name for diagnostics
	Items []*Item

	src []byte
}

// Src returns the raw source of the file.
func (f *File) Src() []byte { return f.src }

// span is a byte range into the owning file's source.
type span struct {
	file     *File
	from, to int
	pos      Pos
}

func (s span) Pos() Pos { return s.pos }

// Code reprints the span verbatim from the source.
func (s span) Code() string { return trimSpan(s.file.src, s.from, s.to) }

// ItemKind is the declaration kind of an item.
type ItemKind int

const (
	StructItem ItemKind = iota
	EnumItem
	UnionItem
)

func (k ItemKind) String() string {
	switch k {
	case StructItem:
		return "struct"
	case EnumItem:
		return "enum"
	case UnionItem:
		return "union"
	}
	return "unknown"
}

// Item is a type declaration: a struct, enum, or union.
type Item struct {
	span
	Attrs    []*Attr
	Kind     ItemKind
	Name     Token
	Generics *Generics    // nil when the item declares no generic parameters
	Where    []*Predicate // nil when there is no where clause
	Fields   *Fields      // struct only
	Variants []*Variant   // enum only
}

// Derives reports whether the item carries #[derive(...)] naming marker.
func (it *Item) Derives(marker string) bool {
	for _, attr := range it.Attrs {
		for _, d := range attr.Derives {
			if d == marker {
				return true
			}
		}
	}
	return false
}

// Attr is an outer attribute group, e.g. #[derive(Clone, ToStatic)].
type Attr struct {
	span
	Derives []string // idents inside derive(...), nil for other attributes
}

// Generics is an ordered generic parameter list.
type Generics struct {
	span
	Params []GenericParam
}

// GenericParam is one of *LifetimeParam, *TypeParam, or *ConstParam.
// Declaration order is significant and preserved by every projection.
type GenericParam interface {
	Pos() Pos
	Code() string
	genericParam()
}

// LifetimeParam is a lifetime parameter, e.g. 'a or 'a: 'b.
type LifetimeParam struct {
	span
	Name Token // the lifetime token, including the leading quote
}

// TypeParam is a type parameter with optional inline bounds and default,
// e.g. T, T: Clone + Ord, or T: Clone = String.
type TypeParam struct {
	span
	Name    Token
	Bounds  []*Bound
	Default *TypeExpr // nil unless a default is declared
}

// ConstParam is a const parameter, e.g. const N: usize.
type ConstParam struct {
	span
	Name Token
	Type *TypeExpr
}

func (*LifetimeParam) genericParam() {}
func (*TypeParam) genericParam()     {}
func (*ConstParam) genericParam()    {}

// Bound is a single trait or lifetime bound. Bounds are kept as verbatim
// source spans; the only structure the generator needs is whether a bound is
// a bare lifetime.
type Bound struct {
	span
	Lifetime bool // the bound is a bare lifetime such as 'a or 'static
	Static   bool // the bound is exactly 'static
}

// Predicate is one where-clause entry, e.g. `T: Clone + Ord`. A predicate
// applies to a type parameter iff its subject is exactly that parameter's
// identifier.
type Predicate struct {
	span
	Subject Type
	Bounds  []*Bound
}

// SubjectIdent returns the subject identifier if the subject is a single
// bare identifier, or "" otherwise.
func (p *Predicate) SubjectIdent() string {
	if t, ok := p.Subject.(*TypeExpr); ok && t.SingleIdent != "" {
		return t.SingleIdent
	}
	return ""
}

// FieldsKind is the field layout of a struct or enum variant.
type FieldsKind int

const (
	UnitFields FieldsKind = iota
	NamedFields
	UnnamedFields
)

func (k FieldsKind) String() string {
	switch k {
	case UnitFields:
		return "unit"
	case NamedFields:
		return "named"
	case UnnamedFields:
		return "unnamed"
	}
	return "unknown"
}

// Fields is an ordered field collection.
type Fields struct {
	span
	Kind FieldsKind
	List []*Field
}

// Field is a single field. Name is set for named fields; Index is the
// position for unnamed fields.
type Field struct {
	span
	Name  *Token
	Index int
	Type  Type
}

// Variant is one enum variant with its own field shape.
type Variant struct {
	span
	Attrs  []*Attr
	Name   Token
	Fields *Fields
}

// Type is a declared type expression. Only top-level references are modelled
// structurally; everything else is an opaque verbatim span.
type Type interface {
	Pos() Pos
	Code() string
}

// RefType is a top-level reference type, e.g. &'a str or &'static mut [u8].
type RefType struct {
	span
	Lifetime *Token // nil when the reference has no lifetime annotation
	Mut      bool
	Elem     Type
}

// HasStaticLifetime reports whether the reference is annotated 'static.
func (t *RefType) HasStaticLifetime() bool {
	return t.Lifetime != nil && t.Lifetime.Text == "'static"
}

// TypeExpr is any non-reference type expression, kept verbatim.
type TypeExpr struct {
	span
	// SingleIdent is the identifier text when the whole expression is one
	// bare identifier, or "" otherwise. Where-clause predicate association
	// relies on it.
	SingleIdent string
}
