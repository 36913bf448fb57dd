package generate

import (
	"errors"

	"github.com/staticgen-dev/staticgen/internal/codefmt"
	"github.com/staticgen-dev/staticgen/internal/rsyn"
)

// CheckItem runs checkField over every field reachable from the item,
// including every field of every enum variant. All offending fields are
// reported, not only the first.
func CheckItem(file *rsyn.File, item *rsyn.Item) error {
	var errs error

	if item.Fields != nil {
		for _, field := range item.Fields.List {
			errs = errors.Join(errs, checkField(file, field))
		}
	}
	for _, variant := range item.Variants {
		for _, field := range variant.Fields.List {
			errs = errors.Join(errs, checkField(file, field))
		}
	}
	return errs
}

// checkField rejects fields declared as a reference with an explicit
// non-static lifetime.
//
// Such a struct cannot be made static for all lifetimes 'a:
//
//	#[derive(ToStatic)]
//	struct Foo<'a> {
//	    bar: &'a str,
//	}
//
// whereas &'static str, a lifetime-free reference, and container types that
// merely hold lifetimes (such as Cow<'a, str>) all pass. The downstream
// compiler of the emitted code would reject the bad case anyway; checking
// here produces an explicit message naming the field instead.
func checkField(file *rsyn.File, field *rsyn.Field) error {
	ref, ok := field.Type.(*rsyn.RefType)
	if !ok {
		return nil
	}
	if ref.Lifetime == nil || ref.HasStaticLifetime() {
		return nil
	}
	return codefmt.Errorf(file, field, "non-static reference cannot be made static: %c", field)
}
