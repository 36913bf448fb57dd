// Package staticgen generates owned counterparts for borrowing data types.
//
// Staticgen is a build-step code generator. It reads declaration files
// containing struct and enum types that hold borrowed data (references,
// copy-on-write buffers, nested generic containers) and, for every item
// marked with the ToStatic derive attribute, emits two trait
// implementations:
//
//   - ToBoundedStatic, whose to_static method borrows the value and returns
//     an independent owned value bounded by 'static.
//   - IntoBoundedStatic, whose into_static method consumes the value and
//     returns the owned value without redundant copies.
//
// Both implementations name the owned counterpart through the Static
// associated type, built by substituting 'static for every lifetime
// argument and T::Static for every type argument of the source type. For
// example:
//
//	// source:
//	#[derive(ToStatic)]
//	struct Foo<'a> {
//	    bar: Cow<'a, str>,
//	}
//
//	// generated: (simplified)
//	impl ToBoundedStatic for Foo<'_> {
//	    type Static = Foo<'static>;
//
//	    fn to_static(&self) -> Self::Static {
//	        Foo { bar: self.bar.to_static() }
//	    }
//	}
//
// After declaring types, run the staticgen command. It will generate a
// <file>_static.rs next to each declaration file:
//
//	go run github.com/staticgen-dev/staticgen/cmd/staticgen ./src
//
// The runtime library the generated code builds on (the trait definitions
// and impls for builtin containers) can be emitted with the -prelude flag;
// which container impls it includes is selected by feature sets in
// staticgen.toml.
//
// Generation is all-or-nothing. A field declared as a reference with a
// non-static lifetime, or a union carrying the derive marker, fails the run
// with a diagnostic naming the offending declaration; nothing is written.
// Whether every field type actually implements the two traits is left to
// the compiler of the emitted code, which reports it in terms of the
// generated impls.
package staticgen
