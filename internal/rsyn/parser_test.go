package rsyn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, src string) *Item {
	t.Helper()
	file, err := ParseFile("test.rs", []byte(src))
	require.NoError(t, err)
	require.Len(t, file.Items, 1)
	return file.Items[0]
}

func TestParseNamedStruct(t *testing.T) {
	item := parseOne(t, `
#[derive(Clone, ToStatic)]
pub struct Foo<'a> {
    pub aaa: Cow<'a, str>,
    bbb: &'static str,
}
`)

	assert.Equal(t, StructItem, item.Kind)
	assert.Equal(t, "Foo", item.Name.Text)
	assert.True(t, item.Derives("ToStatic"))
	assert.True(t, item.Derives("Clone"))
	assert.False(t, item.Derives("Debug"))

	require.Equal(t, NamedFields, item.Fields.Kind)
	require.Len(t, item.Fields.List, 2)
	assert.Equal(t, "aaa", item.Fields.List[0].Name.Text)
	assert.Equal(t, "Cow<'a, str>", item.Fields.List[0].Type.Code())
	assert.Equal(t, "bbb: &'static str", item.Fields.List[1].Code())
}

func TestParseGenerics(t *testing.T) {
	item := parseOne(t, `
#[derive(ToStatic)]
struct Gen<'a, T: Into<String>, const N: usize>
where
    T: Clone,
{
    t: T,
}
`)

	require.NotNil(t, item.Generics)
	require.Len(t, item.Generics.Params, 3)

	lt, ok := item.Generics.Params[0].(*LifetimeParam)
	require.True(t, ok)
	assert.Equal(t, "'a", lt.Name.Text)

	tp, ok := item.Generics.Params[1].(*TypeParam)
	require.True(t, ok)
	assert.Equal(t, "T", tp.Name.Text)
	require.Len(t, tp.Bounds, 1)
	assert.Equal(t, "Into<String>", tp.Bounds[0].Code())
	assert.False(t, tp.Bounds[0].Lifetime)
	assert.Nil(t, tp.Default)

	cp, ok := item.Generics.Params[2].(*ConstParam)
	require.True(t, ok)
	assert.Equal(t, "N", cp.Name.Text)
	assert.Equal(t, "usize", cp.Type.Code())

	require.Len(t, item.Where, 1)
	assert.Equal(t, "T", item.Where[0].SubjectIdent())
	require.Len(t, item.Where[0].Bounds, 1)
	assert.Equal(t, "Clone", item.Where[0].Bounds[0].Code())
}

func TestParseTypeParamDefault(t *testing.T) {
	item := parseOne(t, `struct S<T: Clone = String> { t: T }`)

	tp, ok := item.Generics.Params[0].(*TypeParam)
	require.True(t, ok)
	require.NotNil(t, tp.Default)
	assert.Equal(t, "String", tp.Default.Code())
}

func TestParseLifetimeBounds(t *testing.T) {
	item := parseOne(t, `struct S<'a: 'b, 'b, T: 'a + Clone>(T);`)

	require.Len(t, item.Generics.Params, 3)
	tp, ok := item.Generics.Params[2].(*TypeParam)
	require.True(t, ok)
	require.Len(t, tp.Bounds, 2)
	assert.True(t, tp.Bounds[0].Lifetime)
	assert.False(t, tp.Bounds[0].Static)
	assert.Equal(t, "Clone", tp.Bounds[1].Code())
}

func TestParseTupleStruct(t *testing.T) {
	item := parseOne(t, `struct Pair<T>(T, T) where T: Clone;`)

	require.Equal(t, UnnamedFields, item.Fields.Kind)
	require.Len(t, item.Fields.List, 2)
	assert.Equal(t, 0, item.Fields.List[0].Index)
	assert.Equal(t, 1, item.Fields.List[1].Index)
	require.Len(t, item.Where, 1)
	assert.Equal(t, "T", item.Where[0].SubjectIdent())
}

func TestParseUnitStruct(t *testing.T) {
	item := parseOne(t, `struct Qux;`)

	assert.Equal(t, UnitFields, item.Fields.Kind)
	assert.Empty(t, item.Fields.List)
	assert.Nil(t, item.Generics)
}

func TestParseEnum(t *testing.T) {
	item := parseOne(t, `
enum Baz<'a> {
    First(String, Vec<Cow<'a, str>>),
    Second { fst: u32 },
    Third,
    Fourth = 4,
}
`)

	assert.Equal(t, EnumItem, item.Kind)
	require.Len(t, item.Variants, 4)
	assert.Equal(t, UnnamedFields, item.Variants[0].Fields.Kind)
	assert.Len(t, item.Variants[0].Fields.List, 2)
	assert.Equal(t, NamedFields, item.Variants[1].Fields.Kind)
	assert.Equal(t, UnitFields, item.Variants[2].Fields.Kind)
	assert.Equal(t, UnitFields, item.Variants[3].Fields.Kind)
}

func TestParseUnion(t *testing.T) {
	item := parseOne(t, `union Reg { word: u32, half: u16 }`)

	assert.Equal(t, UnionItem, item.Kind)
	assert.Len(t, item.Fields.List, 2)
}

func TestParseRefTypes(t *testing.T) {
	item := parseOne(t, `
struct Refs<'a> {
    a: &'a str,
    b: &'static str,
    c: &mut [u8],
    d: Cow<'a, str>,
}
`)

	a, ok := item.Fields.List[0].Type.(*RefType)
	require.True(t, ok)
	require.NotNil(t, a.Lifetime)
	assert.Equal(t, "'a", a.Lifetime.Text)
	assert.False(t, a.HasStaticLifetime())

	b, ok := item.Fields.List[1].Type.(*RefType)
	require.True(t, ok)
	assert.True(t, b.HasStaticLifetime())

	c, ok := item.Fields.List[2].Type.(*RefType)
	require.True(t, ok)
	assert.Nil(t, c.Lifetime)
	assert.True(t, c.Mut)

	_, ok = item.Fields.List[3].Type.(*TypeExpr)
	assert.True(t, ok)
}

func TestParsePredicateSubject(t *testing.T) {
	item := parseOne(t, `struct S<T> where Vec<T>: Clone { t: T }`)

	require.Len(t, item.Where, 1)
	// Association is by exact parameter identifier only.
	assert.Equal(t, "", item.Where[0].SubjectIdent())
	assert.Equal(t, "Vec<T>", item.Where[0].Subject.Code())
}

func TestParseSkipsNonItems(t *testing.T) {
	file, err := ParseFile("test.rs", []byte(`
#![allow(dead_code)]

use std::borrow::Cow;
mod prelude;
extern crate alloc;

struct Foo;
`))
	require.NoError(t, err)
	require.Len(t, file.Items, 1)
	assert.Equal(t, "Foo", file.Items[0].Name.Text)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		`fn main() {}`:  "expected struct, enum, or union",
		`struct S<T {}`: "generic parameter list",
		`struct`:        "expected identifier",
	}
	for src, want := range tests {
		_, err := ParseFile("test.rs", []byte(src))
		require.Error(t, err, "source %q", src)
		assert.Contains(t, err.Error(), want)
		assert.Contains(t, err.Error(), "test.rs:")
	}
}
