package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantArms(t *testing.T) {
	_, item := parseItem(t, `
enum Baz {
    First(String, usize),
    Second { fst: u32, snd: u64 },
    Third,
}
`)
	require.Len(t, item.Variants, 3)

	assert.Equal(t,
		"Baz::First(field_0, field_1) => Baz::First(field_0.to_static(), field_1.to_static())",
		variantArm("Baz", item.Variants[0], ToBoundedStatic))
	assert.Equal(t,
		"Baz::Second { fst, snd } => Baz::Second { fst: fst.into_static(), snd: snd.into_static() }",
		variantArm("Baz", item.Variants[1], IntoBoundedStatic))
	assert.Equal(t,
		"Baz::Third => Baz::Third",
		variantArm("Baz", item.Variants[2], ToBoundedStatic))
}

func TestEmitEnumMatchesBothWays(t *testing.T) {
	file, item := parseItem(t, `
enum Two<'a> {
    A(Cow<'a, str>),
    B,
}
`)

	code, err := Item(file, item, crate)
	require.NoError(t, err)

	s := string(code)
	assert.Contains(t, s, "fn to_static(&self) -> Self::Static {")
	assert.Contains(t, s, "fn into_static(self) -> Self::Static {")
	assert.Contains(t, s, "Two::A(field_0) => Two::A(field_0.to_static()),")
	assert.Contains(t, s, "Two::A(field_0) => Two::A(field_0.into_static()),")
	assert.Contains(t, s, "Two::B => Two::B,")
	assert.Contains(t, s, "type Static = Two<'static>;")
}
