package codefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNSName(t *testing.T) {
	ns := NewNS()

	assert.Equal(t, "field_0", ns.Name("field_0"))
	// A numeric tail gets a separator: "field_0_2" reads better than
	// "field_02".
	assert.Equal(t, "field_0_2", ns.Name("field_0"))
	assert.Equal(t, "field_0_3", ns.Name("field_0"))
}

func TestNSNameKeyword(t *testing.T) {
	ns := NewNS()

	assert.Equal(t, "match_", ns.Name("match"))
	assert.Equal(t, "type_", ns.Name("type"))
}

func TestNSReserved(t *testing.T) {
	ns := NewNS("x")

	assert.False(t, ns.Reserve("x"))
	assert.Equal(t, "x2", ns.Name("x"))
	assert.True(t, ns.Reserve("y"))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "fooBar", NormalizeName("foo-bar"))
	assert.Equal(t, "fooBarBaz", NormalizeName("foo bar baz"))
	assert.Equal(t, "field_0", NormalizeName("field_0"))
	assert.Panics(t, func() { NormalizeName("") })
}

func TestDisambiguateName(t *testing.T) {
	var names []string
	for name := range DisambiguateName("f1") {
		names = append(names, name)
		if len(names) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"f1", "f1_2", "f1_3"}, names)
}
