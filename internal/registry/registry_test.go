package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesByFeature(t *testing.T) {
	core, err := Entries([]string{"core"})
	require.NoError(t, err)
	for _, entry := range core {
		assert.Equal(t, "core", entry.Feature)
	}

	// str, 16 primitives, Option, and the array.
	assert.Len(t, core, 19)

	all, err := Entries(Features())
	require.NoError(t, err)
	assert.Greater(t, len(all), len(core))

	// Table order is preserved regardless of the requested feature order.
	reordered, err := Entries([]string{"std", "core", "alloc", "collections"})
	require.NoError(t, err)
	assert.Equal(t, all, reordered)
}

func TestEntriesUnknownFeature(t *testing.T) {
	_, err := Entries([]string{"core", "nightly"})
	assert.EqualError(t, err, `unknown feature "nightly"`)
}

func TestEntryStrategies(t *testing.T) {
	all, err := Entries(Features())
	require.NoError(t, err)

	byType := make(map[string]Entry)
	for _, entry := range all {
		byType[entry.Type] = entry
	}

	assert.Equal(t, Copy, byType["u32"].Strategy)
	assert.Equal(t, CowLike, byType["Cow<'_, T>"].Strategy)
	assert.Equal(t, Owned, byType["String"].Strategy)
	assert.Equal(t, ElementWise, byType["Vec<T>"].Strategy)
	assert.Equal(t, ElementWise, byType["HashMap<K, V, S>"].Strategy)
	assert.Equal(t, Boxed, byType["Box<T>"].Strategy)
}

func TestEntryImplPairs(t *testing.T) {
	all, err := Entries(Features())
	require.NoError(t, err)

	for _, entry := range all {
		assert.Contains(t, entry.to, "fn to_static(&self) -> Self::Static {", "type %s", entry.Type)
		assert.Contains(t, entry.into, "fn into_static(self) -> Self::Static {", "type %s", entry.Type)
	}
}
