package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinItems_BuildClean(t *testing.T) {
	r, err := BuildRegistry(BuiltinItems())
	require.NoError(t, err)
	assert.Equal(t, len(BuiltinItems()), r.Len())
}

func TestBuiltinItems_FreshSlice(t *testing.T) {
	a := BuiltinItems()
	a[0].ID = "mutated"
	b := BuiltinItems()
	assert.NotEqual(t, "mutated", b[0].ID)
}

func TestBuiltinItems_KeepsLowConfidenceEntries(t *testing.T) {
	r, err := BuildRegistry(BuiltinItems())
	require.NoError(t, err)

	// Low reliability is queryable data, not a gate.
	council, ok := r.Get("council_scrip")
	require.True(t, ok)
	assert.Equal(t, 2, council.Sources[0].Reliability)
}

func TestBuiltinItems_CoverEveryCategory(t *testing.T) {
	r, err := BuildRegistry(BuiltinItems())
	require.NoError(t, err)

	for _, cat := range Categories() {
		assert.NotEmpty(t, r.ItemsInCategory(cat), "category %s has no builtin items", cat)
	}
}
