package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveContract(t *testing.T) {
	r, err := BuildRegistry(BuiltinItems())
	require.NoError(t, err)

	contract := Contract{
		Name: "Apex Predator",
		Requirements: []ContractRequirement{
			{ItemID: "irradiated_valakkar_fang_apex", Quantity: 1},
			{ItemID: "valakkar_fang", Quantity: 6},
		},
	}

	plan := ResolveContract(r, contract)

	assert.True(t, plan.Complete())
	require.Len(t, plan.Lines, 2)
	require.NotNil(t, plan.Lines[0].Item)
	assert.Equal(t, "Irradiated Valakkar Fang (Apex)", plan.Lines[0].Item.Name)
	assert.Equal(t, uint32(6), plan.Lines[1].Requirement.Quantity)
}

func TestResolveContract_UnknownID(t *testing.T) {
	r, err := BuildRegistry(BuiltinItems())
	require.NoError(t, err)

	plan := ResolveContract(r, Contract{
		Name: "Ghost Order",
		Requirements: []ContractRequirement{
			{ItemID: "carinite", Quantity: 1},
			{ItemID: "no_such_item", Quantity: 2},
		},
	})

	assert.False(t, plan.Complete())
	assert.Equal(t, []string{"no_such_item"}, plan.UnknownIDs)
	require.Len(t, plan.Lines, 2)
	assert.NotNil(t, plan.Lines[0].Item)
	assert.Nil(t, plan.Lines[1].Item)
}

func TestBuiltinContracts_AllResolvable(t *testing.T) {
	r, err := BuildRegistry(BuiltinItems())
	require.NoError(t, err)

	for _, c := range BuiltinContracts() {
		plan := ResolveContract(r, c)
		assert.True(t, plan.Complete(), "contract %q references unknown ids %v", c.Name, plan.UnknownIDs)
	}
}
