package till

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheikh-saqib/till-float-management/internal/models"
)

func TestNewInventory_DefaultSeed(t *testing.T) {
	inv := NewInventory(DefaultSeed())

	assert.Equal(t, 500, inv.Value())
	assert.Equal(t, 5, inv.Count(50))
	assert.Equal(t, 12, inv.Count(5))
	assert.Len(t, inv.Counts(), len(models.Denominations()))
}

func TestNewInventory_KeysAreClosed(t *testing.T) {
	inv := NewInventory([]SeedEntry{{Denomination: 15, Count: 3}, {Denomination: 5, Count: 2}})

	assert.Equal(t, 0, inv.Count(15))
	assert.Equal(t, 2, inv.Count(5))
	assert.Equal(t, 0, inv.Count(50))
	assert.NotContains(t, inv.Counts(), models.Denomination(15))

	inv.Decrement(15, 1)
	inv.Increment(15, 1)
	assert.NotContains(t, inv.Counts(), models.Denomination(15))
}

func TestInventory_IncrementDecrement(t *testing.T) {
	inv := NewInventory(DefaultSeed())

	inv.Decrement(20, 2)
	assert.Equal(t, 3, inv.Count(20))
	inv.Increment(20, 1)
	assert.Equal(t, 4, inv.Count(20))
	assert.Equal(t, 480, inv.Value())
}

func TestInventory_CloneIsIndependent(t *testing.T) {
	inv := NewInventory(DefaultSeed())
	clone := inv.Clone()

	clone.Decrement(50, 5)
	assert.Equal(t, 5, inv.Count(50))
	assert.Equal(t, 0, clone.Count(50))

	counts := inv.Counts()
	counts[10] = 99
	assert.Equal(t, 6, inv.Count(10))
}

func TestInitialize(t *testing.T) {
	state := Initialize(DefaultSeed())

	assert.Equal(t, 500, state.Balance)
	assert.Equal(t, 500, state.DrawerValue())
	assert.Empty(t, state.Stock.Snapshot())
}
