package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Len(t, c.Categories(), 6)
	assert.Len(t, c.Items(), 22+14+8+7+19+19)

	it, ok := c.Lookup(101)
	require.True(t, ok)
	assert.Equal(t, MenuItem{ID: 101, Name: "Sahi Paneer", CategoryID: "paneer_special", CategoryName: "Paneer Special"}, it)

	_, ok = c.Lookup(999)
	assert.False(t, ok)
}

func TestItemsFollowMenuOrder(t *testing.T) {
	items := Default().Items()
	require.NotEmpty(t, items)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 519, items[len(items)-1].ID)

	// ids grow monotonically through the menu
	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].ID, items[i].ID)
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Category{
		{ID: "a", Name: "A", Items: []Item{{1, "Tea"}}},
		{ID: "b", Name: "B", Items: []Item{{1, "Coffee"}}},
	})
	assert.Error(t, err)
}
