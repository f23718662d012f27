package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []PortfolioItem {
	return []PortfolioItem{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "Second"},
		{ID: "c", Title: "Third"},
	}
}

func TestFindItem(t *testing.T) {
	items := sampleItems()

	idx, ok := FindItem(items, "b")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = FindItem(items, "missing")
	assert.False(t, ok)

	_, ok = FindItem([]PortfolioItem{}, "a")
	assert.False(t, ok)
}

// Замена сохраняет позицию и идентификатор элемента
func TestReplaceItem(t *testing.T) {
	items := sampleItems()

	updated, ok := ReplaceItem(items, PortfolioItem{ID: "b", Title: "Renamed"})
	require.True(t, ok)
	require.Len(t, updated, 3)
	assert.Equal(t, "a", updated[0].ID)
	assert.Equal(t, "b", updated[1].ID)
	assert.Equal(t, "Renamed", updated[1].Title)
	assert.Equal(t, "c", updated[2].ID)
}

func TestReplaceItem_Missing(t *testing.T) {
	items := sampleItems()

	_, ok := ReplaceItem(items, PortfolioItem{ID: "zzz", Title: "Nope"})
	assert.False(t, ok)
}

// Удаляется ровно один элемент, соседи не затрагиваются
func TestRemoveItem(t *testing.T) {
	items := sampleItems()

	updated, ok := RemoveItem(items, "b")
	require.True(t, ok)
	require.Len(t, updated, 2)
	assert.Equal(t, "a", updated[0].ID)
	assert.Equal(t, "c", updated[1].ID)
}

func TestRemoveItem_Missing(t *testing.T) {
	items := sampleItems()

	updated, ok := RemoveItem(items, "missing")
	assert.False(t, ok)
	assert.Len(t, updated, 3)
}

func TestRemoveItem_Last(t *testing.T) {
	items := []WorkExperienceItem{{ID: "only"}}

	updated, ok := RemoveItem(items, "only")
	assert.True(t, ok)
	assert.Empty(t, updated)
}
