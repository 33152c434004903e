package archive

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/sevenstud/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testSummary(id string, endedAt time.Time) game.DealSummary {
	return game.DealSummary{
		DealID:      id,
		Variant:     game.VariantHigh,
		StartedAt:   endedAt.Add(-time.Minute),
		EndedAt:     endedAt,
		WinnersHigh: []int{0},
		Pot:         120,
		DeltaStacks: map[string]int{"alice": 60, "bob": -60},
		PotShare:    map[string]int{"alice": 120},
	}
}

func TestSaveAndListRecent(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		summary := testSummary(fmt.Sprintf("deal-%d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, store.Save(summary))
	}

	got, err := store.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, "deal-2", got[0].DealID)
	assert.Equal(t, "deal-0", got[2].DealID)

	// The JSON payload round-trips the full summary.
	assert.Equal(t, game.VariantHigh, got[0].Variant)
	assert.Equal(t, []int{0}, got[0].WinnersHigh)
	assert.Equal(t, 120, got[0].Pot)
	assert.Equal(t, map[string]int{"alice": 60, "bob": -60}, got[0].DeltaStacks)
}

func TestListRecentLimit(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(testSummary(fmt.Sprintf("deal-%d", i), base.Add(time.Duration(i)*time.Minute))))
	}

	got, err := store.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "deal-4", got[0].DealID)
	assert.Equal(t, "deal-3", got[1].DealID)
}

func TestSaveDuplicateFails(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	summary := testSummary("dup", time.Now().UTC())

	require.NoError(t, store.Save(summary))
	assert.Error(t, store.Save(summary))
}

func TestPrune(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		require.NoError(t, store.Save(testSummary(fmt.Sprintf("deal-%d", i), base.Add(time.Duration(i)*time.Minute))))
	}

	require.NoError(t, store.Prune(4))

	got, err := store.ListRecent(100)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "deal-9", got[0].DealID)
	assert.Equal(t, "deal-6", got[3].DealID)
}

func TestListRecentEmpty(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	got, err := store.ListRecent(10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
