package store

import (
	"testing"

	"cellstats/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cell(oem string) models.Cell {
	return models.NewCell(models.RawCell{OEM: oem})
}

func keys(s *Store) []int {
	var ks []int
	for _, e := range s.All() {
		ks = append(ks, e.Key)
	}
	return ks
}

func TestInsert_AssignsSequentialKeys(t *testing.T) {
	s := New()
	for i := 1; i <= 5; i++ {
		assert.Equal(t, i, s.Insert(cell("A")))
	}

	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, keys(s)); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5, s.Len())
}

func TestDelete_NeverReusesKeys(t *testing.T) {
	s := New()
	for i := 0; i < 4; i++ {
		s.Insert(cell("A"))
	}

	require.True(t, s.Delete(2))
	assert.Equal(t, 5, s.Insert(cell("B")))

	// Deleting the highest key must not free it up.
	require.True(t, s.Delete(5))
	assert.Equal(t, 6, s.Insert(cell("C")))

	if diff := cmp.Diff([]int{1, 3, 4, 6}, keys(s)); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestDelete_Missing(t *testing.T) {
	s := New()
	s.Insert(cell("A"))

	assert.False(t, s.Delete(7))
	assert.False(t, s.Delete(0))
	assert.True(t, s.Delete(1))
	assert.False(t, s.Delete(1), "second delete of the same key")
	assert.Equal(t, 0, s.Len())
}

func TestGet(t *testing.T) {
	s := New()
	k := s.Insert(cell("Nokia"))

	got, ok := s.Get(k)
	require.True(t, ok)
	assert.Equal(t, "Nokia", got.OEM.String)

	_, ok = s.Get(k + 1)
	assert.False(t, ok)
}

func TestReplace(t *testing.T) {
	s := New()
	k := s.Insert(cell("Nokia"))

	assert.True(t, s.Replace(k, cell("HMD")))
	got, _ := s.Get(k)
	assert.Equal(t, "HMD", got.OEM.String)

	assert.False(t, s.Replace(99, cell("X")))
	assert.Equal(t, 1, s.Len())
}

func TestAll_PreservesOrderAfterDeletes(t *testing.T) {
	s := New()
	for _, oem := range []string{"A", "B", "C"} {
		s.Insert(cell(oem))
	}
	s.Delete(1)

	entries := s.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].Cell.OEM.String)
	assert.Equal(t, "C", entries[1].Cell.OEM.String)
}
