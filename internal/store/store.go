// Package store keeps normalized cells in memory under increasing integer keys.
//
// A Store is not safe for concurrent use.
package store

import (
	"sort"

	"cellstats/internal/models"
)

// Entry pairs a cell with its key.
type Entry struct {
	Key  int
	Cell models.Cell
}

// Store is an ordered, keyed collection of cells. Keys start at 1 and are
// never handed out twice, even after the highest key is deleted.
type Store struct {
	cells   map[int]models.Cell
	keys    []int
	lastKey int
}

func New() *Store {
	return &Store{cells: make(map[int]models.Cell)}
}

// Insert stores c under the next key and returns that key.
func (s *Store) Insert(c models.Cell) int {
	s.lastKey++
	s.cells[s.lastKey] = c
	s.keys = append(s.keys, s.lastKey)
	return s.lastKey
}

// Delete removes key and reports whether it was present.
func (s *Store) Delete(key int) bool {
	if _, ok := s.cells[key]; !ok {
		return false
	}
	delete(s.cells, key)
	i := sort.SearchInts(s.keys, key)
	s.keys = append(s.keys[:i], s.keys[i+1:]...)
	return true
}

func (s *Store) Get(key int) (models.Cell, bool) {
	c, ok := s.cells[key]
	return c, ok
}

// Replace swaps the cell stored under key. It reports false if key is absent.
func (s *Store) Replace(key int, c models.Cell) bool {
	if _, ok := s.cells[key]; !ok {
		return false
	}
	s.cells[key] = c
	return true
}

// All returns every entry in ascending key order.
func (s *Store) All() []Entry {
	entries := make([]Entry, len(s.keys))
	for i, k := range s.keys {
		entries[i] = Entry{Key: k, Cell: s.cells[k]}
	}
	return entries
}

func (s *Store) Len() int { return len(s.keys) }
