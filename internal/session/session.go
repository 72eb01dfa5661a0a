// Package session ties the cell store to the operations the shell and TUI
// expose: loading, adding, deleting, listing and reporting.
//
// A Session is owned by one interactive surface at a time and is not safe
// for concurrent use.
package session

import (
	"fmt"

	"cellstats/internal/analytics"
	"cellstats/internal/models"
	"cellstats/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Session struct {
	ID     uuid.UUID
	store  *store.Store
	logger *zap.Logger
}

// FieldValues lists the distinct known values of one field, in the order they
// first appear.
type FieldValues struct {
	Field  models.Field
	Values []string
}

func New(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New()
	return &Session{
		ID:     id,
		store:  store.New(),
		logger: logger.With(zap.String("session_id", id.String())),
	}
}

// Ingest adds every row and returns how many were stored.
func (s *Session) Ingest(rows []models.RawCell) int {
	for i, raw := range rows {
		cell := models.NewCell(raw)
		key := s.store.Insert(cell)
		s.logger.Debug("row ingested",
			zap.Int("row", i+1),
			zap.Int("key", key),
			zap.Any("raw", raw),
			zap.Any("cell", cell),
		)
	}
	s.logger.Info("CSV ingested", zap.Int("rows", len(rows)), zap.Int("cells", s.store.Len()))
	return len(rows)
}

// Add normalizes raw, stores it and returns its key.
func (s *Session) Add(raw models.RawCell) int {
	cell := models.NewCell(raw)
	key := s.store.Insert(cell)
	s.logger.Info("cell added", zap.Int("key", key), zap.Any("cell", cell))
	return key
}

// Delete removes the cell under key and reports whether one was there.
func (s *Session) Delete(key int) bool {
	ok := s.store.Delete(key)
	if ok {
		s.logger.Info("cell deleted", zap.Int("key", key))
	} else {
		s.logger.Info("no cell to delete", zap.Int("key", key))
	}
	return ok
}

// UpdateField re-parses one field of the cell under key from raw.
func (s *Session) UpdateField(key int, field models.Field, raw string) (models.Cell, error) {
	cell, ok := s.store.Get(key)
	if !ok {
		return models.Cell{}, fmt.Errorf("no cell with key %d", key)
	}
	cell = cell.WithField(field, raw)
	s.store.Replace(key, cell)
	s.logger.Info("cell updated", zap.Int("key", key), zap.Stringer("field", field))
	return cell, nil
}

func (s *Session) Get(key int) (models.Cell, bool) {
	return s.store.Get(key)
}

// Cells lists every stored cell in key order.
func (s *Session) Cells() []store.Entry {
	return s.store.All()
}

func (s *Session) Len() int { return s.store.Len() }

// UniqueValues collects, for every field, the distinct known values present.
func (s *Session) UniqueValues() []FieldValues {
	fields := models.Fields()
	result := make([]FieldValues, len(fields))
	seen := make([]map[string]bool, len(fields))
	for i, f := range fields {
		result[i] = FieldValues{Field: f, Values: []string{}}
		seen[i] = make(map[string]bool)
	}

	for _, e := range s.store.All() {
		for i, f := range fields {
			v, ok := e.Cell.Display(f)
			if !ok || seen[i][v] {
				continue
			}
			seen[i][v] = true
			result[i].Values = append(result[i].Values, v)
		}
	}
	return result
}

// Report runs every analytics query over the current cells.
func (s *Session) Report() analytics.Report {
	return analytics.Build(s.store)
}
