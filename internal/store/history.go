package store

import (
	"fmt"
	"time"
)

// HistoryEntry is one recorded generation call.
type HistoryEntry struct {
	ID             string
	CreatedAt      time.Time
	Description    string
	Width          int
	Height         int
	Archetype      string
	Attempts       int
	Fallback       bool
	Interpretation string
}

// RecordGeneration appends a generation to the history log.
func (s *Store) RecordGeneration(e HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO generations(id, created_at, description, width, height, archetype, attempts, fallback, interpretation)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatedAt.Unix(), e.Description, e.Width, e.Height,
		e.Archetype, e.Attempts, boolToInt(e.Fallback), e.Interpretation)
	if err != nil {
		return fmt.Errorf("failed to record generation %s: %w", e.ID, err)
	}
	return nil
}

// RecentGenerations returns up to limit history entries, newest first.
func (s *Store) RecentGenerations(limit int) ([]HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, created_at, description, width, height, archetype, attempts, fallback, interpretation
		 FROM generations ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var createdAt int64
		var fallback int
		if err := rows.Scan(&e.ID, &createdAt, &e.Description, &e.Width, &e.Height,
			&e.Archetype, &e.Attempts, &fallback, &e.Interpretation); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.CreatedAt = time.Unix(createdAt, 0)
		e.Fallback = fallback != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
