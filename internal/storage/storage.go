// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package storage persists original and masked text so a masked record
// can be retrieved later, and the original recovered only with the
// access key. Masking itself is lossy; this store is the only reversal
// path.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"mailmask/internal/detector"
)

var (
	// ErrNotFound indicates no record exists for the given id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidAccessKey indicates the caller may not read the original text.
	ErrInvalidAccessKey = errors.New("invalid access key")
)

// Record is one stored email. Original is populated only by
// GetOriginal.
type Record struct {
	ID        string                `json:"email_id"`
	Original  string                `json:"original_email,omitempty"`
	Masked    string                `json:"masked_email"`
	Entities  []detector.Descriptor `json:"masked_entities"`
	Category  string                `json:"category,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// Store wraps the SQLite database holding processed emails.
type Store struct {
	db        *sql.DB
	accessKey string
}

// Open opens (creating if needed) the database at path. The access key
// guards every read of original text.
func Open(path, accessKey string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	s := &Store{db: db, accessKey: accessKey}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS emails (
		id TEXT PRIMARY KEY,
		original_email TEXT NOT NULL,
		masked_email TEXT NOT NULL,
		masked_entities TEXT NOT NULL,
		category TEXT,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// Store saves an original email with its masked version and entity
// descriptors, returning the generated record id.
func (s *Store) Store(original, masked string, entities []detector.Descriptor, category string) (string, error) {
	entityJSON, err := json.Marshal(entities)
	if err != nil {
		return "", fmt.Errorf("failed to encode entities: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO emails (id, original_email, masked_email, masked_entities, category, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, original, masked, string(entityJSON), category, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("failed to store email: %w", err)
	}
	return id, nil
}

// SetCategory records the downstream classifier's label for an
// existing record.
func (s *Store) SetCategory(id, category string) error {
	res, err := s.db.Exec(`UPDATE emails SET category = ? WHERE id = ?`, category, id)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetMasked returns the masked record (no original text) for the id.
func (s *Store) GetMasked(id string) (*Record, error) {
	row := s.db.QueryRow(
		`SELECT id, masked_email, masked_entities, category, created_at FROM emails WHERE id = ?`, id)
	return scanRecord(row, nil)
}

// GetOriginal returns the full record including the original text. The
// access key must match the one the store was opened with.
func (s *Store) GetOriginal(id, accessKey string) (*Record, error) {
	if accessKey != s.accessKey {
		return nil, ErrInvalidAccessKey
	}

	var original string
	row := s.db.QueryRow(
		`SELECT id, masked_email, masked_entities, category, created_at, original_email
		 FROM emails WHERE id = ?`, id)
	return scanRecord(row, &original)
}

// GetByMaskedContent looks up the most recent record whose masked text
// matches exactly.
func (s *Store) GetByMaskedContent(masked string) (*Record, error) {
	row := s.db.QueryRow(
		`SELECT id, masked_email, masked_entities, category, created_at
		 FROM emails WHERE masked_email = ? ORDER BY created_at DESC LIMIT 1`, masked)
	return scanRecord(row, nil)
}

// scanRecord decodes one row. When original is non-nil the query
// selected original_email as the final column.
func scanRecord(row *sql.Row, original *string) (*Record, error) {
	var (
		rec        Record
		entityJSON string
		category   sql.NullString
		createdAt  string
	)

	dest := []any{&rec.ID, &rec.Masked, &entityJSON, &category, &createdAt}
	if original != nil {
		dest = append(dest, original)
	}

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	if err := json.Unmarshal([]byte(entityJSON), &rec.Entities); err != nil {
		return nil, fmt.Errorf("failed to decode entities: %w", err)
	}
	if category.Valid {
		rec.Category = category.String
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		rec.CreatedAt = t
	}
	if original != nil {
		rec.Original = *original
	}

	return &rec, nil
}
