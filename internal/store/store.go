// Package store persists named shopping lists in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/storenav/shoplist"
)

// Sentinel errors for list storage.
var (
	ErrNotFound  = errors.New("store: item not found")
	ErrDuplicate = errors.New("store: item id already exists")
)

// DefaultList is the list used when none is named.
const DefaultList = "default"

// Store is a SQLite-backed shopping-list repository.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies pending
// migrations. ":memory:" gives a private in-memory database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection keeps ":memory:" databases shared and serialises writers
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Add appends it to list. An empty ID is replaced by a fresh UUID; the
// stored item is returned.
func (s *Store) Add(ctx context.Context, list string, it shoplist.Item) (shoplist.Item, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items (id, list, name, aisle, section, position)
		 VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM items WHERE list = ?))`,
		it.ID, list, it.Name, it.Aisle, it.Section, list,
	)
	if err != nil {
		var se sqlite3.Error
		if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
			return shoplist.Item{}, fmt.Errorf("%w: %q", ErrDuplicate, it.ID)
		}
		return shoplist.Item{}, fmt.Errorf("failed to add item: %w", err)
	}
	return it, nil
}

// Remove deletes the item with id from list.
func (s *Store) Remove(ctx context.Context, list, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE list = ? AND id = ?", list, id)
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q in %q", ErrNotFound, id, list)
	}
	return nil
}

// Clear deletes every item of list.
func (s *Store) Clear(ctx context.Context, list string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE list = ?", list); err != nil {
		return fmt.Errorf("failed to clear list: %w", err)
	}
	return nil
}

// Items returns list in insertion order.
func (s *Store) Items(ctx context.Context, list string) (shoplist.List, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, aisle, section FROM items WHERE list = ? ORDER BY position",
		list,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var out shoplist.List
	for rows.Next() {
		var it shoplist.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Aisle, &it.Section); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Lists returns the names of all non-empty lists.
func (s *Store) Lists(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT list FROM items ORDER BY list")
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
