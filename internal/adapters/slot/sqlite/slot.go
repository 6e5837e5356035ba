package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/thinkday/internal/domain"
	"github.com/bnema/thinkday/internal/ports"
	_ "modernc.org/sqlite"
)

const (
	driverName = "sqlite"
	dbDirMode  = 0o700

	createTableSQL = `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	selectSQL = `SELECT value FROM kv WHERE key = ?`
	upsertSQL = `
	INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

// Slot stores one named value as a row of a local SQLite key-value table.
type Slot struct {
	db  *sql.DB
	key string
}

var _ ports.StateSlot = (*Slot)(nil)

func Open(path, key string) (*Slot, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errors.New("slot key is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), dbDirMode); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTableSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &Slot{db: db, key: key}, nil
}

func (s *Slot) Read(ctx context.Context) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, selectSQL, s.key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotEmpty
		}
		return nil, fmt.Errorf("read slot %q: %w", s.key, err)
	}
	return value, nil
}

func (s *Slot) Write(ctx context.Context, data []byte) error {
	if _, err := s.db.ExecContext(ctx, upsertSQL, s.key, data); err != nil {
		return fmt.Errorf("write slot %q: %w", s.key, err)
	}
	return nil
}

func (s *Slot) Close() error {
	return s.db.Close()
}
