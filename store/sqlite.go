package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"grant_ledger/sdk"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   BLOB PRIMARY KEY,
	value BLOB NOT NULL
)`

// SQLite persists ledger state in a single key/value table.
type SQLite struct {
	sqlDB *sql.DB
}

// OpenSQLite opens (and creates when needed) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLite{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *SQLite) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *SQLite) Get(key string) (string, bool, error) {
	var value []byte
	err := s.sqlDB.QueryRowContext(context.Background(), `SELECT value FROM kv WHERE key = ?`, []byte(key)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %x: %w", key, err)
	}
	return string(value), true, nil
}

func (s *SQLite) Set(key, value string) error {
	return s.Apply([]sdk.Op{{Key: key, Value: value}})
}

func (s *SQLite) Delete(key string) error {
	return s.Apply([]sdk.Op{{Key: key, Delete: true}})
}

// Iterate reads the whole prefix range before calling fn, so fn may write.
func (s *SQLite) Iterate(prefix string, fn func(key, value string) error) error {
	query := `SELECT key, value FROM kv WHERE key >= ? ORDER BY key`
	args := []any{[]byte(prefix)}
	if end, ok := prefixEnd([]byte(prefix)); ok {
		query = `SELECT key, value FROM kv WHERE key >= ? AND key < ? ORDER BY key`
		args = append(args, end)
	}
	rows, err := s.sqlDB.QueryContext(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("iterate %x: %w", prefix, err)
	}

	type pair struct{ k, v string }
	var pairs []pair
	for rows.Next() {
		var k, v []byte
		if err := rows.Scan(&k, &v); err != nil {
			_ = rows.Close()
			return fmt.Errorf("scan kv row: %w", err)
		}
		pairs = append(pairs, pair{k: string(k), v: string(v)})
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return fmt.Errorf("iterate %x: %w", prefix, err)
	}
	if err := rows.Close(); err != nil {
		return err
	}

	for _, p := range pairs {
		if err := fn(p.k, p.v); err != nil {
			return err
		}
	}
	return nil
}

// Apply writes the batch inside one SQL transaction.
func (s *SQLite) Apply(ops []sdk.Op) error {
	ctx := context.Background()
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	for _, op := range ops {
		if op.Delete {
			_, err = tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, []byte(op.Key))
		} else {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO kv (key, value) VALUES (?, ?)
				 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
				[]byte(op.Key), []byte(op.Value))
		}
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("write %x: %w", op.Key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

// prefixEnd returns the smallest key greater than every key starting with prefix.
// Prefixes made only of 0xff bytes (or empty) have no upper bound.
func prefixEnd(prefix []byte) ([]byte, bool) {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1], true
		}
	}
	return nil, false
}
