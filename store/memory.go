package store

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"grant_ledger/sdk"
)

// Memory is a sorted in-memory key/value store. With a filename set, every committed
// write is mirrored into a JSON snapshot so a later process can LoadFromFile.
type Memory struct {
	mu       sync.RWMutex
	db       map[string]string
	filename string
}

// NewMemory returns an empty store. An empty filename disables snapshots.
func NewMemory(filename string) *Memory {
	return &Memory{
		db:       make(map[string]string),
		filename: filename,
	}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.db[key]
	return val, ok, nil
}

func (m *Memory) Set(key, value string) error {
	return m.Apply([]sdk.Op{{Key: key, Value: value}})
}

func (m *Memory) Delete(key string) error {
	return m.Apply([]sdk.Op{{Key: key, Delete: true}})
}

// Iterate walks a snapshot of the matching keys, so fn may call back into the store.
func (m *Memory) Iterate(prefix string, fn func(key, value string) error) error {
	m.mu.RLock()
	keys := make([]string, 0)
	vals := make(map[string]string)
	for k, v := range m.db {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
			vals[k] = v
		}
	}
	m.mu.RUnlock()

	sort.Strings(keys)
	for _, k := range keys {
		if err := fn(k, vals[k]); err != nil {
			return err
		}
	}
	return nil
}

// Apply writes all ops under one lock. When the snapshot cannot be written the
// in-memory map is rolled back to its previous content.
func (m *Memory) Apply(ops []sdk.Op) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	type prev struct {
		val string
		ok  bool
	}
	undo := make(map[string]prev, len(ops))
	for _, op := range ops {
		if _, seen := undo[op.Key]; !seen {
			v, ok := m.db[op.Key]
			undo[op.Key] = prev{val: v, ok: ok}
		}
		if op.Delete {
			delete(m.db, op.Key)
		} else {
			m.db[op.Key] = op.Value
		}
	}
	if err := m.saveToFile(); err != nil {
		for k, p := range undo {
			if p.ok {
				m.db[k] = p.val
			} else {
				delete(m.db, k)
			}
		}
		return err
	}
	return nil
}

// Len reports the number of stored keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.db)
}

func (m *Memory) Close() error { return nil }

// saveToFile writes the full map as hex encoded key/value pairs, keys are binary.
func (m *Memory) saveToFile() error {
	if m.filename == "" {
		return nil
	}
	out := make(map[string]string, len(m.db))
	for k, v := range m.db {
		out[hex.EncodeToString([]byte(k))] = hex.EncodeToString([]byte(v))
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp := m.filename + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, m.filename); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// LoadFromFile replaces the content with the snapshot on disk. A missing file
// leaves the store empty.
func (m *Memory) LoadFromFile() error {
	if m.filename == "" {
		return nil
	}
	data, err := os.ReadFile(m.filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read snapshot: %w", err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	db := make(map[string]string, len(raw))
	for hk, hv := range raw {
		k, err := hex.DecodeString(hk)
		if err != nil {
			return fmt.Errorf("decode snapshot key %q: %w", hk, err)
		}
		v, err := hex.DecodeString(hv)
		if err != nil {
			return fmt.Errorf("decode snapshot value for %q: %w", hk, err)
		}
		db[string(k)] = string(v)
	}
	m.mu.Lock()
	m.db = db
	m.mu.Unlock()
	return nil
}
