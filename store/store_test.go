package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grant_ledger/config"
	"grant_ledger/sdk"
	"grant_ledger/store"
)

// backends returns a fresh instance of every store for shared behaviour tests.
func backends(t *testing.T) map[string]store.Store {
	t.Helper()
	dir := t.TempDir()
	sq, err := store.OpenSQLite(filepath.Join(dir, "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]store.Store{
		"memory":   store.NewMemory(""),
		"snapshot": store.NewMemory(filepath.Join(dir, "state.json")),
		"sqlite":   sq,
	}
}

func collect(t *testing.T, st sdk.State, prefix string) []string {
	t.Helper()
	var out []string
	require.NoError(t, st.Iterate(prefix, func(k, v string) error {
		out = append(out, k+"="+v)
		return nil
	}))
	return out
}

func TestStoreGetSetDelete(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := st.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, st.Set("k", "v1"))
			require.NoError(t, st.Set("k", "v2"))
			v, ok, err := st.Get("k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "v2", v)

			require.NoError(t, st.Delete("k"))
			_, ok, err = st.Get("k")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStoreIterateBinaryPrefix(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.Apply([]sdk.Op{
				{Key: "\x10\x00\x02", Value: "b"},
				{Key: "\x10\x00\x01", Value: "a"},
				{Key: "\x10\xff\x00", Value: "c"},
				{Key: "\x11\x00", Value: "other"},
				{Key: "\x0f\xff", Value: "before"},
			}))
			assert.Equal(t, []string{"\x10\x00\x01=a", "\x10\x00\x02=b", "\x10\xff\x00=c"}, collect(t, st, "\x10"))
			assert.Equal(t, []string{"\x10\xff\x00=c"}, collect(t, st, "\x10\xff"))
			assert.Len(t, collect(t, st, ""), 5)
		})
	}
}

func TestStoreApplyWithDeletes(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.Set("a", "1"))
			require.NoError(t, st.Apply([]sdk.Op{
				{Key: "a", Delete: true},
				{Key: "b", Value: "2"},
			}))
			assert.Equal(t, []string{"b=2"}, collect(t, st, ""))
		})
	}
}

func TestMemorySnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	m := store.NewMemory(path)
	require.NoError(t, m.Set("\x01admin1", "1"))
	require.NoError(t, m.Set("\x03", "7"))

	reloaded := store.NewMemory(path)
	require.NoError(t, reloaded.LoadFromFile())
	v, ok, err := reloaded.Get("\x01admin1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	assert.Equal(t, 2, reloaded.Len())

	// a missing snapshot is an empty store
	empty := store.NewMemory(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, empty.LoadFromFile())
	assert.Equal(t, 0, empty.Len())
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	first, err := store.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("\x02", "creator"))
	require.NoError(t, first.Close())

	second, err := store.OpenSQLite(path)
	require.NoError(t, err)
	defer second.Close()
	v, ok, err := second.Get("\x02")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "creator", v)

	_, err = store.OpenSQLite("  ")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	st, err := store.Open(config.StoreConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &store.Memory{}, st)

	st, err = store.Open(config.StoreConfig{Driver: config.DriverFile, Path: filepath.Join(dir, "s.json")})
	require.NoError(t, err)
	assert.IsType(t, &store.Memory{}, st)

	st, err = store.Open(config.StoreConfig{Driver: config.DriverSQLite, Path: filepath.Join(dir, "s.db")})
	require.NoError(t, err)
	assert.IsType(t, &store.SQLite{}, st)
	require.NoError(t, st.Close())

	_, err = store.Open(config.StoreConfig{Driver: "redis"})
	assert.Error(t, err)
}
