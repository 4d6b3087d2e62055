package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	m, err := OpenPath(path)
	require.NoError(t, err)
	return m, path
}

func TestManager_SaveLoadRoundTrip(t *testing.T) {
	m, path := openTestManager(t)

	m.SaveSettings(map[string]string{"yapMode": "true", "streamIndex": "3"})

	// Pending writes are visible before the debounce flushes.
	got := m.LoadSettings()
	require.Equal(t, "true", got["yapMode"])
	require.Equal(t, "3", got["streamIndex"])

	// Close flushes; a fresh manager reads from disk.
	require.NoError(t, m.Close())

	m2, err := OpenPath(path)
	require.NoError(t, err)
	defer m2.Close()

	got = m2.LoadSettings()
	require.Equal(t, "true", got["yapMode"])
	require.Equal(t, "3", got["streamIndex"])
}

func TestManager_UpsertKeepsOtherKeys(t *testing.T) {
	m, path := openTestManager(t)
	m.SaveSettings(map[string]string{"a": "1", "b": "2"})
	require.NoError(t, m.Close())

	m2, err := OpenPath(path)
	require.NoError(t, err)
	m2.SaveSettings(map[string]string{"b": "3"})
	require.NoError(t, m2.Close())

	m3, err := OpenPath(path)
	require.NoError(t, err)
	defer m3.Close()

	got := m3.LoadSettings()
	require.Equal(t, "1", got["a"])
	require.Equal(t, "3", got["b"])
}

func TestManager_EmptyDatabase(t *testing.T) {
	m, _ := openTestManager(t)
	defer m.Close()

	got := m.LoadSettings()
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestSessionStore(t *testing.T) {
	s := NewSessionStore()
	require.Empty(t, s.LoadSession())

	s.SaveSession(map[string]string{"history": "[]"})
	s.SaveSession(map[string]string{"history": `[{"v":1}]`})

	got := s.LoadSession()
	require.Equal(t, `[{"v":1}]`, got["history"])

	// The returned map is a copy; mutating it must not leak back.
	got["history"] = "tampered"
	require.Equal(t, `[{"v":1}]`, s.LoadSession()["history"])
}
