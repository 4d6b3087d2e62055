// Package state persists durable radio settings in sqlite and holds
// session-only data in memory.
package state

import (
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "streamradio"
	dbFileName   = "streamradio.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the durable settings store. Saves are debounced: the
// engine persists on every tick, the database sees one write per burst.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]string
}

// Open opens (or creates) the settings database in the XDG data dir.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the settings database at an explicit path.
func OpenPath(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// Close flushes any pending save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		if err := saveValues(m.db, pending); err != nil {
			slog.Warn("flush settings on close", "err", err)
		}
	}

	return m.db.Close()
}

// SaveSettings schedules the given keys for a debounced upsert. Keys not
// present in the map keep their stored values.
func (m *Manager) SaveSettings(values map[string]string) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	if m.pending == nil {
		m.pending = make(map[string]string, len(values))
	}
	for k, v := range values {
		m.pending[k] = v
	}

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(saveDebounce, m.flush)
}

func (m *Manager) flush() {
	m.saveMu.Lock()
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending == nil {
		return
	}
	if err := saveValues(m.db, pending); err != nil {
		slog.Warn("save settings", "err", err)
	}
}

// LoadSettings returns all stored settings. A read failure yields an
// empty map; the engine substitutes defaults for anything missing.
func (m *Manager) LoadSettings() map[string]string {
	values := make(map[string]string)

	// Unflushed writes win over what the database holds.
	m.saveMu.Lock()
	pending := m.pending
	m.saveMu.Unlock()

	rows, err := m.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		slog.Warn("load settings", "err", err)
		return values
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			slog.Warn("load settings", "err", err)
			return map[string]string{}
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		slog.Warn("load settings", "err", err)
		return map[string]string{}
	}

	for k, v := range pending {
		values[k] = v
	}
	return values
}

func saveValues(db *sql.DB, values map[string]string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for k, v := range values {
		if _, err := stmt.Exec(k, v); err != nil {
			return err
		}
	}
	return tx.Commit()
}
