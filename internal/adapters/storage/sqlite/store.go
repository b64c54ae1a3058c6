package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"virtual-pet/internal/adapters/storage/sqlrow"
	"virtual-pet/internal/domain/pets"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS pet_snapshots (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	name TEXT,
	age INTEGER,
	hunger INTEGER,
	fitness INTEGER,
	children TEXT,
	updated_at INTEGER NOT NULL
);
`

// Store persiste el snapshot en SQLite (una sola fila, id = 1).
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open abre el archivo SQLite y crea el schema si falta.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
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
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close libera la conexión.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load devuelve el snapshot guardado o pets.ErrNoSnapshot.
func (s *Store) Load(ctx context.Context) (pets.Snapshot, error) {
	if s == nil || s.sqlDB == nil {
		return pets.Snapshot{}, fmt.Errorf("storage is not configured")
	}

	var cols sqlrow.Columns
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT name, age, hunger, fitness, children
FROM pet_snapshots
WHERE id = 1
`).Scan(cols.Dest()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Snapshot{}, pets.ErrNoSnapshot
		}
		return pets.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	return cols.Snapshot()
}

// Save hace upsert de la única fila.
func (s *Store) Save(ctx context.Context, snap pets.Snapshot) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	cols, err := sqlrow.FromSnapshot(snap)
	if err != nil {
		return err
	}

	args := append(cols.Args(), s.now().UTC().UnixMilli())
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO pet_snapshots (id, name, age, hunger, fitness, children, updated_at)
VALUES (1, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	age = excluded.age,
	hunger = excluded.hunger,
	fitness = excluded.fitness,
	children = excluded.children,
	updated_at = excluded.updated_at
`, args...)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
