package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"virtual-pet/internal/adapters/storage/sqlrow"
	"virtual-pet/internal/domain/pets"
)

type SnapshotRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db, now: time.Now}
}

func (r *SnapshotRepo) Load(ctx context.Context) (pets.Snapshot, error) {
	var cols sqlrow.Columns
	err := r.db.QueryRowContext(ctx, `
		SELECT name, age, hunger, fitness, children::text
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

func (r *SnapshotRepo) Save(ctx context.Context, s pets.Snapshot) error {
	cols, err := sqlrow.FromSnapshot(s)
	if err != nil {
		return err
	}

	args := append(cols.Args(), r.now().UTC())
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pet_snapshots (id, name, age, hunger, fitness, children, updated_at)
		VALUES (1, $1, $2, $3, $4, $5::jsonb, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			hunger = EXCLUDED.hunger,
			fitness = EXCLUDED.fitness,
			children = EXCLUDED.children,
			updated_at = EXCLUDED.updated_at
	`, args...)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
