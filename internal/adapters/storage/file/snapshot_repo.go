package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"virtual-pet/internal/domain/pets"
)

// SnapshotRepo guarda el snapshot como JSON indentado en un archivo.
type SnapshotRepo struct {
	path string
}

func NewSnapshotRepo(path string) (*SnapshotRepo, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("snapshot file path required")
	}
	return &SnapshotRepo{path: filepath.Clean(path)}, nil
}

func (r *SnapshotRepo) Path() string { return r.path }

// Load devuelve pets.ErrNoSnapshot si el archivo no existe.
// Un JSON roto se reporta como error; el servicio decide caer al default.
func (r *SnapshotRepo) Load(ctx context.Context) (pets.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return pets.Snapshot{}, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return pets.Snapshot{}, pets.ErrNoSnapshot
		}
		return pets.Snapshot{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	var s pets.Snapshot
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return pets.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

// Save escribe a un temporal en el mismo directorio y lo renombra:
// el archivo visible siempre es un snapshot completo.
func (r *SnapshotRepo) Save(ctx context.Context, s pets.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op si el rename ya se hizo
		_ = os.Remove(tmpName)
	}()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
