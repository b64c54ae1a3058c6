package memory

import (
	"context"
	"sync"

	"virtual-pet/internal/domain/pets"
)

// snapshotRepo guarda el snapshot en memoria: sirve para dev y tests,
// se pierde al cerrar el proceso.
type snapshotRepo struct {
	mu   sync.RWMutex
	snap *pets.Snapshot
}

func NewSnapshotRepo() pets.Repository {
	return &snapshotRepo{}
}

func (r *snapshotRepo) Load(ctx context.Context) (pets.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.snap == nil {
		return pets.Snapshot{}, pets.ErrNoSnapshot
	}
	return copySnapshot(*r.snap), nil
}

func (r *snapshotRepo) Save(ctx context.Context, s pets.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := copySnapshot(s)
	r.snap = &cp
	return nil
}

// copySnapshot evita compartir punteros/slices con quien llama.
func copySnapshot(s pets.Snapshot) pets.Snapshot {
	return pets.SnapshotOf(s.Pet())
}
