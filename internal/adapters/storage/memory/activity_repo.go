package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"virtual-pet/internal/domain/activity"
)

const DefaultActivityCapacity = 1000

type activityRepo struct {
	mu       sync.RWMutex
	entries  []activity.Entry // orden de inserción (más viejo primero)
	capacity int
}

// NewActivityRepo guarda hasta capacity entradas; al llenarse descarta las más viejas.
func NewActivityRepo(capacity int) activity.Repository {
	if capacity <= 0 {
		capacity = DefaultActivityCapacity
	}
	return &activityRepo{
		entries:  make([]activity.Entry, 0, min(capacity, 64)),
		capacity: capacity,
	}
}

func (r *activityRepo) Create(ctx context.Context, e activity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("entry id required")
	}

	if len(r.entries) >= r.capacity {
		drop := len(r.entries) - r.capacity + 1
		r.entries = slices.Delete(r.entries, 0, drop)
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *activityRepo) List(ctx context.Context, filter activity.ListFilter) ([]activity.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = activity.DefaultLimit
	}

	out := make([]activity.Entry, 0)

	// Recorremos desde el final: más reciente primero.
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := r.entries[i]

		if len(filter.Actions) > 0 && !slices.Contains(filter.Actions, e.Action) {
			continue
		}
		if filter.From != nil && e.OccurredAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.OccurredAt.After(*filter.To) {
			continue
		}

		out = append(out, e)
	}

	return out, nil
}
