package activity

import (
	"context"
	"time"

	"virtual-pet/internal/domain/pets"
)

type Repository interface {
	Create(ctx context.Context, e Entry) error
	List(ctx context.Context, filter ListFilter) ([]Entry, error)
}

type ListFilter struct {
	Actions []pets.Action
	From    *time.Time
	To      *time.Time
	Limit   int
}
