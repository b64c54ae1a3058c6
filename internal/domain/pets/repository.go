package pets

import (
	"context"
	"errors"
)

// ErrNoSnapshot lo devuelven los repos cuando todavía no se guardó nada.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Repository guarda un único snapshot: el de la mascota de la sesión.
type Repository interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, s Snapshot) error
}
