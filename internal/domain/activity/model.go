package activity

import (
	"time"

	"virtual-pet/internal/domain/pets"
)

// Entry registra una acción del shell y cómo quedó la mascota justo después.
type Entry struct {
	ID     string
	Action pets.Action

	OccurredAt time.Time

	PetName string
	Age     int
	Hunger  int
	Fitness int
	Alive   bool
}
