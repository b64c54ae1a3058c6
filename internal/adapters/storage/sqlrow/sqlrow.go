// Package sqlrow traduce pets.Snapshot a columnas nulables y viceversa.
// Lo comparten los adapters SQL (postgres, sqlite): una columna NULL es un
// campo ausente y toma su default al reconstruir la mascota.
package sqlrow

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"virtual-pet/internal/domain/pets"
)

type Columns struct {
	Name     sql.NullString
	Age      sql.NullInt64
	Hunger   sql.NullInt64
	Fitness  sql.NullInt64
	Children sql.NullString // JSON array de strings
}

func FromSnapshot(s pets.Snapshot) (Columns, error) {
	var c Columns
	if s.Name != nil {
		c.Name = sql.NullString{String: *s.Name, Valid: true}
	}
	c.Age = nullInt(s.Age)
	c.Hunger = nullInt(s.Hunger)
	c.Fitness = nullInt(s.Fitness)

	if s.Children != nil {
		b, err := json.Marshal(s.Children)
		if err != nil {
			return Columns{}, fmt.Errorf("encode children: %w", err)
		}
		c.Children = sql.NullString{String: string(b), Valid: true}
	}
	return c, nil
}

// Dest devuelve los punteros para row.Scan en el orden name, age, hunger, fitness, children.
func (c *Columns) Dest() []any {
	return []any{&c.Name, &c.Age, &c.Hunger, &c.Fitness, &c.Children}
}

// Args devuelve los valores en el mismo orden que Dest.
func (c Columns) Args() []any {
	return []any{c.Name, c.Age, c.Hunger, c.Fitness, c.Children}
}

func (c Columns) Snapshot() (pets.Snapshot, error) {
	var s pets.Snapshot
	if c.Name.Valid {
		name := c.Name.String
		s.Name = &name
	}
	s.Age = intPtr(c.Age)
	s.Hunger = intPtr(c.Hunger)
	s.Fitness = intPtr(c.Fitness)

	if c.Children.Valid && c.Children.String != "" {
		if err := json.Unmarshal([]byte(c.Children.String), &s.Children); err != nil {
			return pets.Snapshot{}, fmt.Errorf("decode children: %w", err)
		}
	}
	return s, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
