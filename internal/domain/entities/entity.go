package entities

import "time"

// Meta carries the identity and timestamps shared by every persisted entity.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Entity is implemented by value types managed by the generic stores.
// WithMeta returns a copy of the entity carrying m.
type Entity[T any] interface {
	GetMeta() Meta
	WithMeta(m Meta) T
}
