package entity

import (
	"time"

	"github.com/google/uuid"
)

// Venture represents a venture for data transfer between layers.
type Venture struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Industry  *string   `json:"industry,omitempty"`
	Stage     *string   `json:"stage,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
