package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the stable identity shared by all entities. The ID is
// assigned at creation and never changes, so references survive edits.
type Base struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBase() Base {
	now := time.Now()
	return Base{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch records an in-place edit.
func (b *Base) Touch() {
	b.UpdatedAt = time.Now()
}
