package shared

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;index"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

// ResetIdentity clears store-owned fields so a client cannot choose them on create
func (e *BaseEntity) ResetIdentity() {
	e.ID = uuid.Nil
	e.CreatedAt = time.Time{}
	e.UpdatedAt = time.Time{}
}

// BeforeCreate assigns an ID when the record does not carry one yet
func (e *BaseEntity) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
