package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Alignment links two scorecard items. An item referenced on either side is
// considered aligned.
type Alignment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SourceItemID uuid.UUID `gorm:"type:uuid;not null"`
	TargetItemID uuid.UUID `gorm:"type:uuid;not null"`
	Strength     string    `gorm:"type:text;not null;default:'moderate'"`
	Rationale    *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (Alignment) TableName() string {
	return "alignments"
}

func (a *Alignment) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
