package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScorecardItem is a node of the scorecard hierarchy (pillar, category, goal,
// program). Alignments link items across hierarchies.
type ScorecardItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type        string     `gorm:"type:text;not null"`
	Name        string     `gorm:"type:text;not null"`
	Description *string    `gorm:"type:text"`
	ParentID    *uuid.UUID `gorm:"type:uuid"`
	ArchivedAt  *time.Time `gorm:"column:archived_at"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

func (ScorecardItem) TableName() string {
	return "scorecard_items"
}

// BeforeCreate assigns an id client-side so inserts work on every driver.
func (i *ScorecardItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
