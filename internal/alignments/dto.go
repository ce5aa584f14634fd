package alignments

import (
	"time"

	"github.com/mikepica/Scorecard-app-sub001/pkg/db/models"
)

// Item is the public shape of a scorecard item. Empty fields are omitted.
type Item struct {
	ID          string     `json:"id"`
	Type        string     `json:"type,omitempty"`
	Name        string     `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	ParentID    *string    `json:"parentId,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func itemFromModel(m models.ScorecardItem) Item {
	item := Item{
		ID:          m.ID.String(),
		Type:        m.Type,
		Name:        m.Name,
		Description: m.Description,
	}
	if m.ParentID != nil {
		parent := m.ParentID.String()
		item.ParentID = &parent
	}
	if !m.UpdatedAt.IsZero() {
		updated := m.UpdatedAt.UTC()
		item.UpdatedAt = &updated
	}
	return item
}
