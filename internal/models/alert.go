package models

import (
	"time"
)

// Alert is a single parking-violation notification from a guard to a
// vehicle owner. OwnerResponse and RespondedAt are set together when the
// owner replies; both stay null until then.
type Alert struct {
	BaseModel

	Plate    string `gorm:"not null;index" json:"plate"`
	Property string `gorm:"not null" json:"property"`
	Zone     string `gorm:"not null" json:"zone"`
	Reason   string `gorm:"not null" json:"reason"`
	Urgency  string `gorm:"not null;default:Normal" json:"urgency"` // "Normal" or "High"
	Note     string `json:"note"`

	Status string `gorm:"not null;default:sent;index" json:"status"` // "sent", "viewed", "responded", "escalated", "resolved"

	OwnerResponse *string    `json:"ownerResponse"`
	RespondedAt   *time.Time `json:"respondedAt"`

	// Revision increments on every mutation. Callers may send it back on
	// PATCH to detect lost updates.
	Revision uint `gorm:"not null;default:1" json:"revision"`
}
