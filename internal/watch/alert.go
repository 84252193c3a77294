// Package watch is the portal side of parkguard: a polling HTTP client,
// an immutable in-memory snapshot of the alert collection and the pure
// query functions the guard and owner portals render from.
package watch

import (
	"strconv"
	"time"
)

// Alert is the normalized client-side shape of an alert. The identifier
// is opaque and timestamps are epoch milliseconds so render code can do
// plain arithmetic on them. Zero RespondedAt means no response yet.
type Alert struct {
	ID            string
	Plate         string
	Property      string
	Zone          string
	Reason        string
	Urgency       string
	Note          string
	Status        string
	OwnerResponse string
	CreatedAt     int64
	UpdatedAt     int64
	RespondedAt   int64
	Revision      uint
}

type wireAlert struct {
	ID            uint       `json:"id"`
	Plate         string     `json:"plate"`
	Property      string     `json:"property"`
	Zone          string     `json:"zone"`
	Reason        string     `json:"reason"`
	Urgency       string     `json:"urgency"`
	Note          string     `json:"note"`
	Status        string     `json:"status"`
	OwnerResponse *string    `json:"ownerResponse"`
	RespondedAt   *time.Time `json:"respondedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Revision      uint       `json:"revision"`
}

func fromWire(w wireAlert) Alert {
	alert := Alert{
		ID:        strconv.FormatUint(uint64(w.ID), 10),
		Plate:     w.Plate,
		Property:  w.Property,
		Zone:      w.Zone,
		Reason:    w.Reason,
		Urgency:   w.Urgency,
		Note:      w.Note,
		Status:    w.Status,
		CreatedAt: w.CreatedAt.UnixMilli(),
		UpdatedAt: w.UpdatedAt.UnixMilli(),
		Revision:  w.Revision,
	}

	if alert.Urgency == "" {
		alert.Urgency = "Normal"
	}

	if alert.Status == "" {
		alert.Status = "sent"
	}

	if w.OwnerResponse != nil {
		alert.OwnerResponse = *w.OwnerResponse
	}

	if w.RespondedAt != nil {
		alert.RespondedAt = w.RespondedAt.UnixMilli()
	}

	return alert
}
