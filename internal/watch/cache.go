package watch

import (
	"sync/atomic"
	"time"
)

// Snapshot is one immutable view of the alert collection. Readers hold it
// as long as they like; the cache never mutates a published snapshot.
type Snapshot struct {
	Alerts    []Alert
	FetchedAt time.Time
}

// Find returns the alert with the given id, if present.
func (s *Snapshot) Find(id string) (Alert, bool) {
	for _, a := range s.Alerts {
		if a.ID == id {
			return a, true
		}
	}

	return Alert{}, false
}

// Cache holds the last successfully fetched alert list. Snapshots are
// replaced wholesale with an atomic pointer swap, so derived views never
// observe a half-updated collection.
type Cache struct {
	current atomic.Pointer[Snapshot]
}

func NewCache() *Cache {
	c := &Cache{}
	c.current.Store(&Snapshot{})
	return c
}

// Snapshot returns the current snapshot. Never nil.
func (c *Cache) Snapshot() *Snapshot {
	return c.current.Load()
}

// Replace publishes a fresh copy of the collection, typically after a
// poll.
func (c *Cache) Replace(alerts []Alert, now time.Time) {
	copied := make([]Alert, len(alerts))
	copy(copied, alerts)

	c.current.Store(&Snapshot{Alerts: copied, FetchedAt: now})
}

// Merge publishes a new snapshot with one alert upserted, used to show a
// confirmed create or update without waiting for the next poll. New
// alerts go to the front, matching newest-first ordering.
func (c *Cache) Merge(alert Alert, now time.Time) {
	prev := c.current.Load()

	replaced := false
	alerts := make([]Alert, 0, len(prev.Alerts)+1)

	for _, a := range prev.Alerts {
		if a.ID == alert.ID {
			alerts = append(alerts, alert)
			replaced = true
		} else {
			alerts = append(alerts, a)
		}
	}

	if !replaced {
		alerts = append([]Alert{alert}, alerts...)
	}

	c.current.Store(&Snapshot{Alerts: alerts, FetchedAt: now})
}
