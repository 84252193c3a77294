// Package views holds the non-visual logic of the two parkguard portals:
// what the guard and owner screens do when a button is pressed, detached
// from any rendering concern.
package views

import (
	"context"
	"fmt"
	"time"

	"github.com/parkguard-dev/parkguard/internal/alerts"
	"github.com/parkguard-dev/parkguard/internal/watch"
)

// GuardView drives the guard portal: reporting new alerts and moving
// them through viewed/resolved/escalated. Confirmed mutations are merged
// into the cache so the guard sees them before the next poll.
type GuardView struct {
	client *watch.Client
	cache  *watch.Cache
}

func NewGuardView(client *watch.Client, cache *watch.Cache) *GuardView {
	return &GuardView{client: client, cache: cache}
}

// Report creates a new alert from guard input.
func (v *GuardView) Report(ctx context.Context, input watch.CreateAlert) (watch.Alert, error) {
	alert, err := v.client.Create(ctx, input)

	if err != nil {
		return watch.Alert{}, err
	}

	v.cache.Merge(alert, time.Now())

	return alert, nil
}

// MarkViewed advances a sent alert to viewed. Alerts past sent are left
// alone, matching how the portal only offers the action once.
func (v *GuardView) MarkViewed(ctx context.Context, id string) (watch.Alert, error) {
	current, ok := v.cache.Snapshot().Find(id)

	if ok && current.Status != alerts.StatusSent {
		return current, nil
	}

	return v.setStatus(ctx, id, alerts.StatusViewed)
}

// Resolve marks an alert resolved.
func (v *GuardView) Resolve(ctx context.Context, id string) (watch.Alert, error) {
	return v.setStatus(ctx, id, alerts.StatusResolved)
}

// Escalate marks an alert escalated, for drivers that are not responding.
func (v *GuardView) Escalate(ctx context.Context, id string) (watch.Alert, error) {
	return v.setStatus(ctx, id, alerts.StatusEscalated)
}

func (v *GuardView) setStatus(ctx context.Context, id, status string) (watch.Alert, error) {
	alert, err := v.client.Update(ctx, id, watch.Patch{Status: &status})

	if err != nil {
		return watch.Alert{}, fmt.Errorf("failed to mark alert %s: %w", status, err)
	}

	v.cache.Merge(alert, time.Now())

	return alert, nil
}
