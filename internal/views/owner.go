package views

import (
	"context"
	"time"

	"github.com/parkguard-dev/parkguard/internal/alerts"
	"github.com/parkguard-dev/parkguard/internal/watch"
)

// OwnerSummary is the owner portal's header: how many alerts exist for
// the plate, how old the latest is, and its status. LatestStatus is
// empty when nothing matched.
type OwnerSummary struct {
	Found              int
	MinutesSinceLatest int
	LatestStatus       string
}

// OwnerView drives the owner portal: looking up alerts for a plate and
// sending a response back to the guard.
type OwnerView struct {
	client *watch.Client
	cache  *watch.Cache
}

func NewOwnerView(client *watch.Client, cache *watch.Cache) *OwnerView {
	return &OwnerView{client: client, cache: cache}
}

// FindByPlate returns every alert whose plate matches exactly after
// normalization, newest first, along with the summary KPIs.
func (v *OwnerView) FindByPlate(plate string, now time.Time) ([]watch.Alert, OwnerSummary) {
	target := alerts.NormalizePlate(plate)

	var matches []watch.Alert

	if target != "" {
		for _, a := range v.cache.Snapshot().Alerts {
			if alerts.NormalizePlate(a.Plate) == target {
				matches = append(matches, a)
			}
		}
	}

	matches = watch.SortCreatedDesc(matches)

	summary := OwnerSummary{Found: len(matches)}

	if len(matches) > 0 {
		summary.MinutesSinceLatest = watch.MinutesSince(now, matches[0].CreatedAt)
		summary.LatestStatus = matches[0].Status
	}

	return matches, summary
}

// SendResponse records the owner's reply on an alert. The portal always
// sends the explicit responded status alongside the message.
func (v *OwnerView) SendResponse(ctx context.Context, id, message string) (watch.Alert, error) {
	status := alerts.StatusResponded
	respondedAt := time.Now()

	alert, err := v.client.Update(ctx, id, watch.Patch{
		Status:        &status,
		OwnerResponse: &message,
		RespondedAt:   &respondedAt,
	})

	if err != nil {
		return watch.Alert{}, err
	}

	v.cache.Merge(alert, time.Now())

	return alert, nil
}
