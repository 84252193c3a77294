package watch

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/parkguard-dev/parkguard/internal/alerts"
)

const (
	// NewAlertWindow is how long an alert carries the NEW badge.
	NewAlertWindow = 60 * time.Second
	// BlinkWindow is how long a high-urgency alert blinks after creation.
	BlinkWindow = 20 * time.Second
)

var plateDisplayPattern = regexp.MustCompile(`^([A-Z]{2})(\d{2})([A-Z]{1,2})(\d{1,4}).*$`)

// FormatPlate groups a normalized plate for display, e.g. "KA01MM7788"
// becomes "KA 01 MM 7788". Plates that don't fit the pattern are shown
// normalized but ungrouped.
func FormatPlate(plate string) string {
	p := alerts.NormalizePlate(plate)
	return strings.TrimSpace(plateDisplayPattern.ReplaceAllString(p, "$1 $2 $3 $4"))
}

// Filter keeps alerts whose normalized plate contains the normalized
// query and whose status matches exactly. An empty query matches every
// plate; status "all" or "" matches every status.
func Filter(list []Alert, plateQuery, status string) []Alert {
	query := alerts.NormalizePlate(plateQuery)

	var out []Alert

	for _, a := range list {
		if query != "" && !strings.Contains(alerts.NormalizePlate(a.Plate), query) {
			continue
		}

		if status != "" && status != "all" && a.Status != status {
			continue
		}

		out = append(out, a)
	}

	return out
}

// SortCreatedDesc returns a copy sorted newest first.
func SortCreatedDesc(list []Alert) []Alert {
	out := make([]Alert, len(list))
	copy(out, list)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})

	return out
}

// KPIs are the guard dashboard counters.
type KPIs struct {
	Total              int
	Resolved           int
	AvgResponseMinutes int
}

// ComputeKPIs derives the dashboard counters from a snapshot. The average
// response time covers alerts that have both a creation and a response
// timestamp; it is 0 when none qualify.
func ComputeKPIs(list []Alert) KPIs {
	kpis := KPIs{Total: len(list)}

	var sum float64
	var responded int

	for _, a := range list {
		if a.Status == "resolved" {
			kpis.Resolved++
		}

		if a.RespondedAt > 0 && a.CreatedAt > 0 {
			sum += float64(a.RespondedAt-a.CreatedAt) / 60000
			responded++
		}
	}

	if responded > 0 {
		kpis.AvgResponseMinutes = int(math.Round(sum / float64(responded)))
	}

	return kpis
}

// IsNew reports whether the alert was created within the last minute.
func IsNew(now time.Time, a Alert) bool {
	return now.UnixMilli()-a.CreatedAt <= NewAlertWindow.Milliseconds()
}

// ShouldBlink reports whether the alert should blink: high urgency and
// created within the last twenty seconds.
func ShouldBlink(now time.Time, a Alert) bool {
	return a.Urgency == "High" && now.UnixMilli()-a.CreatedAt <= BlinkWindow.Milliseconds()
}

// MinutesSince returns whole minutes between an epoch-millis timestamp
// and now, never negative.
func MinutesSince(now time.Time, ms int64) int {
	mins := int(math.Round(float64(now.UnixMilli()-ms) / 60000))

	if mins < 0 {
		return 0
	}

	return mins
}
