package watch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ms(t time.Time) int64 { return t.UnixMilli() }

func TestFormatPlate(t *testing.T) {
	assert.Equal(t, "KA 01 MM 7788", FormatPlate("ka01mm7788"))
	assert.Equal(t, "MH 12 CD 2020", FormatPlate("MH-12-CD-2020"))
	assert.Equal(t, "ABC123", FormatPlate("abc 123"))
}

func TestFilter(t *testing.T) {
	list := []Alert{
		{ID: "1", Plate: "KA01MM7788", Status: "sent"},
		{ID: "2", Plate: "MH12CD2020", Status: "resolved"},
		{ID: "3", Plate: "KA01XY9090", Status: "resolved"},
	}

	assert.Len(t, Filter(list, "", "all"), 3)
	assert.Len(t, Filter(list, "", ""), 3)

	byPlate := Filter(list, "ka 01", "all")
	assert.Len(t, byPlate, 2)

	byStatus := Filter(list, "", "resolved")
	assert.Len(t, byStatus, 2)

	both := Filter(list, "KA01", "resolved")
	assert.Len(t, both, 1)
	assert.Equal(t, "3", both[0].ID)

	assert.Empty(t, Filter(list, "TN", "all"))
}

func TestSortCreatedDesc(t *testing.T) {
	now := time.Now()

	list := []Alert{
		{ID: "old", CreatedAt: ms(now.Add(-10 * time.Minute))},
		{ID: "new", CreatedAt: ms(now)},
		{ID: "mid", CreatedAt: ms(now.Add(-5 * time.Minute))},
	}

	sorted := SortCreatedDesc(list)

	assert.Equal(t, []string{"new", "mid", "old"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	assert.Equal(t, "old", list[0].ID, "input must not be reordered in place")
}

func TestComputeKPIs(t *testing.T) {
	now := time.Now()

	list := []Alert{
		{
			ID:          "1",
			Status:      "resolved",
			CreatedAt:   ms(now.Add(-10 * time.Minute)),
			RespondedAt: ms(now.Add(-8 * time.Minute)), // 2 min latency
		},
		{
			ID:          "2",
			Status:      "responded",
			CreatedAt:   ms(now.Add(-10 * time.Minute)),
			RespondedAt: ms(now.Add(-6 * time.Minute)), // 4 min latency
		},
		{ID: "3", Status: "sent", CreatedAt: ms(now)},
	}

	kpis := ComputeKPIs(list)

	assert.Equal(t, 3, kpis.Total)
	assert.Equal(t, 1, kpis.Resolved)
	assert.Equal(t, 3, kpis.AvgResponseMinutes)
}

func TestComputeKPIsNoResponses(t *testing.T) {
	kpis := ComputeKPIs([]Alert{{ID: "1", Status: "sent", CreatedAt: ms(time.Now())}})

	assert.Equal(t, 1, kpis.Total)
	assert.Equal(t, 0, kpis.Resolved)
	assert.Equal(t, 0, kpis.AvgResponseMinutes)
}

func TestComputeKPIsEmpty(t *testing.T) {
	assert.Equal(t, KPIs{}, ComputeKPIs(nil))
}

func TestBadgeWindows(t *testing.T) {
	created := time.Now()
	high := Alert{ID: "1", Urgency: "High", CreatedAt: ms(created)}
	normal := Alert{ID: "2", Urgency: "Normal", CreatedAt: ms(created)}

	assert.True(t, IsNew(created, high))
	assert.True(t, ShouldBlink(created, high))

	assert.True(t, IsNew(created.Add(59*time.Second), high))
	assert.False(t, IsNew(created.Add(61*time.Second), high))

	assert.True(t, ShouldBlink(created.Add(19*time.Second), high))
	assert.False(t, ShouldBlink(created.Add(21*time.Second), high))

	// Normal urgency never blinks, even while new.
	assert.True(t, IsNew(created, normal))
	assert.False(t, ShouldBlink(created, normal))
}

func TestMinutesSince(t *testing.T) {
	now := time.Now()

	assert.Equal(t, 0, MinutesSince(now, ms(now)))
	assert.Equal(t, 5, MinutesSince(now, ms(now.Add(-5*time.Minute))))
	assert.Equal(t, 0, MinutesSince(now, ms(now.Add(time.Minute))), "future timestamps clamp to zero")
}
