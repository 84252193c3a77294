package views_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parkguard-dev/parkguard/internal/models"
	"github.com/parkguard-dev/parkguard/internal/router"
	"github.com/parkguard-dev/parkguard/internal/views"
	"github.com/parkguard-dev/parkguard/internal/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// setupPortal spins up the full API over an in-memory store and returns
// a client and cache wired against it, the way both portals run.
func setupPortal(t *testing.T) (*watch.Client, *watch.Cache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Alert{}))

	server := httptest.NewServer(router.NewRouter(db))
	t.Cleanup(server.Close)

	return watch.NewClient(server.URL, server.Client()), watch.NewCache()
}

func reportSample(t *testing.T, guard *views.GuardView) watch.Alert {
	t.Helper()

	alert, err := guard.Report(context.Background(), watch.CreateAlert{
		Plate:    "KA 01 MM 7788",
		Property: "Skyline Towers",
		Zone:     "Visitor",
		Reason:   "Double Parking",
		Urgency:  "High",
		Note:     "Blocking the ramp",
	})
	require.NoError(t, err)

	return alert
}

func TestGuardReportAndLifecycle(t *testing.T) {
	client, cache := setupPortal(t)
	guard := views.NewGuardView(client, cache)
	ctx := context.Background()

	alert := reportSample(t, guard)
	assert.Equal(t, "sent", alert.Status)
	assert.Equal(t, "KA01MM7788", alert.Plate)

	// The confirmed create is visible before any poll.
	cached, ok := cache.Snapshot().Find(alert.ID)
	require.True(t, ok)
	assert.Equal(t, "sent", cached.Status)

	viewed, err := guard.MarkViewed(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, "viewed", viewed.Status)

	// Marking again is a no-op against the cache, not another PATCH.
	again, err := guard.MarkViewed(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, "viewed", again.Status)
	assert.Equal(t, viewed.Revision, again.Revision)

	resolved, err := guard.Resolve(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, "resolved", resolved.Status)

	escalated, err := guard.Escalate(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, "escalated", escalated.Status)
}

func TestGuardReportValidation(t *testing.T) {
	client, cache := setupPortal(t)
	guard := views.NewGuardView(client, cache)

	_, err := guard.Report(context.Background(), watch.CreateAlert{Plate: "KA01MM7788"})
	require.Error(t, err)

	assert.Empty(t, cache.Snapshot().Alerts, "failed create must not touch the cache")
}

func TestOwnerFindAndRespond(t *testing.T) {
	client, cache := setupPortal(t)
	guard := views.NewGuardView(client, cache)
	owner := views.NewOwnerView(client, cache)
	ctx := context.Background()

	alert := reportSample(t, guard)

	matches, summary := owner.FindByPlate("ka 01 mm 7788", time.Now())
	require.Len(t, matches, 1)
	assert.Equal(t, 1, summary.Found)
	assert.Equal(t, "sent", summary.LatestStatus)
	assert.Equal(t, 0, summary.MinutesSinceLatest)

	responded, err := owner.SendResponse(ctx, alert.ID, "Moving in 5 minutes")
	require.NoError(t, err)
	assert.Equal(t, "responded", responded.Status)
	assert.Equal(t, "Moving in 5 minutes", responded.OwnerResponse)
	assert.NotZero(t, responded.RespondedAt)

	// The response is in the cache without waiting for a poll.
	cached, ok := cache.Snapshot().Find(alert.ID)
	require.True(t, ok)
	assert.Equal(t, "responded", cached.Status)
}

func TestOwnerFindUnknownPlate(t *testing.T) {
	client, cache := setupPortal(t)
	guard := views.NewGuardView(client, cache)
	owner := views.NewOwnerView(client, cache)

	reportSample(t, guard)

	matches, summary := owner.FindByPlate("TN10XY9090", time.Now())
	assert.Empty(t, matches)
	assert.Equal(t, views.OwnerSummary{}, summary)

	matches, summary = owner.FindByPlate("", time.Now())
	assert.Empty(t, matches)
	assert.Equal(t, 0, summary.Found)
}

func TestPollerRefreshFillsCache(t *testing.T) {
	client, cache := setupPortal(t)
	guard := views.NewGuardView(client, cache)

	reportSample(t, guard)

	// A second portal with its own cache catches up via a poll.
	other := watch.NewCache()
	poller := watch.NewPoller(client, other)
	poller.Refresh(context.Background())

	assert.Len(t, other.Snapshot().Alerts, 1)
}
