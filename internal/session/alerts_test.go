package session

import (
	"context"
	"testing"
	"time"

	"bloompos-backend/internal/alerts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAlertScanDedupAcrossScans(t *testing.T) {
	s, st := newTestSession(t)
	ctx := context.Background()

	price := 5.0
	stock := 3
	threshold := 10
	_, err := s.UpsertFlower(ctx, FlowerInput{
		Name:      "Tulip",
		Price:     &price,
		Stock:     &stock,
		Threshold: &threshold,
	})
	require.NoError(t, err)

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	added := s.RunAlertScan(ctx, now)
	assert.Equal(t, 1, added)
	list := s.Alerts()
	require.Len(t, list, 1)
	assert.Equal(t, "Low stock: Tulip (3 left)", list[0].Message)

	// Envanter değişmeden ikinci tarama sıfır yeni bildirim üretir
	added = s.RunAlertScan(ctx, now.Add(alerts.ScanInterval))
	assert.Equal(t, 0, added)
	assert.Len(t, s.Alerts(), 1)

	// Tarama sonucu kalıcı depoya da yazılır
	persisted, found, err := st.LoadAlerts(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, persisted, 1)
}

func TestUnreadAlertCountIsDerived(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	price := 5.0
	stock := 2
	threshold := 10
	_, err := s.UpsertFlower(ctx, FlowerInput{
		Name:      "Rose",
		Price:     &price,
		Stock:     &stock,
		Threshold: &threshold,
	})
	require.NoError(t, err)

	s.RunAlertScan(ctx, time.Now())
	assert.Equal(t, 1, s.UnreadAlertCount())
}

func TestClearAlerts(t *testing.T) {
	s, st := newTestSession(t)
	ctx := context.Background()

	price := 5.0
	stock := 2
	threshold := 10
	_, err := s.UpsertFlower(ctx, FlowerInput{
		Name:      "Rose",
		Price:     &price,
		Stock:     &stock,
		Threshold: &threshold,
	})
	require.NoError(t, err)

	s.RunAlertScan(ctx, time.Now())
	require.NotEmpty(t, s.Alerts())

	s.ClearAlerts(ctx)
	assert.Empty(t, s.Alerts())
	assert.Equal(t, 0, s.UnreadAlertCount())

	persisted, _, err := st.LoadAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}
