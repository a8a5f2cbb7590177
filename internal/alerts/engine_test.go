package alerts

import (
	"fmt"
	"testing"
	"time"

	"bloompos-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scanTime = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func batch(name string, stock, threshold, shelfLife int, addedAgo time.Duration) models.Flower {
	return models.Flower{
		ID:            name,
		Name:          name,
		Stock:         stock,
		Threshold:     threshold,
		ShelfLifeDays: shelfLife,
		AddedAt:       scanTime.Add(-addedAgo),
	}
}

func TestEvaluateLowStock(t *testing.T) {
	flowers := []models.Flower{batch("Tulip", 3, 10, 30, 0)}

	out := Evaluate(flowers, scanTime)
	require.Len(t, out, 1)
	assert.Equal(t, models.AlertTypeLowStock, out[0].Type)
	assert.Equal(t, "Low stock: Tulip (3 left)", out[0].Message)
	assert.Equal(t, "Tulip", out[0].FlowerID)
	assert.False(t, out[0].Read)
}

func TestEvaluateZeroStockDoesNotFireLowStock(t *testing.T) {
	flowers := []models.Flower{batch("Tulip", 0, 10, 30, 0)}
	assert.Empty(t, Evaluate(flowers, scanTime))
}

func TestEvaluateExpired(t *testing.T) {
	flowers := []models.Flower{batch("Lily", 20, 5, 6, 8*24*time.Hour)}

	out := Evaluate(flowers, scanTime)
	require.Len(t, out, 1)
	assert.Equal(t, models.AlertTypeDecay, out[0].Type)
	assert.Equal(t, "EXPIRED: Lily (Added 8 days ago)", out[0].Message)
}

func TestEvaluateNearDecay(t *testing.T) {
	// Raf ömrü 6 gün, 4.5 gün önce eklendi: 1.5 gün kaldı
	flowers := []models.Flower{batch("Rose", 20, 5, 6, 4*24*time.Hour+12*time.Hour)}

	out := Evaluate(flowers, scanTime)
	require.Len(t, out, 1)
	assert.Equal(t, models.AlertTypeDecay, out[0].Type)
	assert.Equal(t, "Near Decay: Rose (1.5) days left", out[0].Message)
}

func TestEvaluateRulesAreIndependent(t *testing.T) {
	// Hem düşük stok hem bozulma aynı taramada tetiklenebilir
	flowers := []models.Flower{batch("Tulip", 2, 10, 6, 8*24*time.Hour)}

	out := Evaluate(flowers, scanTime)
	require.Len(t, out, 2)
	assert.Equal(t, models.AlertTypeLowStock, out[0].Type)
	assert.Equal(t, models.AlertTypeDecay, out[1].Type)
}

func TestMergeDeduplicatesByMessage(t *testing.T) {
	fresh := Evaluate([]models.Flower{batch("Tulip", 3, 10, 30, 0)}, scanTime)

	merged, added := Merge(nil, fresh)
	assert.Equal(t, 1, added)
	require.Len(t, merged, 1)

	// Aynı envanterle ikinci tarama yeni kayıt üretmez
	freshAgain := Evaluate([]models.Flower{batch("Tulip", 3, 10, 30, 0)}, scanTime.Add(ScanInterval))
	merged2, added2 := Merge(merged, freshAgain)
	assert.Equal(t, 0, added2)
	assert.Len(t, merged2, 1)
}

func TestMergePrependsNewest(t *testing.T) {
	existing := []models.Alert{{ID: "old", Message: "Low stock: Rose (2 left)"}}
	fresh := []models.Alert{{ID: "new", Message: "Low stock: Tulip (3 left)"}}

	merged, added := Merge(existing, fresh)
	assert.Equal(t, 1, added)
	require.Len(t, merged, 2)
	assert.Equal(t, "new", merged[0].ID)
	assert.Equal(t, "old", merged[1].ID)
}

func TestMergeCapsAtFifty(t *testing.T) {
	var existing []models.Alert
	for i := 0; i < MaxAlerts; i++ {
		existing = append(existing, models.Alert{
			ID:      fmt.Sprintf("a-%d", i),
			Message: fmt.Sprintf("Low stock: Batch %d (1 left)", i),
		})
	}

	fresh := []models.Alert{
		{ID: "n-1", Message: "EXPIRED: Rose (Added 9 days ago)"},
		{ID: "n-2", Message: "EXPIRED: Lily (Added 9 days ago)"},
	}

	merged, added := Merge(existing, fresh)
	assert.Equal(t, 2, added)
	require.Len(t, merged, MaxAlerts, "koleksiyon asla 50'yi aşmaz")

	// En yeni taramanın bildirimleri korunur, en eskiler düşer
	assert.Equal(t, "n-1", merged[0].ID)
	assert.Equal(t, "n-2", merged[1].ID)
	assert.Equal(t, "a-0", merged[2].ID)
	assert.Equal(t, fmt.Sprintf("a-%d", MaxAlerts-3), merged[MaxAlerts-1].ID)
}
