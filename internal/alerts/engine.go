package alerts

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"bloompos-backend/internal/models"

	"github.com/google/uuid"
)

// MaxAlerts: koleksiyon en yeni bu kadar kayıtla sınırlıdır
const MaxAlerts = 50

// ScanInterval: duvar saatine göre periyodik tarama aralığı
const ScanInterval = 60 * time.Second

const nearDecayDays = 2.0

// Evaluate: parti başına iki bağımsız kural (düşük stok + bozulma).
// Aynı parti için ikisi birden tetiklenebilir. Saf fonksiyondur,
// mevcut bildirim koleksiyonuna bakmaz.
func Evaluate(flowers []models.Flower, now time.Time) []models.Alert {
	var out []models.Alert

	for _, f := range flowers {
		if f.Stock > 0 && f.Stock <= f.Threshold {
			out = append(out, models.Alert{
				ID:        uuid.NewString(),
				Type:      models.AlertTypeLowStock,
				Message:   fmt.Sprintf("Low stock: %s (%d left)", f.Name, f.Stock),
				FlowerID:  f.ID,
				Timestamp: now,
			})
		}

		daysSinceAdded := now.Sub(f.AddedAt).Hours() / 24
		daysLeft := float64(f.ShelfLifeDays) - daysSinceAdded

		if daysLeft < 0 {
			out = append(out, models.Alert{
				ID:        uuid.NewString(),
				Type:      models.AlertTypeDecay,
				Message:   fmt.Sprintf("EXPIRED: %s (Added %d days ago)", f.Name, int(math.Floor(daysSinceAdded))),
				FlowerID:  f.ID,
				Timestamp: now,
			})
		} else if daysLeft < nearDecayDays {
			out = append(out, models.Alert{
				ID:        uuid.NewString(),
				Type:      models.AlertTypeDecay,
				Message:   fmt.Sprintf("Near Decay: %s (%.1f) days left", f.Name, daysLeft),
				FlowerID:  f.ID,
				Timestamp: now,
			})
		}
	}

	return out
}

// Merge: yeni bildirimleri mevcutların önüne ekler ve MaxAlerts'e kırpar.
// Tekilleştirme bilinçli olarak mesaj metni üzerinden yapılır; aynı metni
// üreten tekrar taramalar yeni kayıt doğurmaz. Kırpma ekleme sırasına
// göredir, en yeni taramanın bildirimleri her zaman korunur. İkinci dönüş
// değeri eklenen tekil bildirim sayısıdır.
func Merge(existing, fresh []models.Alert) ([]models.Alert, int) {
	seen := make(map[string]struct{}, len(existing))
	for _, a := range existing {
		seen[a.Message] = struct{}{}
	}

	merged := make([]models.Alert, 0, len(existing)+len(fresh))
	for _, a := range fresh {
		if _, dup := seen[a.Message]; dup {
			continue
		}
		merged = append(merged, a)
	}
	added := len(merged)
	merged = append(merged, existing...)

	if len(merged) > MaxAlerts {
		merged = merged[:MaxAlerts]
	}
	return merged, added
}

// Scanner: periyodik taramanın çalıştığı oturum yüzeyi
type Scanner interface {
	RunAlertScan(ctx context.Context, now time.Time) int
}

// RunPeriodic: bir açılış taraması + her dakikada bir tarama.
// Taramanın deadline'ı yok, biter bitmez bir sonraki tick'i bekler.
func RunPeriodic(ctx context.Context, s Scanner) {
	if n := s.RunAlertScan(ctx, time.Now()); n > 0 {
		log.Printf("Açılış taraması %d yeni bildirim üretti", n)
	}

	ticker := time.NewTicker(ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAlertScan(ctx, time.Now())
		}
	}
}
