package store

import (
	"context"

	"bloompos-backend/internal/models"
)

// Dört koleksiyonun kalıcı anahtarları. Şema versiyonu yok; kayıt yoksa
// çağıran taraf varsayılanı (boş liste / seed envanter) kullanır.
const (
	KeyFlowers = "bloompos:flowers"
	KeySales   = "bloompos:sales"
	KeyShifts  = "bloompos:shifts"
	KeyAlerts  = "bloompos:alerts"
)

// Store: her koleksiyonu tek parça JSON snapshot olarak okuyup yazan
// kalıcılık kapısı. Load'daki bool, kaydın hiç var olup olmadığını söyler.
type Store interface {
	LoadFlowers(ctx context.Context) ([]models.Flower, bool, error)
	SaveFlowers(ctx context.Context, flowers []models.Flower) error

	LoadSales(ctx context.Context) ([]models.Sale, bool, error)
	SaveSales(ctx context.Context, sales []models.Sale) error

	LoadShifts(ctx context.Context) ([]models.Shift, bool, error)
	SaveShifts(ctx context.Context, shifts []models.Shift) error

	LoadAlerts(ctx context.Context) ([]models.Alert, bool, error)
	SaveAlerts(ctx context.Context, alerts []models.Alert) error
}
