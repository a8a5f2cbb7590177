package models

import (
	"time"

	"github.com/google/uuid"
)

// SeedFlowers: ilk açılışta boş envanter yerine kullanılacak örnek partiler
func SeedFlowers(now time.Time) []Flower {
	return []Flower{
		{
			ID:            uuid.NewString(),
			Name:          "Red Rose",
			Price:         5.00,
			Stock:         50,
			Threshold:     10,
			ShelfLifeDays: 7,
			AddedAt:       now,
			Image:         "https://picsum.photos/200/200?random=1",
			Description:   "Classic red rose, perfect for romantic occasions.",
		},
		{
			ID:            uuid.NewString(),
			Name:          "White Lily",
			Price:         7.50,
			Stock:         30,
			Threshold:     5,
			ShelfLifeDays: 5,
			AddedAt:       now.Add(-4 * 24 * time.Hour),
			Image:         "https://picsum.photos/200/200?random=2",
			Description:   "Elegant white lily, symbols of purity.",
		},
		{
			ID:            uuid.NewString(),
			Name:          "Sunflower",
			Price:         4.00,
			Stock:         12,
			Threshold:     8,
			ShelfLifeDays: 10,
			AddedAt:       now,
			Image:         "https://picsum.photos/200/200?random=3",
			Description:   "Bright and cheerful sunflower.",
		},
		{
			ID:            uuid.NewString(),
			Name:          "Tulip Batch A",
			Price:         3.50,
			Stock:         3,
			Threshold:     10,
			ShelfLifeDays: 6,
			AddedAt:       now.Add(-5 * 24 * time.Hour),
			Image:         "https://picsum.photos/200/200?random=4",
			Description:   "Fresh spring tulips.",
		},
	}
}
