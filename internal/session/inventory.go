package session

import (
	"context"
	"errors"
	"fmt"

	"bloompos-backend/internal/models"

	"github.com/google/uuid"
)

var (
	ErrNameRequired = errors.New("çiçek adı zorunlu")
	ErrInvalidPrice = errors.New("fiyat negatif olamaz")
)

// FlowerInput: upsert isteği. Pointer alanlar "gönderilmedi" ile "0
// gönderildi" ayrımını korur; eksik/geçersiz sayısal alanlar varsayılana düşer.
type FlowerInput struct {
	ID            string
	Name          string
	Price         *float64
	Stock         *int
	Threshold     *int
	ShelfLifeDays *int
	Image         string
	Description   string
}

const (
	defaultThreshold     = 5
	defaultShelfLifeDays = 7
)

// UpsertFlower: id mevcut bir partiyle eşleşirse yerinde değiştirir
// (AddedAt korunur), yoksa yeni id ve taze zaman damgasıyla ekler.
func (s *Session) UpsertFlower(ctx context.Context, in FlowerInput) (models.Flower, error) {
	if in.Name == "" {
		return models.Flower{}, ErrNameRequired
	}
	if in.Price == nil || *in.Price < 0 {
		return models.Flower{}, ErrInvalidPrice
	}

	stock := 0
	if in.Stock != nil && *in.Stock > 0 {
		stock = *in.Stock
	}
	threshold := defaultThreshold
	if in.Threshold != nil && *in.Threshold >= 0 {
		threshold = *in.Threshold
	}
	shelfLife := defaultShelfLifeDays
	if in.ShelfLifeDays != nil && *in.ShelfLifeDays > 0 {
		shelfLife = *in.ShelfLifeDays
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	flower := models.Flower{
		ID:            in.ID,
		Name:          in.Name,
		Price:         *in.Price,
		Stock:         stock,
		Threshold:     threshold,
		ShelfLifeDays: shelfLife,
		Image:         in.Image,
		Description:   in.Description,
	}

	if in.ID != "" {
		for i, f := range s.flowers {
			if f.ID == in.ID {
				flower.AddedAt = f.AddedAt // düzenlemede raf ömrü saati sıfırlanmaz
				if flower.Image == "" {
					flower.Image = f.Image
				}
				s.flowers[i] = flower
				s.persistFlowers(ctx)
				return flower, nil
			}
		}
	}

	flower.ID = uuid.NewString()
	flower.AddedAt = s.now()
	if flower.Image == "" {
		flower.Image = fmt.Sprintf("https://picsum.photos/200/200?random=%s", flower.ID)
	}
	s.flowers = append(s.flowers, flower)
	s.persistFlowers(ctx)
	return flower, nil
}

// RemoveFlower: onay kullanıcı arayüzünün işi, burada koşulsuz silinir.
func (s *Session) RemoveFlower(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.flowers {
		if f.ID == id {
			s.flowers = append(s.flowers[:i], s.flowers[i+1:]...)
			s.persistFlowers(ctx)
			return nil
		}
	}
	return ErrFlowerNotFound
}
