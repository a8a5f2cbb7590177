package session

import (
	"context"

	"bloompos-backend/internal/models"

	"github.com/google/uuid"
)

// AddToCart: partiyi sepete ekler ya da mevcut satırın adedini 1 artırır.
// Adet canlı stokla sınırlıdır; sınırda ekleme sessiz no-op'tur.
// Sepet dört kalıcı koleksiyondan biri değildir, yazma yapılmaz.
func (s *Session) AddToCart(flowerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentShiftID == "" {
		return ErrNoOpenShift
	}

	var flower *models.Flower
	for i := range s.flowers {
		if s.flowers[i].ID == flowerID {
			flower = &s.flowers[i]
			break
		}
	}
	if flower == nil {
		return ErrFlowerNotFound
	}
	if flower.Stock <= 0 {
		return nil // stok bitti, sessizce yok say
	}

	for i, item := range s.cart {
		if item.ID == flowerID {
			if item.Quantity >= flower.Stock {
				return nil // zaten stok sınırında
			}
			s.cart[i].Quantity++
			return nil
		}
	}

	s.cart = append(s.cart, models.CartItem{Flower: *flower, Quantity: 1})
	return nil
}

func (s *Session) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.cart {
		if item.ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// UpdateCartQuantity: delta uygulanmış adet [1, canlı stok] aralığının
// dışına çıkıyorsa satır olduğu gibi bırakılır. Sıfıra düşürmek satırı
// silmez; silme ayrı bir işlemdir.
func (s *Session) UpdateCartQuantity(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.cart {
		if item.ID != id {
			continue
		}
		newQty := item.Quantity + delta
		stock := 0
		for _, f := range s.flowers {
			if f.ID == id {
				stock = f.Stock
				break
			}
		}
		if newQty >= 1 && newQty <= stock {
			s.cart[i].Quantity = newQty
		}
		return
	}
}

// Checkout: tek kilit altında dört etkinin tamamı ya da hiçbiri.
// Önce bütün satırlar stoğa karşı doğrulanır; tek bir satır bile stoğu
// eksiye düşürecekse hiçbir değişiklik yapılmaz.
func (s *Session) Checkout(ctx context.Context) (models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift, ok := s.currentShiftLocked()
	if !ok {
		return models.Sale{}, ErrNoOpenShift
	}
	if len(s.cart) == 0 {
		return models.Sale{}, ErrEmptyCart
	}

	// (a) doğrulama + toplu stok güncellemesini hazırla
	decrements := make(map[string]int, len(s.cart))
	total := 0.0
	for _, item := range s.cart {
		found := false
		for _, f := range s.flowers {
			if f.ID == item.ID {
				if f.Stock < item.Quantity {
					return models.Sale{}, ErrInsufficientStock
				}
				found = true
				break
			}
		}
		if !found {
			return models.Sale{}, ErrFlowerNotFound
		}
		decrements[item.ID] = item.Quantity
		total += item.Price * float64(item.Quantity) // sepetteki fiyat, günceli değil
	}

	// Stok düşümü tek geçişte, koleksiyonun bütünü değiştirilerek yapılır
	for i := range s.flowers {
		if qty, ok := decrements[s.flowers[i].ID]; ok {
			s.flowers[i].Stock -= qty
		}
	}

	// (b) satış fişi
	sale := models.Sale{
		ID:        uuid.NewString(),
		Items:     append([]models.CartItem(nil), s.cart...),
		Total:     total,
		Timestamp: s.now(),
		ShiftID:   shift.ID,
	}
	s.sales = append(s.sales, sale)

	// (c) vardiya toplamları
	for i := range s.shifts {
		if s.shifts[i].ID == shift.ID {
			s.shifts[i].TotalSales += total
			s.shifts[i].SalesCount++
			break
		}
	}

	// (d) sepet temizlenir
	s.cart = nil

	s.persistFlowers(ctx)
	s.persistSales(ctx)
	s.persistShifts(ctx)

	return sale, nil
}
