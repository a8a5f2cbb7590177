package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"bloompos-backend/internal/models"
	"bloompos-backend/internal/store"
)

var (
	ErrFlowerNotFound    = errors.New("çiçek partisi bulunamadı")
	ErrNoOpenShift       = errors.New("açık vardiya yok")
	ErrShiftAlreadyOpen  = errors.New("zaten açık bir vardiya var")
	ErrEmptyCart         = errors.New("sepet boş")
	ErrInsufficientStock = errors.New("stok yetersiz")
)

// Session: uygulamanın tüm oturum durumunu tutan tek kontrolcü.
// Dört koleksiyon + açık vardiya işaretçisi tek mutex altında yaşar;
// her operasyon koleksiyonu bütün olarak okuyup bütün olarak değiştirir.
type Session struct {
	mu sync.Mutex

	flowers []models.Flower
	sales   []models.Sale
	shifts  []models.Shift
	alerts  []models.Alert
	cart    []models.CartItem

	currentShiftID string

	store store.Store
	now   func() time.Time
}

func New(st store.Store) *Session {
	return &Session{
		store: st,
		now:   time.Now,
	}
}

// Init: dört koleksiyonu yükler, varsa açık vardiyayı devralır.
// Envanter kaydı hiç yoksa seed partilerle başlar.
func (s *Session) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flowers, found, err := s.store.LoadFlowers(ctx)
	if err != nil {
		return err
	}
	if !found {
		flowers = models.SeedFlowers(s.now())
		if err := s.store.SaveFlowers(ctx, flowers); err != nil {
			log.Printf("Seed envanter kaydedilemedi: %v", err)
		}
	}
	s.flowers = flowers

	if s.sales, _, err = s.store.LoadSales(ctx); err != nil {
		return err
	}
	if s.shifts, _, err = s.store.LoadShifts(ctx); err != nil {
		return err
	}
	if s.alerts, _, err = s.store.LoadAlerts(ctx); err != nil {
		return err
	}

	// Açık kalmış vardiya varsa devam ettir
	s.currentShiftID = ""
	for _, sh := range s.shifts {
		if sh.IsOpen {
			s.currentShiftID = sh.ID
			log.Printf("Açık vardiya devralındı: %s", sh.ID)
			break
		}
	}

	return nil
}

// Logout sepeti temizler; diğer bellek durumu bir sonraki yüklemeye kadar korunur.
func (s *Session) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
}

func (s *Session) Flowers() []models.Flower {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Flower(nil), s.flowers...)
}

// FlowerByID: danışman paneli gibi salt-okur tüketiciler için tek parti kopyası
func (s *Session) FlowerByID(id string) (models.Flower, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.flowers {
		if f.ID == id {
			return f, true
		}
	}
	return models.Flower{}, false
}

func (s *Session) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartItem(nil), s.cart...)
}

func (s *Session) Sales() []models.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Sale(nil), s.sales...)
}

func (s *Session) Shifts() []models.Shift {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Shift(nil), s.shifts...)
}

func (s *Session) Alerts() []models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Alert(nil), s.alerts...)
}

// CurrentShift: açık vardiya, yoksa ok=false
func (s *Session) CurrentShift() (models.Shift, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentShiftLocked()
}

func (s *Session) currentShiftLocked() (models.Shift, bool) {
	if s.currentShiftID == "" {
		return models.Shift{}, false
	}
	for _, sh := range s.shifts {
		if sh.ID == s.currentShiftID {
			return sh, true
		}
	}
	return models.Shift{}, false
}

// Kalıcılık best-effort: yazma hatası oturumu düşürmez, bellek durumu
// güncel kalır ve sadece log'lanır.
func (s *Session) persistFlowers(ctx context.Context) {
	if err := s.store.SaveFlowers(ctx, s.flowers); err != nil {
		log.Printf("Envanter snapshot'ı yazılamadı: %v", err)
	}
}

func (s *Session) persistSales(ctx context.Context) {
	if err := s.store.SaveSales(ctx, s.sales); err != nil {
		log.Printf("Satış snapshot'ı yazılamadı: %v", err)
	}
}

func (s *Session) persistShifts(ctx context.Context) {
	if err := s.store.SaveShifts(ctx, s.shifts); err != nil {
		log.Printf("Vardiya snapshot'ı yazılamadı: %v", err)
	}
}

func (s *Session) persistAlerts(ctx context.Context) {
	if err := s.store.SaveAlerts(ctx, s.alerts); err != nil {
		log.Printf("Bildirim snapshot'ı yazılamadı: %v", err)
	}
}
