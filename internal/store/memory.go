package store

import (
	"context"
	"encoding/json"
	"sync"

	"bloompos-backend/internal/models"
)

// MemoryStore: testler ve Redis'siz lokal çalıştırma için aynı snapshot
// sözleşmesini bellekte uygular.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) load(key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStore) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) LoadFlowers(_ context.Context) ([]models.Flower, bool, error) {
	var flowers []models.Flower
	found, err := s.load(KeyFlowers, &flowers)
	return flowers, found, err
}

func (s *MemoryStore) SaveFlowers(_ context.Context, flowers []models.Flower) error {
	return s.save(KeyFlowers, flowers)
}

func (s *MemoryStore) LoadSales(_ context.Context) ([]models.Sale, bool, error) {
	var sales []models.Sale
	found, err := s.load(KeySales, &sales)
	return sales, found, err
}

func (s *MemoryStore) SaveSales(_ context.Context, sales []models.Sale) error {
	return s.save(KeySales, sales)
}

func (s *MemoryStore) LoadShifts(_ context.Context) ([]models.Shift, bool, error) {
	var shifts []models.Shift
	found, err := s.load(KeyShifts, &shifts)
	return shifts, found, err
}

func (s *MemoryStore) SaveShifts(_ context.Context, shifts []models.Shift) error {
	return s.save(KeyShifts, shifts)
}

func (s *MemoryStore) LoadAlerts(_ context.Context) ([]models.Alert, bool, error) {
	var alerts []models.Alert
	found, err := s.load(KeyAlerts, &alerts)
	return alerts, found, err
}

func (s *MemoryStore) SaveAlerts(_ context.Context, alerts []models.Alert) error {
	return s.save(KeyAlerts, alerts)
}
