package store

import (
	"context"
	"encoding/json"
	"fmt"

	"bloompos-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisStore: koleksiyon snapshot'larını sabit anahtarlar altında JSON
// olarak tutar. TTL yok, kayıtlar kalıcıdır.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("Redis URL geçersiz: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("Redis bağlantısı kurulamadı: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) load(ctx context.Context, key string, out any) (bool, error) {
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return false, fmt.Errorf("%s kaydı çözümlenemedi: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

func (s *RedisStore) LoadFlowers(ctx context.Context) ([]models.Flower, bool, error) {
	var flowers []models.Flower
	found, err := s.load(ctx, KeyFlowers, &flowers)
	return flowers, found, err
}

func (s *RedisStore) SaveFlowers(ctx context.Context, flowers []models.Flower) error {
	return s.save(ctx, KeyFlowers, flowers)
}

func (s *RedisStore) LoadSales(ctx context.Context) ([]models.Sale, bool, error) {
	var sales []models.Sale
	found, err := s.load(ctx, KeySales, &sales)
	return sales, found, err
}

func (s *RedisStore) SaveSales(ctx context.Context, sales []models.Sale) error {
	return s.save(ctx, KeySales, sales)
}

func (s *RedisStore) LoadShifts(ctx context.Context) ([]models.Shift, bool, error) {
	var shifts []models.Shift
	found, err := s.load(ctx, KeyShifts, &shifts)
	return shifts, found, err
}

func (s *RedisStore) SaveShifts(ctx context.Context, shifts []models.Shift) error {
	return s.save(ctx, KeyShifts, shifts)
}

func (s *RedisStore) LoadAlerts(ctx context.Context) ([]models.Alert, bool, error) {
	var alerts []models.Alert
	found, err := s.load(ctx, KeyAlerts, &alerts)
	return alerts, found, err
}

func (s *RedisStore) SaveAlerts(ctx context.Context, alerts []models.Alert) error {
	return s.save(ctx, KeyAlerts, alerts)
}
