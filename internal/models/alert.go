package models

import "time"

type AlertType string

const (
	AlertTypeLowStock AlertType = "low-stock"
	AlertTypeDecay    AlertType = "decay"
	AlertTypeInfo     AlertType = "info"
)

// Alert: periyodik tarama tarafından üretilen geçici bildirim.
// Koleksiyon en yeni 50 kayıtla sınırlıdır.
type Alert struct {
	ID        string    `json:"id"`
	Type      AlertType `json:"type"`
	Message   string    `json:"message"`
	FlowerID  string    `json:"flowerId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
