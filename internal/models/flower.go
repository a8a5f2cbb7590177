package models

import "time"

// Flower: tek seferde girilen, kendi raf ömrü sayacı olan bir çiçek partisi
type Flower struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Stock         int       `json:"stock"`
	Threshold     int       `json:"threshold"`     // düşük stok uyarı eşiği
	ShelfLifeDays int       `json:"shelfLifeDays"` // raf ömrü (gün)
	AddedAt       time.Time `json:"addedAt"`       // parti giriş zamanı
	Image         string    `json:"image"`
	Description   string    `json:"description,omitempty"`
}
