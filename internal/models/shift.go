package models

import "time"

// Shift: kasa açılış/kapanışla sınırlanan satış oturumu.
// Sistem genelinde aynı anda en fazla bir açık vardiya olabilir.
type Shift struct {
	ID         string     `json:"id"`
	OpenedAt   time.Time  `json:"openedAt"`
	ClosedAt   *time.Time `json:"closedAt"`
	StartCash  float64    `json:"startCash"`
	EndCash    *float64   `json:"endCash"`
	TotalSales float64    `json:"totalSales"`
	SalesCount int        `json:"salesCount"`
	IsOpen     bool       `json:"isOpen"`
}
