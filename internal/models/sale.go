package models

import "time"

// Sale: değiştirilemez satış fişi. Checkout başına bir kez oluşturulur,
// sonradan asla güncellenmez veya silinmez.
type Sale struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	Timestamp time.Time  `json:"timestamp"`
	ShiftID   string     `json:"shiftId"`
}
