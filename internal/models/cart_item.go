package models

// CartItem: sepete eklenen çiçeğin o anki halinin kopyası + istenen adet.
// Fiyat satış anında buradan okunur, güncel Flower kaydından değil.
type CartItem struct {
	Flower
	Quantity int `json:"quantity"`
}
