package pos

import (
	"errors"

	"bloompos-backend/internal/session"

	"github.com/gofiber/fiber/v2"
)

type AddToCartRequest struct {
	FlowerID string `json:"flowerId"`
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}

// GET /api/cart
func GetCartHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items := s.Cart()
		total := 0.0
		for _, item := range items {
			total += item.Price * float64(item.Quantity)
		}
		return c.JSON(fiber.Map{
			"items": items,
			"total": total,
		})
	}
}

// POST /api/cart/items
func AddToCartHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddToCartRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.FlowerID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "flowerId zorunlu")
		}

		err := s.AddToCart(body.FlowerID)
		switch {
		case errors.Is(err, session.ErrNoOpenShift):
			return fiber.NewError(fiber.StatusConflict, "Önce vardiya açmalısın")
		case errors.Is(err, session.ErrFlowerNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Çiçek partisi bulunamadı")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Sepete eklenemedi")
		}

		// Stok biten veya sınırdaki partide ekleme sessiz no-op'tur
		return c.JSON(fiber.Map{"items": s.Cart()})
	}
}

// PUT /api/cart/items/:id — aralık dışı delta satırı olduğu gibi bırakır
func UpdateCartItemHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateQuantityRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		s.UpdateCartQuantity(c.Params("id"), body.Delta)
		return c.JSON(fiber.Map{"items": s.Cart()})
	}
}

// DELETE /api/cart/items/:id
func RemoveCartItemHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s.RemoveFromCart(c.Params("id"))
		return c.JSON(fiber.Map{"items": s.Cart()})
	}
}

// POST /api/checkout — dört etki tek işlemde: stok düşümü, satış fişi,
// vardiya toplamları, sepet temizliği
func CheckoutHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sale, err := s.Checkout(c.Context())
		switch {
		case errors.Is(err, session.ErrNoOpenShift):
			return fiber.NewError(fiber.StatusConflict, "Açık vardiya yok")
		case errors.Is(err, session.ErrEmptyCart):
			return fiber.NewError(fiber.StatusBadRequest, "Sepet boş")
		case errors.Is(err, session.ErrInsufficientStock):
			return fiber.NewError(fiber.StatusConflict, "Stok yetersiz, satış yapılmadı")
		case errors.Is(err, session.ErrFlowerNotFound):
			return fiber.NewError(fiber.StatusConflict, "Sepetteki parti artık envanterde yok")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Satış tamamlanamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(sale)
	}
}

// GET /api/sales — satış fişi geçmişi
func ListSalesHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.Sales())
	}
}
