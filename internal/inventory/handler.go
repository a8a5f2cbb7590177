package inventory

import (
	"errors"
	"strings"

	"bloompos-backend/internal/session"

	"github.com/gofiber/fiber/v2"
)

type FlowerRequest struct {
	Name          string   `json:"name"`
	Price         *float64 `json:"price"`
	Stock         *int     `json:"stock"`
	Threshold     *int     `json:"threshold"`
	ShelfLifeDays *int     `json:"shelfLifeDays"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
}

func (r *FlowerRequest) toInput(id string) session.FlowerInput {
	return session.FlowerInput{
		ID:            id,
		Name:          strings.TrimSpace(r.Name),
		Price:         r.Price,
		Stock:         r.Stock,
		Threshold:     r.Threshold,
		ShelfLifeDays: r.ShelfLifeDays,
		Image:         strings.TrimSpace(r.Image),
		Description:   strings.TrimSpace(r.Description),
	}
}

// GET /api/flowers
func ListFlowersHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.Flowers())
	}
}

// POST /api/flowers
func CreateFlowerHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body FlowerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		flower, err := s.UpsertFlower(c.Context(), body.toInput(""))
		if err != nil {
			return mapInventoryError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(flower)
	}
}

// PUT /api/flowers/:id — düzenlemede parti giriş zamanı korunur
func UpdateFlowerHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, ok := s.FlowerByID(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "Çiçek partisi bulunamadı")
		}

		var body FlowerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		flower, err := s.UpsertFlower(c.Context(), body.toInput(id))
		if err != nil {
			return mapInventoryError(err)
		}
		return c.JSON(flower)
	}
}

// DELETE /api/flowers/:id — onay frontend'de sorulur, burada koşulsuz silinir
func DeleteFlowerHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.RemoveFlower(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Çiçek partisi bulunamadı")
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}

func mapInventoryError(err error) error {
	switch {
	case errors.Is(err, session.ErrNameRequired):
		return fiber.NewError(fiber.StatusBadRequest, "Çiçek adı zorunlu")
	case errors.Is(err, session.ErrInvalidPrice):
		return fiber.NewError(fiber.StatusBadRequest, "Fiyat geçerli ve negatif olmayan bir sayı olmalı")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Kayıt oluşturulamadı")
	}
}
