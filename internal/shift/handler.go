package shift

import (
	"errors"

	"bloompos-backend/internal/session"

	"github.com/gofiber/fiber/v2"
)

type OpenShiftRequest struct {
	StartCash float64 `json:"startCash"`
}

// POST /api/shifts/open
func OpenShiftHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OpenShiftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.StartCash < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Açılış kasası negatif olamaz")
		}

		sh, err := s.OpenShift(c.Context(), body.StartCash)
		if errors.Is(err, session.ErrShiftAlreadyOpen) {
			return fiber.NewError(fiber.StatusConflict, "Zaten açık bir vardiya var")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Vardiya açılamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(sh)
	}
}

// POST /api/shifts/close — endCash = startCash + totalSales
func CloseShiftHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sh, err := s.CloseShift(c.Context())
		if errors.Is(err, session.ErrNoOpenShift) {
			return fiber.NewError(fiber.StatusConflict, "Kapatılacak açık vardiya yok")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Vardiya kapatılamadı")
		}

		return c.JSON(sh)
	}
}

// GET /api/shifts — en yeni vardiya başta
func ListShiftsHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.Shifts())
	}
}

// GET /api/shifts/current
func CurrentShiftHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sh, ok := s.CurrentShift()
		if !ok {
			return c.JSON(fiber.Map{"open": false})
		}
		return c.JSON(fiber.Map{"open": true, "shift": sh})
	}
}
