package alerts

import (
	"context"

	"bloompos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Service: handler'ların ihtiyaç duyduğu oturum yüzeyi
type Service interface {
	Alerts() []models.Alert
	UnreadAlertCount() int
	ClearAlerts(ctx context.Context)
}

// GET /api/alerts — en yeni bildirim başta
func ListAlertsHandler(s Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.Alerts())
	}
}

// GET /api/alerts/unread-count
func UnreadCountHandler(s Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"count": s.UnreadAlertCount()})
	}
}

// POST /api/alerts/clear — koleksiyonu koşulsuz boşaltır
func ClearAlertsHandler(s Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s.ClearAlerts(c.Context())
		return c.JSON(fiber.Map{"ok": true})
	}
}
