package assistant

import (
	"fmt"
	"log"

	"bloompos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FlowerReader: danışman panelinin çekirdekten görebileceği tek şey.
// Tek partinin salt-okur kopyası; envanter, sepet veya vardiya durumuna
// yazma yolu yoktur.
type FlowerReader interface {
	FlowerByID(id string) (models.Flower, bool)
}

type AskRequest struct {
	Topic string `json:"topic"` // "care" | "arrangement" | "sales"
}

// POST /api/assistant/flowers/:id
func AskHandler(client *Client, flowers FlowerReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !client.Enabled() {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Danışman paneli yapılandırılmamış")
		}

		flower, ok := flowers.FlowerByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Çiçek partisi bulunamadı")
		}

		var body AskRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		var prompt string
		switch body.Topic {
		case "care":
			prompt = fmt.Sprintf("Provide concise care instructions for a %s. Include watering, light requirements, and how to extend shelf life. Max 100 words.", flower.Name)
		case "arrangement":
			prompt = fmt.Sprintf("Suggest 3 flowers that go well with %s in a bouquet and briefly explain why. Max 100 words.", flower.Name)
		case "sales":
			prompt = fmt.Sprintf("Give me a one-sentence sales pitch for a %s priced at $%.2f.", flower.Name, flower.Price)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz topic (care|arrangement|sales)")
		}

		text, err := client.Generate(c.Context(), prompt)
		if err != nil {
			log.Printf("Danışman yanıtı alınamadı: %v", err)
			return fiber.NewError(fiber.StatusBadGateway, "Danışman yanıtı alınamadı")
		}

		return c.JSON(fiber.Map{
			"flowerId": flower.ID,
			"topic":    body.Topic,
			"text":     text,
		})
	}
}
