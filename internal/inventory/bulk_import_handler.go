package inventory

import (
	"log"
	"strings"

	"bloompos-backend/internal/session"

	"github.com/gofiber/fiber/v2"
)

// POST /api/flowers/import — toptancı .xlsx fiyat listesinden toplu parti girişi
func ImportFlowersHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
		}

		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "Sadece .xlsx dosyaları yüklenebilir")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		inputs, skipped, err := ParsePriceList(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result := ImportResult{Skipped: skipped}
		for _, in := range inputs {
			if _, err := s.UpsertFlower(c.Context(), in); err != nil {
				result.Skipped = append(result.Skipped, in.Name)
				continue
			}
			result.Imported++
		}

		log.Printf("Toplu içe aktarma: %d parti eklendi, %d satır atlandı", result.Imported, len(result.Skipped))
		return c.JSON(result)
	}
}
