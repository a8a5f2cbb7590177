package auth

import (
	"log"
	"strings"

	"bloompos-backend/internal/config"
	"bloompos-backend/internal/session"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler: tek operatör hesabı config'den gelir; kullanıcı tablosu yok.
// Şifre açılışta bir kez hash'lenir, karşılaştırma hep hash üzerinden yapılır.
func LoginHandler(cfg *config.Config) fiber.Handler {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.POSPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Operatör şifresi hashlenemedi: %v", err)
	}

	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Username = strings.TrimSpace(body.Username)

		if body.Username != cfg.POSUsername {
			return fiber.NewError(fiber.StatusUnauthorized, "Kullanıcı adı veya şifre hatalı")
		}
		if err := bcrypt.CompareHashAndPassword(passwordHash, []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Kullanıcı adı veya şifre hatalı")
		}

		token, err := GenerateToken(cfg.JWTSecret, body.Username)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"username": body.Username,
			},
		})
	}
}

// LogoutHandler: çıkışta yalnızca sepet temizlenir, oturumun bellek durumu
// bir sonraki yüklemeye kadar korunur.
func LogoutHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s.ClearCart()
		return c.JSON(fiber.Map{"ok": true})
	}
}
