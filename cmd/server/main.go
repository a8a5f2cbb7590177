package main

import (
	"context"
	"log"
	"strings"

	"bloompos-backend/internal/alerts"
	"bloompos-backend/internal/assistant"
	"bloompos-backend/internal/auth"
	"bloompos-backend/internal/config"
	"bloompos-backend/internal/inventory"
	"bloompos-backend/internal/pos"
	"bloompos-backend/internal/session"
	"bloompos-backend/internal/shift"
	"bloompos-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// .env varsa yükle, yoksa environment'tan devam
	if err := godotenv.Load(); err != nil {
		log.Println(".env dosyası bulunamadı, environment değişkenleri kullanılıyor")
	}

	cfg := config.Load()

	st, err := store.NewRedisStore(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Kalıcı depoya bağlanılamadı: %v", err)
	}

	sess := session.New(st)
	if err := sess.Init(context.Background()); err != nil {
		log.Fatalf("Oturum durumu yüklenemedi: %v", err)
	}

	// Açılışta bir tarama + her 60 saniyede bir periyodik tarama
	go alerts.RunPeriodic(context.Background(), sess)

	gemini := assistant.NewClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Post("/auth/logout", auth.LogoutHandler(sess))

	// Envanter
	protected.Get("/flowers", inventory.ListFlowersHandler(sess))
	protected.Post("/flowers", inventory.CreateFlowerHandler(sess))
	protected.Put("/flowers/:id", inventory.UpdateFlowerHandler(sess))
	protected.Delete("/flowers/:id", inventory.DeleteFlowerHandler(sess))
	protected.Post("/flowers/import", inventory.ImportFlowersHandler(sess))

	// Sepet & satış
	protected.Get("/cart", pos.GetCartHandler(sess))
	protected.Post("/cart/items", pos.AddToCartHandler(sess))
	protected.Put("/cart/items/:id", pos.UpdateCartItemHandler(sess))
	protected.Delete("/cart/items/:id", pos.RemoveCartItemHandler(sess))
	protected.Post("/checkout", pos.CheckoutHandler(sess))
	protected.Get("/sales", pos.ListSalesHandler(sess))

	// Vardiya
	protected.Post("/shifts/open", shift.OpenShiftHandler(sess))
	protected.Post("/shifts/close", shift.CloseShiftHandler(sess))
	protected.Get("/shifts", shift.ListShiftsHandler(sess))
	protected.Get("/shifts/current", shift.CurrentShiftHandler(sess))

	// Bildirimler
	protected.Get("/alerts", alerts.ListAlertsHandler(sess))
	protected.Get("/alerts/unread-count", alerts.UnreadCountHandler(sess))
	protected.Post("/alerts/clear", alerts.ClearAlertsHandler(sess))

	// Danışman paneli (salt-okur)
	protected.Post("/assistant/flowers/:id", assistant.AskHandler(gemini, sess))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
