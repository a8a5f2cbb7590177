package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort    string
	RedisURL    string
	JWTSecret   string
	CORSOrigins string

	// Tek operatörlü kasa girişi
	POSUsername string
	POSPassword string

	// Gemini danışman paneli (opsiyonel)
	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		POSUsername:   getEnv("POS_USERNAME", "zyrus"),
		POSPassword:   getEnv("POS_PASSWORD", "zyrus12345"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.POSPassword == "zyrus12345" {
		log.Println("[WARN] POS_PASSWORD varsayılan değer kullanılıyor, production için mutlaka kendi şifreni tanımla.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("[WARN] GEMINI_API_KEY tanımlı değil, danışman paneli devre dışı kalacak.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
