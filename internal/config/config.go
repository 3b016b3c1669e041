package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBDSN      string
	LogFile    string
	APIBaseURL string
	CDNBaseURL string
}

func Load() Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	cfg := Config{
		Port:       getenv("PORT", "8081"),
		DBDSN:      getenv("DB_DSN", "weblarek.db"), // sqlite file in project root
		LogFile:    getenv("LOG_FILE", "./weblarek.log"),
		APIBaseURL: getenv("API_BASE_URL", "http://localhost:8081"),
		CDNBaseURL: getenv("CDN_BASE_URL", "http://localhost:8081/media"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s API_BASE_URL=%s CDN_BASE_URL=%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.APIBaseURL, cfg.CDNBaseURL)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
