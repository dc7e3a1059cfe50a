package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDSN     string
	StaticDir string
	LogFile   string
}

func Load() Config {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "shophub.db" // sqlite file in project root
	}
	static := os.Getenv("STATIC_DIR")
	if static == "" {
		static = "./public"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, StaticDir: static, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s STATIC_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.StaticDir, cfg.LogFile)
	return cfg
}
