package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr     string
	RedisAddr    string
	MySQLDSN     string // empty disables the mirror
	JWTSecret    string
	SessionTTL   time.Duration
	QueueSize    int
	WorkerCount  int
	PriceCeiling float64
	UploadDir    string
	CORSOrigins  []string
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local development.
func Load() Config {
	// .env is optional; absent files are fine.
	_ = godotenv.Load()

	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		MySQLDSN:     os.Getenv("MYSQL_DSN"),
		JWTSecret:    getenv("JWT_SECRET", "dev-secret-change-me"),
		SessionTTL:   getduration("SESSION_TTL", 24*time.Hour),
		QueueSize:    getint("MIRROR_QUEUE_SIZE", 1024),
		WorkerCount:  getint("MIRROR_WORKERS", 4),
		PriceCeiling: getfloat("PRICE_CEILING", 5000),
		UploadDir:    getenv("UPLOAD_DIR", "./static/productpic"),
		CORSOrigins:  []string{getenv("CORS_ORIGIN", "*")},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getfloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return d
}
