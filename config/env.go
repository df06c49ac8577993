package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	AppPort        string
	DatabaseURL    string
	JWTSecret      string
	JWTExpiry      time.Duration
	AllowedOrigins string

	// Optional R2/S3 asset storage. Uploads are disabled when unset.
	CloudflareAccountID string
	R2AccessKeyID       string
	R2AccessKeySecret   string
	R2Bucket            string
	CDNBaseURL          string
}

var Env EnvConfig

// LoadEnv reads .env (when present) and populates Env. Missing required
// variables are fatal at startup, not at first use.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	Env.AppPort = getenvDefault("APP_PORT", "5000")
	Env.DatabaseURL = os.Getenv("DATABASE_URL")
	Env.JWTSecret = os.Getenv("JWT_SECRET")
	Env.AllowedOrigins = getenvDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	expire := getenvDefault("JWT_EXPIRE", "720h") // 30 days
	d, err := time.ParseDuration(expire)
	if err != nil {
		log.Fatalf("invalid JWT_EXPIRE %q: %v", expire, err)
	}
	Env.JWTExpiry = d

	Env.CloudflareAccountID = os.Getenv("CLOUDFLARE_ACCOUNT_ID")
	Env.R2AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	Env.R2AccessKeySecret = os.Getenv("R2_ACCESS_KEY_SECRET")
	Env.R2Bucket = os.Getenv("R2_BUCKET_NAME")
	Env.CDNBaseURL = os.Getenv("CDN_BASE_URL")

	if Env.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}
	if Env.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
}

func GetJWTSecret() string {
	return Env.JWTSecret
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
