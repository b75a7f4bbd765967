package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the app reads from the environment.
// Development defaults apply when a variable is unset, so a bare
// `go run .` against a local postgres works out of the box.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret        string
	JWTRefreshSecret string
	JWTExpiryHours   int

	Port      string
	UploadDir string

	// sandbox | midtrans
	PaymentGateway    string
	MidtransServerKey string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using system ENV")
	}

	return &Config{
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBUser:     GetEnv("DB_USER", "postgres"),
		DBPassword: GetEnv("DB_PASSWORD", "postgres"),
		DBName:     GetEnv("DB_NAME", "schoolhub"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "disable"),

		JWTSecret:        GetEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTRefreshSecret: GetEnv("JWT_REFRESH_SECRET", "dev-refresh-secret-change-me"),
		JWTExpiryHours:   GetEnvInt("JWT_EXPIRY_HOURS", 24),

		Port:      GetEnv("PORT", "3000"),
		UploadDir: GetEnv("UPLOAD_DIR", "uploads"),

		PaymentGateway:    GetEnv("PAYMENT_GATEWAY", "sandbox"),
		MidtransServerKey: GetEnv("MIDTRANS_SERVER_KEY", ""),
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
