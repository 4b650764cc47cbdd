package config

import (
	"os"
	"strconv"
)

// MongoConfig holds document store connection settings.
type MongoConfig struct {
	URI      string
	Database string
}

// RedisConfig holds session store settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MinIOConfig holds object storage settings for MinIO/S3.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AdminConfig holds settings for the admin surface.
type AdminConfig struct {
	// SecretKey doubles as the bootstrap X-Admin-Token value. An empty
	// value disables the header fallback entirely.
	SecretKey         string
	SessionCookieName string
	SessionTTLSec     int
	// MaxWSConnections bounds the realtime notification registry.
	MaxWSConnections int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost string
	Port    string
	Mongo   MongoConfig
	Redis   RedisConfig
	MinIO   MinIOConfig
	Admin   AdminConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", ""),
			Database: getEnv("MONGO_DB", "jobboard"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Admin: AdminConfig{
			SecretKey:         getEnv("ADMIN_SECRET_KEY", ""),
			SessionCookieName: getEnv("SESSION_COOKIE_NAME", "sid"),
			SessionTTLSec:     getEnvInt("SESSION_TTL_SEC", 86400),
			MaxWSConnections:  getEnvInt("ADMIN_WS_MAX_CONNECTIONS", 256),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
