package config

import (
	"os"
	"strconv"
	"time"

	"taskmanager/internal/logger"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment. It is
// built once at startup and passed into constructors; nothing else in the
// codebase touches env vars at request time.
type Config struct {
	AppPort     string
	DatabaseURL string

	// Token signing
	JWTSecret         string
	JWTIssuer         string
	JWTAudience       string
	JWTExpiresMinutes int

	// Placeholder credentials checked literally on login. There is no user
	// table behind these.
	AuthUsername string
	AuthPassword string

	// Login rate limiting (fail-open when RedisAddr is empty)
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	AuthRateLimit  int
	AuthRateWindow time.Duration

	LogLevel string
	LogJSON  bool
}

// Load reads the configuration from the environment. Missing required
// values are fatal.
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "taskmanager"
	}

	audience := os.Getenv("JWT_AUDIENCE")
	if audience == "" {
		audience = "taskmanager-clients"
	}

	expiresMinutes := 60
	if v := os.Getenv("JWT_EXPIRES_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			expiresMinutes = n
		}
	}

	username := os.Getenv("AUTH_USERNAME")
	if username == "" {
		username = "admin"
	}

	password := os.Getenv("AUTH_PASSWORD")
	if password == "" {
		password = "123456"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	authRateLimit := 5
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			authRateLimit = n
		}
	}

	authRateWindow := time.Minute
	if v := os.Getenv("AUTH_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			authRateWindow = time.Duration(n) * time.Second
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		AppPort:           port,
		DatabaseURL:       dbURL,
		JWTSecret:         jwtSecret,
		JWTIssuer:         issuer,
		JWTAudience:       audience,
		JWTExpiresMinutes: expiresMinutes,
		AuthUsername:      username,
		AuthPassword:      password,
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           redisDB,
		AuthRateLimit:     authRateLimit,
		AuthRateWindow:    authRateWindow,
		LogLevel:          logLevel,
		LogJSON:           os.Getenv("LOG_JSON") == "true",
	}
}
