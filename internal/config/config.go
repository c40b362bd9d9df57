package config

import (
	"fmt"
	"net"
	neturl "net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config centralises runtime configuration.
type Config struct {
	HTTPPort    string
	DatabaseURL string

	JWTSecret string
	JWTIssuer string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	EBirdAPIKey string
	EBirdRegion string

	FrontendURL     string
	AllowedOrigins  []string
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

// Load reads configuration from environment variables providing sane defaults.
// A missing JWT secret or database configuration refuses to start the server.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	httpPort := getEnv("HTTP_PORT", "")
	if httpPort == "" {
		httpPort = getEnv("PORT", "8080")
	}

	cfg := Config{
		HTTPPort:           httpPort,
		DatabaseURL:        resolveDatabaseURL(),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTIssuer:          getEnv("JWT_ISSUER", "avesnavarre"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		EBirdAPIKey:        getEnv("EBIRD_API_KEY", ""),
		EBirdRegion:        getEnv("EBIRD_REGION", "ES-AV"),
		FrontendURL:        strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		AllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeoutSec:     getIntEnv("HTTP_READ_TIMEOUT", 15),
		WriteTimeoutSec:    getIntEnv("HTTP_WRITE_TIMEOUT", 15),
		IdleTimeoutSec:     getIntEnv("HTTP_IDLE_TIMEOUT", 60),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database configuration missing: provide DATABASE_URL or PG* env vars")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

// GoogleEnabled reports whether the Google OAuth flow is configured.
func (c Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := []string{}
	for _, part := range strings.Split(value, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return []string{"*"}
	}
	return parts
}

func resolveDatabaseURL() string {
	for _, key := range []string{"DATABASE_URL", "POSTGRES_URL", "PGURL"} {
		if url := strings.TrimSpace(os.Getenv(key)); url != "" {
			if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
				return normalisePostgresScheme(url)
			}
		}
	}

	host := firstNonEmpty(os.Getenv("PGHOST"), os.Getenv("POSTGRES_HOST"))
	user := firstNonEmpty(os.Getenv("PGUSER"), os.Getenv("POSTGRES_USER"))
	if host == "" || user == "" {
		return ""
	}

	password := firstNonEmpty(os.Getenv("PGPASSWORD"), os.Getenv("POSTGRES_PASSWORD"))
	database := firstNonEmpty(os.Getenv("PGDATABASE"), os.Getenv("POSTGRES_DB"), user)
	port := firstNonEmpty(os.Getenv("PGPORT"), os.Getenv("POSTGRES_PORT"), "5432")
	sslMode := firstNonEmpty(os.Getenv("PGSSLMODE"), "require")

	dsn := &neturl.URL{
		Scheme: "postgres",
		Path:   "/" + database,
		Host:   net.JoinHostPort(host, port),
		User:   neturl.User(user),
	}
	if password != "" {
		dsn.User = neturl.UserPassword(user, password)
	}

	query := dsn.Query()
	query.Set("sslmode", sslMode)
	dsn.RawQuery = query.Encode()

	return dsn.String()
}

func normalisePostgresScheme(url string) string {
	if strings.HasPrefix(url, "postgresql://") {
		return "postgres://" + strings.TrimPrefix(url, "postgresql://")
	}
	return url
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
