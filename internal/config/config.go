package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppPort       string
	DBDSN         string
	JWTSecret     string
	JWTExpiresMin int

	// OwnerOpenID is the one external identity promoted to admin on login.
	OwnerOpenID string

	RedisAddr     string
	RedisPassword string
	CacheTTLSec   int

	OAuthClientID   string
	OAuthSecret     string
	OAuthRedirect   string
	FrontendBaseURL string
}

func Load() Config {
	expires, _ := strconv.Atoi(get("JWT_EXPIRES_MIN", "10080"))
	ttl, _ := strconv.Atoi(get("CACHE_TTL_SEC", "300"))
	return Config{
		AppPort:       get("APP_PORT", "8080"),
		DBDSN:         get("DB_DSN", ""), // empty means run without a database
		JWTSecret:     must("JWT_SECRET"),
		JWTExpiresMin: expires,

		OwnerOpenID: get("OWNER_OPEN_ID", ""),

		RedisAddr:     get("REDIS_ADDR", ""),
		RedisPassword: get("REDIS_PASSWORD", ""),
		CacheTTLSec:   ttl,

		OAuthClientID:   get("OAUTH_CLIENT_ID", ""),
		OAuthSecret:     get("OAUTH_CLIENT_SECRET", ""),
		OAuthRedirect:   get("OAUTH_REDIRECT_URL", ""),
		FrontendBaseURL: get("FRONTEND_BASE_URL", "http://localhost:3000"),
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
