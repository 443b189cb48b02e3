package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every environment-driven setting of the portal API.
//
// Values are read from the process environment; cmd/api loads a local .env
// file first through godotenv/autoload.
type Config struct {
	Port int

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	QuotesTable          string
	ProfilesTable        string
	BusinessesTable      string
	QuoteActivitiesTable string

	IdentityJWTSecret    string
	IdentityJWTPublicKey string
	IdentityJWTIssuer    string

	RedisURL             string
	NotificationsChannel string

	LLMBaseURL         string
	LLMModel           string
	LLMTimeout         time.Duration
	QuoteGeneratorMock bool

	CORSAllowedOrigins []string
}

func Load() Config {
	return Config{
		Port: getenvInt("PORT", 8080),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		QuotesTable:          getenvDefault("QUOTES_TABLE", "quotes"),
		ProfilesTable:        getenvDefault("PROFILES_TABLE", "profiles"),
		BusinessesTable:      getenvDefault("BUSINESSES_TABLE", "businesses"),
		QuoteActivitiesTable: getenvDefault("QUOTE_ACTIVITIES_TABLE", "quote_activities"),

		IdentityJWTSecret:    os.Getenv("IDP_JWT_SECRET"),
		IdentityJWTPublicKey: os.Getenv("IDP_JWT_PUBLIC_KEY"),
		IdentityJWTIssuer:    os.Getenv("IDP_JWT_ISSUER"),

		RedisURL:             os.Getenv("REDIS_URL"),
		NotificationsChannel: getenvDefault("NOTIFICATIONS_CHANNEL", "notifications"),

		LLMBaseURL:         getenvDefault("LLM_BASE_URL", "http://127.0.0.1:11434"),
		LLMModel:           getenvDefault("LLM_MODEL", "llama3.1:8b"),
		LLMTimeout:         time.Duration(getenvInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
		QuoteGeneratorMock: getenvBool("QUOTE_GENERATOR_MOCK"),

		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
