package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Redis (optional, ops counters only)
	RedisURL string

	// AI search
	GeminiAPIKey           string
	GeminiModel            string
	AISearchTimeoutSeconds int
	AIMaxOutputTokens      int

	// Catalog synthesis
	PricingStrategy string // "ladder" or "random"

	// Affiliate IDs substituted into generated URLs when present
	AmazonAffiliateID  string
	WalmartAffiliateID string
}

func Load() *Config {
	aiTimeout, _ := strconv.Atoi(getEnv("AI_SEARCH_TIMEOUT_SECONDS", "30"))
	aiMaxTokens, _ := strconv.Atoi(getEnv("AI_MAX_OUTPUT_TOKENS", "8192"))

	return &Config{
		// Server
		Port:        getEnv("PORT", "8093"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// AI search - no key means every search is served synthetically
		GeminiAPIKey:           getEnv("GEMINI_API_KEY", ""),
		GeminiModel:            getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AISearchTimeoutSeconds: aiTimeout,
		AIMaxOutputTokens:      aiMaxTokens,

		// Catalog synthesis
		PricingStrategy: getEnv("PRICING_STRATEGY", "ladder"),

		// Affiliate IDs
		AmazonAffiliateID:  getEnv("AMAZON_AFFILIATE_ID", ""),
		WalmartAffiliateID: getEnv("WALMART_AFFILIATE_ID", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
