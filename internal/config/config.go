// README: Config loader with env defaults for HTTP, model backend, maps, and redis settings.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type LLMConfig struct {
	// Provider selects the completion backend: "ollama", "openai" or "gemini".
	Provider string
	// OllamaURL is the base URL of the local model server.
	OllamaURL string
	// OllamaModel is the model tag passed to the generate API.
	OllamaModel string
	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	// TimeoutSeconds bounds a single generation call.
	TimeoutSeconds int
}

type Config struct {
	HTTP struct {
		Addr string
		// CORSOrigins are the allowed browser origins, comma separated in env.
		CORSOrigins []string
	}
	LLM  LLMConfig
	Maps struct {
		APIKey string
	}
	Redis struct {
		// Addr is optional; empty disables the destination facts cache.
		Addr string
		// FactsTTLSeconds bounds how long a cached fact sheet is served.
		FactsTTLSeconds int
	}
}

func Load() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TREK_HTTP_ADDR", ":8000")
	cfg.HTTP.CORSOrigins = splitCSV(envOrDefault("TREK_CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"))
	cfg.LLM.Provider = envOrDefault("TREK_LLM_PROVIDER", "ollama")
	cfg.LLM.OllamaURL = envOrDefault("TREK_OLLAMA_URL", "http://localhost:11434")
	cfg.LLM.OllamaModel = envOrDefault("TREK_OLLAMA_MODEL", "llama3.1:8b-instruct-q4_K_M")
	cfg.LLM.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.LLM.OpenAIModel = envOrDefault("TREK_OPENAI_MODEL", "gpt-4o-mini")
	cfg.LLM.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.LLM.TimeoutSeconds = envOrDefaultInt("TREK_LLM_TIMEOUT_SECONDS", 180)
	cfg.Maps.APIKey = os.Getenv("MAPS_API_KEY")
	cfg.Redis.Addr = os.Getenv("TREK_REDIS_ADDR")
	cfg.Redis.FactsTTLSeconds = envOrDefaultInt("TREK_FACTS_TTL_SECONDS", 3600)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
