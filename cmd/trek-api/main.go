// README: Entry point; loads config, wires the model backend and services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"trek/internal/config"
	"trek/internal/destinations"
	httptransport "trek/internal/http"
	"trek/internal/infra"
	"trek/internal/llm"
	"trek/internal/planner"
	"trek/internal/suggest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	completer, cleanup, err := newCompleter(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("completion backend init: %v", err)
	}
	defer cleanup()

	facts := newFactProvider(cfg)

	plannerSvc := planner.NewService(completer, facts)
	suggestSvc := suggest.NewService(completer)

	handler := httptransport.NewRouter(plannerSvc, suggestSvc)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.HTTP.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: c.Handler(handler)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("trek-api listening on %s (provider=%s)", cfg.HTTP.Addr, cfg.LLM.Provider)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// newCompleter selects the completion backend from config. The returned
// cleanup is a no-op for backends without resources to release.
func newCompleter(ctx context.Context, cfg config.LLMConfig) (llm.Completer, func(), error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	switch cfg.Provider {
	case "ollama":
		return llm.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, timeout), func() {}, nil
	case "openai":
		if cfg.OpenAIKey == "" {
			log.Fatal("OPENAI_API_KEY is required for the openai provider")
		}
		return llm.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel), func() {}, nil
	case "gemini":
		if cfg.GeminiKey == "" {
			log.Fatal("GEMINI_API_KEY is required for the gemini provider")
		}
		provider, err := llm.NewGeminiProvider(ctx, cfg.GeminiKey)
		if err != nil {
			return nil, nil, err
		}
		return provider, provider.Close, nil
	default:
		log.Fatalf("unknown LLM provider %q", cfg.Provider)
		return nil, nil, nil
	}
}

// newFactProvider builds the destination fact provider chain: live Places
// lookup when a key is configured, static sheets otherwise, optionally
// wrapped in a redis cache.
func newFactProvider(cfg config.Config) destinations.Provider {
	var provider destinations.Provider
	if cfg.Maps.APIKey != "" {
		p, err := destinations.NewPlacesProvider(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("places provider init: %v", err)
		}
		provider = p
	} else {
		provider = destinations.NewStaticProvider()
	}

	if cfg.Redis.Addr != "" {
		ttl := time.Duration(cfg.Redis.FactsTTLSeconds) * time.Second
		provider = destinations.NewCachedProvider(provider, infra.NewRedis(cfg.Redis.Addr), ttl)
	}
	return provider
}
