package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/mbaird/lensgate/internal/config"
	"github.com/mbaird/lensgate/internal/logging"
	"github.com/mbaird/lensgate/internal/query"
	"github.com/mbaird/lensgate/internal/search"
	"github.com/mbaird/lensgate/internal/transcribe"
	"github.com/mbaird/lensgate/internal/vision"
	"github.com/mbaird/lensgate/internal/vision/claude"
	"github.com/mbaird/lensgate/internal/vision/gemini"
	"github.com/mbaird/lensgate/internal/vision/openai"
	"github.com/mbaird/lensgate/internal/web"
)

func main() {
	// Absent .env is fine; config falls back to the process environment.
	_ = godotenv.Load()

	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	router := vision.NewRouter(logger)
	router.Register(vision.ProviderClaude, claude.NewClient(cfg.ClaudeAPIKey, cfg.VisionTimeout))
	router.Register(vision.ProviderOpenAI, openai.NewClient(cfg.OpenAIAPIKey, cfg.VisionTimeout))
	router.Register(vision.ProviderGemini, gemini.NewClient(cfg.GeminiAPIKey, cfg.VisionTimeout))

	var service *query.Service
	if cfg.BraveAPIKey != "" {
		brave := search.NewBraveClient(cfg.BraveAPIKey, cfg.SearchTimeout)
		coordinator := search.NewCoordinator(router, brave, logger)
		service = query.NewService(router, coordinator, logger)
	} else {
		logger.Info("BRAVE_SEARCH_API_KEY not set, search augmentation disabled")
		service = query.NewService(router, nil, logger)
	}

	transcriber := transcribe.NewClient(cfg.OpenAIAPIKey, cfg.TranscribeTimeout)

	server := web.NewServer(service, transcriber, logger)
	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
