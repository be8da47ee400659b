package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/airep24/server/internal/api"
	"github.com/airep24/server/internal/assistant/graph"
	"github.com/airep24/server/internal/assistant/model"
	"github.com/airep24/server/internal/assistant/repo"
	"github.com/airep24/server/internal/core"
	"github.com/airep24/server/internal/notify"
	"github.com/airep24/server/internal/shopify"
	logx "github.com/airep24/server/pkg/logger"
	pkgredis "github.com/airep24/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the service, sourced from
// environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	Port        int    `envconfig:"PORT" default:"3000"`

	// Infrastructure
	Redis pkgredis.Config

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Chat configs
	Response     model.ResponseModelConfig
	Conversation model.ConversationConfig

	Shopify struct {
		APIVersion string `envconfig:"SHOPIFY_API_VERSION" default:"2026-04"`
	}

	Telegram struct {
		Token  string `envconfig:"TELEGRAM_BOT_TOKEN"`
		ChatID int64  `envconfig:"TELEGRAM_CHAT_ID"`
	}
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(envCfg.Environment)})

	rdb, err := envCfg.Redis.New()
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to initialise Redis client")
	}
	defer rdb.Close()
	logx.Info().Msg("Connected to Redis")

	runner, err := graph.BuildChatGraph(ctx, graph.Config{
		APIKey:        envCfg.APIKey,
		BaseURL:       envCfg.BaseURL,
		ResponseModel: envCfg.Response,
		Conversation:  envCfg.Conversation,
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to build chat graph")
	}

	var notifier notify.Notifier = notify.NoopNotifier{}
	if envCfg.Telegram.Token != "" && envCfg.Telegram.ChatID != 0 {
		tn, err := notify.NewTelegramNotifier(envCfg.Telegram.Token, envCfg.Telegram.ChatID)
		if err != nil {
			logx.Warn().Err(err).Msg("Telegram notifier disabled")
		} else {
			notifier = tn
		}
	}

	stores := repo.NewRedisStoreRepository(rdb)

	server := api.NewServer(envCfg.Port, &api.Handlers{
		Runner:       runner,
		Profiles:     stores,
		Knowledge:    stores,
		Widgets:      stores,
		Admin:        shopify.NewSessionStore(rdb, envCfg.Shopify.APIVersion),
		Notifier:     notifier,
		KnowledgeMax: envCfg.Conversation.KnowledgeMaxItems,
	})

	if err := server.Start(); err != nil {
		logx.Fatal().Err(err).Msg("Server shutdown failed")
	}
	logx.Info().Msg("Server stopped")
}
