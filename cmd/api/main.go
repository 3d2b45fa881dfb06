package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"luis-intent-bot/config"
	_ "luis-intent-bot/docs" // Swagger docs
	"luis-intent-bot/internal/bot"
	tgDelivery "luis-intent-bot/internal/bot/delivery/telegram"
	"luis-intent-bot/internal/httpserver"
	"luis-intent-bot/internal/recognizer"
	"luis-intent-bot/pkg/log"
	"luis-intent-bot/pkg/telegram"
)

// @title       LUIS Intent Bot API
// @description Single-turn conversational handler: Telegram webhook in, LUIS intent recognition, one reply out.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting LUIS Intent Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Recognizer registry and turn handler. A broken binding is fatal
	// here, before the first turn is ever accepted.
	registry, err := recognizer.InitializeRecognizers(&cfg.LUIS)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize recognizers: %v", err)
		os.Exit(1)
	}

	turns, err := bot.NewFromRegistry(logger, registry, cfg.LUIS.Binding)
	if err != nil {
		logger.Errorf(ctx, "Failed to construct turn handler: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Turn handler bound to recognizer %q", cfg.LUIS.Binding)

	// 4. Telegram transport
	var telegramHandler tgDelivery.Handler

	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)

		telegramHandler, err = tgDelivery.New(logger, turns, telegramBot, cfg.Webhook)
		if err != nil {
			logger.Errorf(ctx, "Failed to construct Telegram delivery: %v", err)
			os.Exit(1)
		}

		// Register webhook: explicit URL or ngrok local-API autodetect
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(ctx, webhookURL, cfg.Webhook.Secret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram transport skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
