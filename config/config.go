package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// LUIS intent bot specifics
	Telegram TelegramConfig
	LUIS     LUISConfig
	Webhook  WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// LUISConfig declares the recognizer bindings and which one the bot uses.
type LUISConfig struct {
	Binding string          `yaml:"binding"` // binding name the bot resolves, e.g. "QuizApp"
	Apps    []LUISAppConfig `yaml:"apps"`
}

// LUISAppConfig is one published LUIS application binding.
type LUISAppConfig struct {
	Name            string `yaml:"name"`
	Enabled         bool   `yaml:"enabled"`
	AppID           string `yaml:"app_id"`
	Endpoint        string `yaml:"endpoint"`
	SubscriptionKey string `yaml:"subscription_key"`
}

type WebhookConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
	DedupeSize      int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Telegram transport
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LUIS recognizer bindings
	cfg.LUIS.Binding = viper.GetString("luis.binding")
	if viper.IsSet("luis.apps") {
		appsRaw := viper.Get("luis.apps")
		if appsList, ok := appsRaw.([]interface{}); ok {
			for _, a := range appsList {
				if appMap, ok := a.(map[string]interface{}); ok {
					app := LUISAppConfig{
						Name:            getStringFromMap(appMap, "name"),
						Enabled:         getBoolFromMap(appMap, "enabled"),
						AppID:           getStringFromMap(appMap, "app_id"),
						Endpoint:        getStringFromMap(appMap, "endpoint"),
						SubscriptionKey: getStringFromMap(appMap, "subscription_key"),
					}
					cfg.LUIS.Apps = append(cfg.LUIS.Apps, app)
				}
			}
		}
	}
	// Flat env fallback for a single-app setup
	if appID := viper.GetString("luis_app_id"); appID != "" {
		cfg.LUIS.Apps = append(cfg.LUIS.Apps, LUISAppConfig{
			Name:            cfg.LUIS.Binding,
			Enabled:         true,
			AppID:           appID,
			Endpoint:        viper.GetString("luis_endpoint"),
			SubscriptionKey: viper.GetString("luis_subscription_key"),
		})
	}

	if len(cfg.LUIS.Apps) == 0 {
		return nil, fmt.Errorf("no LUIS apps configured - please add luis.apps section to config.yaml")
	}

	// Webhook hardening
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.DedupeSize = viper.GetInt("webhook.dedupe_size")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("luis.binding", "QuizApp")
	viper.SetDefault("luis_endpoint", "https://westus.api.cognitive.microsoft.com")
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.dedupe_size", 1024)
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}
