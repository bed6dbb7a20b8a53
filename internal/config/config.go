package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "NEWS_ANALYST_CONFIG"
	geminiAPIKeyEnv   = "GEMINI_API_KEY"
	openAIAPIKeyEnv   = "OPENAI_API_KEY"
	modelEnv          = "NEWS_ANALYST_MODEL"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig       `yaml:"logging"`
	LLM           LLMConfig           `yaml:"llm"`
	Pipeline      PipelineLimits      `yaml:"pipeline"`
	SourceSets    map[string][]string `yaml:"sourceSets"`
	Notifications NotificationConfig  `yaml:"notifications"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LLMConfig selects and configures the text-generation backend.
type LLMConfig struct {
	Provider       string `yaml:"provider"` // "gemini" or "openai"
	Model          string `yaml:"model"`
	GeminiAPIKey   string `yaml:"geminiApiKey"`
	OpenAIEndpoint string `yaml:"openaiEndpoint"`
	OpenAIAPIKey   string `yaml:"openaiApiKey"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// Timeout resolves the per-call model timeout.
func (l LLMConfig) Timeout() time.Duration {
	if l.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// PipelineLimits consolidates the per-stage truncation and cutoff knobs.
type PipelineLimits struct {
	PerSourceCap    int `yaml:"perSourceCap"`
	MaxArticles     int `yaml:"maxArticles"`
	MinTextLen      int `yaml:"minTextLen"`
	CleanInputCap   int `yaml:"cleanInputCap"`
	EvalPreviewCap  int `yaml:"evalPreviewCap"`
	ExtractInputCap int `yaml:"extractInputCap"`
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// Sources resolves a named source set, falling back to the default set.
func (c Config) Sources(set string) []string {
	if set != "" {
		if urls, ok := c.SourceSets[set]; ok && len(urls) > 0 {
			return urls
		}
	}
	return c.SourceSets["default"]
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(geminiAPIKeyEnv); v != "" {
		c.LLM.GeminiAPIKey = v
	}

	if v := os.Getenv(openAIAPIKeyEnv); v != "" {
		c.LLM.OpenAIAPIKey = v
	}

	if v := os.Getenv(modelEnv); v != "" {
		c.LLM.Model = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.LLM.Provider != "" {
		base.LLM.Provider = override.LLM.Provider
	}
	if override.LLM.Model != "" {
		base.LLM.Model = override.LLM.Model
	}
	if override.LLM.GeminiAPIKey != "" {
		base.LLM.GeminiAPIKey = override.LLM.GeminiAPIKey
	}
	if override.LLM.OpenAIEndpoint != "" {
		base.LLM.OpenAIEndpoint = override.LLM.OpenAIEndpoint
	}
	if override.LLM.OpenAIAPIKey != "" {
		base.LLM.OpenAIAPIKey = override.LLM.OpenAIAPIKey
	}
	if override.LLM.TimeoutSeconds > 0 {
		base.LLM.TimeoutSeconds = override.LLM.TimeoutSeconds
	}

	if override.Pipeline.PerSourceCap > 0 {
		base.Pipeline.PerSourceCap = override.Pipeline.PerSourceCap
	}
	if override.Pipeline.MaxArticles > 0 {
		base.Pipeline.MaxArticles = override.Pipeline.MaxArticles
	}
	if override.Pipeline.MinTextLen > 0 {
		base.Pipeline.MinTextLen = override.Pipeline.MinTextLen
	}
	if override.Pipeline.CleanInputCap > 0 {
		base.Pipeline.CleanInputCap = override.Pipeline.CleanInputCap
	}
	if override.Pipeline.EvalPreviewCap > 0 {
		base.Pipeline.EvalPreviewCap = override.Pipeline.EvalPreviewCap
	}
	if override.Pipeline.ExtractInputCap > 0 {
		base.Pipeline.ExtractInputCap = override.Pipeline.ExtractInputCap
	}

	for name, urls := range override.SourceSets {
		if len(urls) > 0 {
			base.SourceSets[name] = urls
		}
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		LLM: LLMConfig{
			Provider:       "gemini",
			Model:          "gemini-1.5-flash",
			OpenAIEndpoint: "https://api.openai.com/v1/chat/completions",
			TimeoutSeconds: 60,
		},
		Pipeline: PipelineLimits{
			PerSourceCap:    5,
			MaxArticles:     8,
			MinTextLen:      200,
			CleanInputCap:   3000,
			EvalPreviewCap:  800,
			ExtractInputCap: 4000,
		},
		SourceSets: map[string][]string{
			"default": {
				"https://news.google.com/rss/search?q=technology",
				"https://feeds.bbci.co.uk/news/technology/rss.xml",
				"https://rss.nytimes.com/services/xml/rss/nyt/Technology.xml",
			},
			"world": {
				"https://feeds.bbci.co.uk/news/world/rss.xml",
				"https://rss.nytimes.com/services/xml/rss/nyt/World.xml",
			},
		},
		Notifications: NotificationConfig{
			Telegram: TelegramConfig{BotToken: "", ChatID: ""},
		},
	}
}
