package app

import (
	"context"
	"fmt"
	"log/slog"

	"NewsAnalyst/internal/config"
	"NewsAnalyst/internal/infrastructure/feed"
	"NewsAnalyst/internal/infrastructure/llm"
	"NewsAnalyst/internal/infrastructure/render"
	"NewsAnalyst/internal/infrastructure/scrape"
	"NewsAnalyst/internal/infrastructure/telegram"
	"NewsAnalyst/internal/logging"
	"NewsAnalyst/internal/ports"
	"NewsAnalyst/internal/usecase"
)

// Application wires configs to the pipeline and its optional outputs.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
	notifier ports.Notifier
	renderer ports.Renderer
	logger   *slog.Logger
}

// New builds a runnable application instance. The only error it returns is
// a configuration failure (no usable model credential); everything after
// this point is absorbed by the pipeline's per-stage policies.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger, pdfPath string) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	generator, err := buildGenerator(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Feeds:          feed.NewSource(nil, baseLogger.With("component", "feeds")),
		Scraper:        scrape.NewReadabilityScraper(nil, baseLogger.With("component", "scraper")),
		Generator:      generator,
		Logger:         baseLogger.With("component", "pipeline"),
		Limits:         cfg.Pipeline,
		DefaultSources: cfg.Sources("default"),
	})

	application := &Application{
		cfg:      cfg,
		pipeline: pipeline,
		logger:   baseLogger,
	}

	if tg := cfg.Notifications.Telegram; tg.BotToken != "" && tg.ChatID != "" {
		application.notifier = telegram.NewNotifier(tg)
	}
	if pdfPath != "" {
		application.renderer = render.NewPDFRenderer(pdfPath)
	}

	return application, nil
}

// Run executes the pipeline once and dispatches the report to the optional
// renderer and notifier. Output failures are logged, never propagated.
func (a *Application) Run(ctx context.Context, query string, sources []string) usecase.State {
	state := a.pipeline.Run(ctx, usecase.NewState(query, sources))

	if a.renderer != nil {
		path, err := a.renderer.Render(state.FinalReport, state.Sources, state.Errors)
		if err != nil {
			a.logger.Warn("rendering unavailable", "error", err)
		} else {
			a.logger.Info("report rendered", "path", path)
		}
	}

	if a.notifier != nil {
		if err := a.notifier.PublishDigest(ctx, state.FinalReport); err != nil {
			a.logger.Warn("digest delivery failed", "error", err)
		}
	}

	return state
}

func buildGenerator(ctx context.Context, cfg config.LLMConfig) (ports.Generator, error) {
	switch cfg.Provider {
	case "", "gemini":
		return llm.NewGeminiClient(ctx, cfg)
	case "openai":
		return llm.NewChatGPTClient(cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
