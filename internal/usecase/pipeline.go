package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"NewsAnalyst/internal/config"
	"NewsAnalyst/internal/domain"
	"NewsAnalyst/internal/ports"
)

const fallbackReasoningCap = 200

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Feeds          ports.FeedSource
	Scraper        ports.ArticleScraper
	Generator      ports.Generator
	Logger         *slog.Logger
	Limits         config.PipelineLimits
	DefaultSources []string
}

// Pipeline runs the five-stage news analysis workflow: gather, clean,
// score, extract, report. Stages execute strictly in order; per-item
// failures degrade or drop items but never abort the run.
type Pipeline struct {
	feeds          ports.FeedSource
	scraper        ports.ArticleScraper
	generator      ports.Generator
	logger         *slog.Logger
	limits         config.PipelineLimits
	defaultSources []string
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		feeds:          deps.Feeds,
		scraper:        deps.Scraper,
		generator:      deps.Generator,
		logger:         deps.Logger,
		limits:         deps.Limits,
		defaultSources: deps.DefaultSources,
	}
}

// Run executes all stages against the initial state and returns the final
// state unconditionally. Per-stage failures are captured in state.Errors.
func (p *Pipeline) Run(ctx context.Context, state State) State {
	stages := []struct {
		name string
		fn   func(context.Context, State) Update
	}{
		{"gather_sources", p.gatherSources},
		{"scrape_and_clean", p.scrapeAndClean},
		{"evaluate_trust", p.evaluateTrust},
		{"extract_facts", p.extractFacts},
		{"generate_report", p.generateReport},
	}

	for _, stage := range stages {
		p.debug("stage start", "stage", stage.name)
		state.Apply(stage.fn(ctx, state))
	}

	return state
}

// gatherSources pulls article stubs from every feed, capped per source.
// A failing feed contributes zero stubs and one recorded error.
func (p *Pipeline) gatherSources(ctx context.Context, state State) Update {
	sources := state.Sources
	if len(sources) == 0 {
		sources = p.defaultSources
	}

	update := Update{
		Sources:     sources,
		RawArticles: make([]domain.FeedItem, 0, len(sources)*p.limits.PerSourceCap),
	}

	for _, src := range sources {
		items, err := p.feeds.Fetch(ctx, src, p.limits.PerSourceCap)
		if err != nil {
			p.warn("feed fetch failed", "source", src, "error", err)
			update.Errors = append(update.Errors, fmt.Sprintf("fetch feed %s: %v", src, err))
			continue
		}
		update.RawArticles = append(update.RawArticles, items...)
	}

	p.debug("gathered articles", "count", len(update.RawArticles))
	return update
}

// scrapeAndClean downloads the first MaxArticles candidates and rewrites
// each page through the cleaning prompt. Items without a link, below the
// text threshold, or with a failed scrape or cleaning call are dropped;
// only scrape failures are recorded as state errors.
func (p *Pipeline) scrapeAndClean(ctx context.Context, state State) Update {
	candidates := state.RawArticles
	if len(candidates) > p.limits.MaxArticles {
		candidates = candidates[:p.limits.MaxArticles]
	}

	update := Update{CleanedArticles: make([]domain.Article, 0, len(candidates))}

	for _, item := range candidates {
		if item.Link == "" {
			p.debug("skip article without link", "title", item.Title)
			continue
		}

		article, err := p.scraper.Scrape(ctx, item.Link)
		if err != nil {
			p.warn("scrape failed", "url", item.Link, "error", err)
			update.Errors = append(update.Errors, fmt.Sprintf("scrape %s: %v", item.Link, err))
			continue
		}

		if len(article.Text) < p.limits.MinTextLen {
			p.debug("skip short article", "url", item.Link, "length", len(article.Text))
			continue
		}

		cleaned, err := p.generator.Generate(ctx, cleaningPrompt(clip(article.Text, p.limits.CleanInputCap)))
		if err != nil {
			p.warn("cleaning failed", "url", item.Link, "error", err)
			continue
		}

		article.Text = cleaned
		update.CleanedArticles = append(update.CleanedArticles, article)
	}

	p.debug("cleaned articles", "count", len(update.CleanedArticles))
	return update
}

// evaluateTrust produces exactly one trust score per cleaned article. It
// never drops an article: an unparseable reply or a failed model call
// yields a fallback evaluation with a sentinel score and provenance tag.
func (p *Pipeline) evaluateTrust(ctx context.Context, state State) Update {
	update := Update{TrustScores: make([]domain.TrustScore, 0, len(state.CleanedArticles))}

	for _, article := range state.CleanedArticles {
		authors := strings.Join(article.Authors, ", ")
		if authors == "" {
			authors = "Unknown"
		}
		publishDate := article.PublishDate
		if publishDate == "" {
			publishDate = "Unknown"
		}

		prompt := trustPrompt(article.Title, authors, publishDate, clip(article.Text, p.limits.EvalPreviewCap))

		var evaluation domain.Evaluation
		reply, err := p.generator.Generate(ctx, prompt)
		if err != nil {
			p.warn("trust evaluation failed", "title", article.Title, "error", err)
			evaluation = domain.Evaluation{
				Score:     5.0,
				Reasoning: "Error during evaluation",
				Fallback:  domain.FallbackCall,
			}
		} else {
			evaluation = decodeEvaluation(reply)
		}

		update.TrustScores = append(update.TrustScores, domain.TrustScore{
			ArticleTitle: article.Title,
			URL:          article.URL,
			Evaluation:   evaluation,
		})
	}

	p.debug("evaluated articles", "count", len(update.TrustScores))
	return update
}

// extractFacts requests 3-5 verifiable facts per cleaned article. A failed
// model call omits the article from the output without a state error.
func (p *Pipeline) extractFacts(ctx context.Context, state State) Update {
	update := Update{FactSheets: make([]domain.FactSheet, 0, len(state.CleanedArticles))}

	for _, article := range state.CleanedArticles {
		reply, err := p.generator.Generate(ctx, factPrompt(article.Title, clip(article.Text, p.limits.ExtractInputCap)))
		if err != nil {
			p.warn("fact extraction failed", "title", article.Title, "error", err)
			continue
		}

		update.FactSheets = append(update.FactSheets, domain.FactSheet{
			SourceTitle: article.Title,
			URL:         article.URL,
			Facts:       reply,
		})
	}

	p.debug("extracted facts", "count", len(update.FactSheets))
	return update
}

// generateReport composes the five-section report from facts and scores.
// It always emits a report: empty inputs use placeholder blocks and a
// failed model call yields a degraded report carrying the raw facts.
func (p *Pipeline) generateReport(ctx context.Context, state State) Update {
	facts := formatFactsBlock(state.FactSheets)
	scores := formatScoresBlock(state.TrustScores)

	report, err := p.generator.Generate(ctx, reportPrompt(facts, scores))
	if err != nil {
		p.warn("report generation failed", "error", err)
		report = fmt.Sprintf("Error generating report: %v\n\nRaw facts:\n%s", err, facts)
	}

	return Update{FinalReport: report}
}

// decodeEvaluation strictly parses the model reply, falling back to a
// synthesized record with sentinel score 7.0 when the JSON is malformed.
func decodeEvaluation(reply string) domain.Evaluation {
	var evaluation domain.Evaluation
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &evaluation); err != nil {
		return domain.Evaluation{
			Score:     7.0,
			Reasoning: clip(reply, fallbackReasoningCap),
			RedFlags:  []string{},
			Strengths: []string{},
			Fallback:  domain.FallbackParse,
		}
	}

	evaluation.Score = clampScore(evaluation.Score)
	return evaluation
}

func formatFactsBlock(sheets []domain.FactSheet) string {
	if len(sheets) == 0 {
		return "No facts extracted"
	}

	blocks := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		blocks = append(blocks, fmt.Sprintf("### %s\n%s", sheet.SourceTitle, sheet.Facts))
	}
	return strings.Join(blocks, "\n\n")
}

func formatScoresBlock(scores []domain.TrustScore) string {
	if len(scores) == 0 {
		return "No scores available"
	}

	lines := make([]string, 0, len(scores))
	for _, score := range scores {
		lines = append(lines, fmt.Sprintf("- %s: %.1f/10", score.ArticleTitle, score.Evaluation.Score))
	}
	return strings.Join(lines, "\n")
}

// stripCodeFence removes a surrounding markdown code fence so strict JSON
// decoding still works on fenced replies.
func stripCodeFence(reply string) string {
	trimmed := strings.TrimSpace(reply)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// clip truncates to at most limit runes.
func clip(input string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(input)
	if len(runes) <= limit {
		return input
	}
	return string(runes[:limit])
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
