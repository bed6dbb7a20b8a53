package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsCarryOriginalLimits(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, 5, cfg.Pipeline.PerSourceCap)
	assert.Equal(t, 8, cfg.Pipeline.MaxArticles)
	assert.Equal(t, 200, cfg.Pipeline.MinTextLen)
	assert.Equal(t, 3000, cfg.Pipeline.CleanInputCap)
	assert.Equal(t, 800, cfg.Pipeline.EvalPreviewCap)
	assert.Equal(t, 4000, cfg.Pipeline.ExtractInputCap)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.NotEmpty(t, cfg.SourceSets["default"])
}

func TestEnvOverridesWinOverDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("NEWS_ANALYST_MODEL", "gemini-2.0-flash")
	t.Setenv("NEWS_ANALYST_CONFIG", "")

	cfg := Load()

	assert.Equal(t, "env-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
}

func TestLoadMergesYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
logging:
  level: warn
llm:
  provider: openai
  timeoutSeconds: 30
pipeline:
  maxArticles: 3
sourceSets:
  custom:
    - https://feeds.example.org/custom.xml
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	t.Setenv("NEWS_ANALYST_CONFIG", path)
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("NEWS_ANALYST_MODEL", "")

	cfg := Load()

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout())
	assert.Equal(t, 3, cfg.Pipeline.MaxArticles)
	// untouched knobs keep their defaults
	assert.Equal(t, 5, cfg.Pipeline.PerSourceCap)
	assert.Equal(t, []string{"https://feeds.example.org/custom.xml"}, cfg.Sources("custom"))
}

func TestSourcesFallsBackToDefaultSet(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, cfg.SourceSets["default"], cfg.Sources("does-not-exist"))
	assert.Equal(t, cfg.SourceSets["world"], cfg.Sources("world"))
}
