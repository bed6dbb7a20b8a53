package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWritesArtifact(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "report.pdf")
	renderer := NewPDFRenderer(out)

	path, err := renderer.Render(
		"## Executive Summary\nEverything is fine.",
		[]string{"https://feeds.example.org/a.xml"},
		[]string{"fetch feed https://feeds.example.org/b.xml: timeout"},
	)
	require.NoError(t, err)
	assert.Equal(t, out, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderHandlesEmptySections(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "report.pdf")
	renderer := NewPDFRenderer(out)

	_, err := renderer.Render("degraded report", nil, nil)
	assert.NoError(t, err)
}

func TestRenderRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	renderer := NewPDFRenderer("")
	_, err := renderer.Render("report", nil, nil)
	assert.Error(t, err)
}
