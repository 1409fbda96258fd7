package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/talentops/hireboard/pkg/cli"
)

func runRender(t *testing.T, args ...string) (string, error) {
	t.Helper()
	output := filepath.Join(t.TempDir(), "dashboard.out")
	base := []string{"hireboard", "--log-format", "json", "--log-level", "error", "render", "--output", output}
	err := cli.Run(context.Background(), append(base, args...))
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(output)
	gt.NoError(t, err).Required()
	return string(data), nil
}

func TestRenderCommand(t *testing.T) {
	t.Run("text is the default format", func(t *testing.T) {
		out, err := runRender(t)
		gt.NoError(t, err).Required()
		gt.S(t, out).Contains("Hiring Analytics")
		gt.S(t, out).Contains("18 Days")
	})

	t.Run("html", func(t *testing.T) {
		out, err := runRender(t, "--format", "html")
		gt.NoError(t, err).Required()
		gt.S(t, out).Contains("<!DOCTYPE html>")
		gt.Equal(t, strings.Count(out, `data-role="summary-card"`), 3)
		gt.Equal(t, strings.Count(out, `data-role="country-row"`), 3)
	})

	t.Run("json", func(t *testing.T) {
		out, err := runRender(t, "-f", "json")
		gt.NoError(t, err).Required()
		gt.S(t, out).Contains(`"role": "analytics-view"`)
	})

	t.Run("xlsx", func(t *testing.T) {
		out, err := runRender(t, "--format", "xlsx")
		gt.NoError(t, err).Required()
		gt.True(t, strings.HasPrefix(out, "PK"))
	})

	t.Run("error when format is unknown", func(t *testing.T) {
		_, err := runRender(t, "--format", "pdf")
		gt.Error(t, err)
	})

	t.Run("theme file is applied", func(t *testing.T) {
		themePath := filepath.Join(t.TempDir(), "theme.yaml")
		gt.NoError(t, os.WriteFile(themePath, []byte(`
severities:
  high:
    bar: alarm-bar
    text: alarm-text
    badge: alarm-badge
`), 0600)).Required()

		out, err := runRender(t, "--format", "html", "--theme", themePath)
		gt.NoError(t, err).Required()
		gt.S(t, out).Contains("alarm-badge")
	})

	t.Run("error when theme file is missing", func(t *testing.T) {
		_, err := runRender(t, "--theme", filepath.Join(t.TempDir(), "missing.yaml"))
		gt.Error(t, err)
	})
}

func TestRunInvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{"hireboard", "--log-level", "verbose", "render"})
	gt.Error(t, err)
}
