package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/talentops/hireboard/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Theme holds dashboard theme configuration
type Theme struct {
	Path string
}

// Flags returns CLI flags for Theme configuration
func (t *Theme) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "theme",
			Usage:       "Path to a YAML file overriding dashboard color and severity styles",
			Category:    "Dashboard",
			Sources:     cli.EnvVars("HIREBOARD_THEME"),
			Destination: &t.Path,
		},
	}
}

// Configure returns the default theme merged with the configured file, if any
func (t *Theme) Configure(ctx context.Context) (*model.Theme, error) {
	if !t.IsConfigured() {
		ctxlog.From(ctx).Debug("Using default dashboard theme")
		return model.DefaultTheme(), nil
	}

	override, err := LoadThemeFromFile(t.Path)
	if err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Info("Loaded dashboard theme",
		slog.String("path", t.Path),
		slog.Int("colors", len(override.Colors)),
		slog.Int("severities", len(override.Severities)),
	)
	return model.DefaultTheme().Merge(override), nil
}

// IsConfigured checks if a theme file is configured
func (t *Theme) IsConfigured() bool {
	return t.Path != ""
}

// LogValue returns structured log value
func (t Theme) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", t.Path),
	)
}

// LoadThemeFromFile loads a theme from YAML file
func LoadThemeFromFile(path string) (*model.Theme, error) {
	if path == "" {
		return nil, goerr.New("theme file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "theme file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read theme file",
			goerr.V("path", path))
	}

	var theme model.Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML theme",
			goerr.V("path", path))
	}

	if err := theme.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid theme",
			goerr.V("path", path))
	}

	return &theme, nil
}
