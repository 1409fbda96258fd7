package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/talentops/hireboard/pkg/cli/config"
	"github.com/talentops/hireboard/pkg/domain/model"
	"github.com/talentops/hireboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRender() *cli.Command {
	var (
		themeCfg config.Theme
		format   string
		output   string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format (html, json, text, xlsx)",
				Value:       "text",
				Destination: &format,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file path (default: stdout)",
				Destination: &output,
			},
		},
		themeCfg.Flags(),
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Render the analytics dashboard once",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			f, err := model.ParseFormat(format)
			if err != nil {
				return err
			}

			theme, err := themeCfg.Configure(ctx)
			if err != nil {
				return err
			}

			analyticsUC, err := usecase.NewAnalytics(theme)
			if err != nil {
				return goerr.Wrap(err, "failed to create analytics use case")
			}

			var w io.Writer = os.Stdout
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
				}
				defer file.Close()
				w = file
			}

			if err := analyticsUC.Render(ctx, w, f); err != nil {
				return goerr.Wrap(err, "failed to render dashboard", goerr.V("format", f))
			}

			if output != "" {
				ctxlog.From(ctx).Info("Dashboard written",
					slog.String("path", output),
					slog.String("format", f.String()),
				)
			}
			return nil
		},
	}
}
