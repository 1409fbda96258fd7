package usecase

import (
	"context"
	"io"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/talentops/hireboard/pkg/domain/model"
	"github.com/talentops/hireboard/pkg/service/view"
)

// Analytics provides the hiring analytics dashboard
type Analytics struct {
	theme *model.Theme
}

// NewAnalytics creates a new Analytics use case. A nil theme selects the default theme.
func NewAnalytics(theme *model.Theme) (*Analytics, error) {
	if theme == nil {
		theme = model.DefaultTheme()
	}
	if err := theme.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid theme")
	}

	dashboard := model.HiringAnalytics()
	if err := dashboard.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid dashboard figures")
	}
	if err := theme.Covers(dashboard); err != nil {
		return nil, goerr.Wrap(err, "theme does not cover dashboard")
	}

	return &Analytics{theme: theme}, nil
}

// Dashboard returns a fresh copy of the dashboard figures
func (uc *Analytics) Dashboard(ctx context.Context) *model.Dashboard {
	return model.HiringAnalytics()
}

// View builds the display tree of the dashboard
func (uc *Analytics) View(ctx context.Context) *view.Node {
	return view.AnalyticsView(model.HiringAnalytics(), uc.theme)
}

// Render writes the dashboard in the given format
func (uc *Analytics) Render(ctx context.Context, w io.Writer, format model.Format) error {
	ctxlog.From(ctx).Debug("Rendering analytics dashboard", "format", format)

	switch format {
	case model.FormatHTML:
		d := uc.Dashboard(ctx)
		return view.WritePage(w, d.Title, view.AnalyticsView(d, uc.theme))

	case model.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(uc.View(ctx)); err != nil {
			return goerr.Wrap(err, "failed to encode display tree")
		}
		return nil

	case model.FormatText:
		return view.WriteText(w, uc.Dashboard(ctx))

	case model.FormatXLSX:
		return view.WriteXLSX(w, uc.Dashboard(ctx))

	default:
		return goerr.Wrap(model.ErrUnsupportedFormat, "cannot render dashboard", goerr.V("format", format))
	}
}
