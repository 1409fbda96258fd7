package interfaces

import (
	"context"
	"io"

	"github.com/talentops/hireboard/pkg/domain/model"
	"github.com/talentops/hireboard/pkg/service/view"
)

// Analytics renders the hiring analytics dashboard
type Analytics interface {
	// Dashboard returns the figures of one render pass
	Dashboard(ctx context.Context) *model.Dashboard

	// View builds the display tree of the dashboard
	View(ctx context.Context) *view.Node

	// Render writes the dashboard in the given format
	Render(ctx context.Context, w io.Writer, format model.Format) error
}
