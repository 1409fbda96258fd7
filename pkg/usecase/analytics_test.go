package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/gt"
	"github.com/talentops/hireboard/pkg/domain/model"
	"github.com/talentops/hireboard/pkg/domain/types"
	"github.com/talentops/hireboard/pkg/service/view"
	"github.com/talentops/hireboard/pkg/usecase"
)

func TestNewAnalytics(t *testing.T) {
	t.Run("nil theme selects default", func(t *testing.T) {
		uc, err := usecase.NewAnalytics(nil)
		gt.NoError(t, err).Required()
		gt.V(t, uc).NotNil()
	})

	t.Run("error when theme is invalid", func(t *testing.T) {
		theme := model.DefaultTheme()
		theme.Colors[types.ColorBlue] = model.Palette{Bar: "bg-blue-500"}
		_, err := usecase.NewAnalytics(theme)
		gt.Error(t, err)
	})

	t.Run("error when theme misses a used tag", func(t *testing.T) {
		theme := model.DefaultTheme()
		delete(theme.Severities, types.SeverityHigh)
		_, err := usecase.NewAnalytics(theme)
		gt.Error(t, err)
	})
}

func TestAnalyticsView(t *testing.T) {
	uc, err := usecase.NewAnalytics(nil)
	gt.NoError(t, err).Required()
	ctx := context.Background()

	root := uc.View(ctx)
	gt.Equal(t, root.CountRole(view.RoleSummaryCard), 3)
	gt.Equal(t, root.CountRole(view.RoleSpeedBar), 4)
	gt.Equal(t, root.CountRole(view.RoleSkillRow), 3)
	gt.Equal(t, root.CountRole(view.RoleCountryRow), 3)

	// mutating a returned dashboard does not leak into later renders
	d := uc.Dashboard(ctx)
	d.Cards[0].Value = "99 Days"
	gt.S(t, uc.View(ctx).TextContent()).Contains("18 Days")
	gt.Equal(t, uc.Dashboard(ctx).Cards[0].Value, "18 Days")
}

func TestAnalyticsRender(t *testing.T) {
	uc, err := usecase.NewAnalytics(nil)
	gt.NoError(t, err).Required()
	ctx := context.Background()

	t.Run("html", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, uc.Render(ctx, &buf, model.FormatHTML))
		gt.S(t, buf.String()).Contains("<!DOCTYPE html>")
		gt.S(t, buf.String()).Contains("<title>Hiring Analytics</title>")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, uc.Render(ctx, &buf, model.FormatJSON))

		var root view.Node
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &root)).Required()
		gt.Equal(t, root.Role, view.RoleAnalyticsView)
		gt.Equal(t, root.CountRole(view.RoleSpeedBar), 4)
		gt.Equal(t, root, *uc.View(ctx))
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, uc.Render(ctx, &buf, model.FormatText))
		gt.S(t, buf.String()).Contains("Source Country Pipeline")
	})

	t.Run("xlsx", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, uc.Render(ctx, &buf, model.FormatXLSX))
		// xlsx files are zip archives
		gt.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
	})

	t.Run("unsupported format", func(t *testing.T) {
		var buf bytes.Buffer
		err := uc.Render(ctx, &buf, model.Format("pdf"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrUnsupportedFormat))
		gt.Equal(t, buf.Len(), 0)
	})

	t.Run("repeated renders are identical", func(t *testing.T) {
		var first, second bytes.Buffer
		gt.NoError(t, uc.Render(ctx, &first, model.FormatHTML))
		gt.NoError(t, uc.Render(ctx, &second, model.FormatHTML))
		gt.Equal(t, first.String(), second.String())
	})
}
