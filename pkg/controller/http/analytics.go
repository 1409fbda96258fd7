package http

import (
	"bytes"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/talentops/hireboard/pkg/domain/interfaces"
	"github.com/talentops/hireboard/pkg/domain/model"
	"github.com/talentops/hireboard/pkg/utils/apperr"
)

// exportFilename is the attachment name of the workbook download
const exportFilename = "hiring-analytics.xlsx"

// AnalyticsHandler serves the hiring analytics dashboard
type AnalyticsHandler struct {
	analyticsUC interfaces.Analytics
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsUC interfaces.Analytics) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: analyticsUC,
	}
}

// HandlePage renders the dashboard as a full HTML page
func (h *AnalyticsHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, model.FormatHTML, nil)
}

// HandleView returns the display tree as JSON
func (h *AnalyticsHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.analyticsUC.View(r.Context()))
}

// HandleDashboard returns the dashboard figures as JSON
func (h *AnalyticsHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.analyticsUC.Dashboard(r.Context()))
}

// HandleExport returns the dashboard figures as an Excel workbook
func (h *AnalyticsHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, model.FormatXLSX, map[string]string{
		"Content-Disposition": "attachment; filename=" + exportFilename,
	})
}

// render buffers the whole output so that a failed render still yields a clean error response
func (h *AnalyticsHandler) render(w http.ResponseWriter, r *http.Request, format model.Format, headers map[string]string) {
	var buf bytes.Buffer
	if err := h.analyticsUC.Render(r.Context(), &buf, format); err != nil {
		writeError(w, r, goerr.Wrap(err, "failed to render dashboard", goerr.V("format", format)),
			http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	for k, v := range headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		apperr.Handle(r.Context(), goerr.Wrap(err, "failed to write response"), "path", r.URL.Path)
	}
}
