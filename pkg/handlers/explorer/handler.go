package explorer

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/de-tools/heightweight/pkg/adapters"
	"github.com/de-tools/heightweight/pkg/models/api"
	"github.com/de-tools/heightweight/pkg/render"
	"github.com/de-tools/heightweight/pkg/services/explorer"
	"github.com/rs/zerolog"
)

type Handler struct {
	explorer  explorer.Explorer
	chartOpts render.Options
	page      *template.Template
}

func NewHandler(exp explorer.Explorer, chartOpts render.Options) *Handler {
	return &Handler{
		explorer:  exp,
		chartOpts: chartOpts,
		page:      template.Must(template.New("index").Parse(indexTemplate)),
	}
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := h.explorer.Snapshot(r.Context())
	writeJSON(w, r, http.StatusOK, adapters.MapDomainSnapshotToApi(snap))
}

func (h *Handler) RefreshSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := h.explorer.Refresh(r.Context())
	writeJSON(w, r, http.StatusOK, adapters.MapDomainSnapshotToApi(snap))
}

// RefreshPage regenerates the sample from the HTML form and sends the browser
// back to the index page.
func (h *Handler) RefreshPage(w http.ResponseWriter, r *http.Request) {
	h.explorer.Refresh(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) GetChart(format render.Format) http.HandlerFunc {
	contentType := "image/svg+xml"
	if format == render.FormatPNG {
		contentType = "image/png"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context())
		snap := h.explorer.Snapshot(r.Context())

		ch, err := render.NewChart(snap, h.chartOpts)
		if errors.Is(err, render.ErrNoData) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if err != nil {
			logger.Error().Err(err).Msg("failed to build chart")
			http.Error(w, "failed to build chart", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := render.Write(&buf, ch, format); err != nil {
			logger.Error().
				Err(err).
				Str("run_id", snap.RunID).
				Str("format", string(format)).
				Msg("failed to render chart")
			http.Error(w, "failed to render chart", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-store")
		if _, err := buf.WriteTo(w); err != nil {
			logger.Error().Err(err).Msg("failed to write chart")
		}
	}
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	snap := adapters.MapDomainSnapshotToApi(h.explorer.Snapshot(r.Context()))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page.Execute(w, pageData{Snapshot: snap}); err != nil {
		logger.Error().Err(err).Msg("failed to render index page")
	}
}

type pageData struct {
	Snapshot api.Snapshot
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
