package handler

import (
	"bytes"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"seoscan/internal/config"
	"seoscan/internal/log"
	"seoscan/internal/service"
	"seoscan/internal/ui"
	"seoscan/internal/util"
)

// IndexHandler serves the empty scan form.
func IndexHandler(renderer *ui.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		renderPage(w, renderer, http.StatusOK, ui.Page{})
	}
}

// ReportPageHandler validates the submitted url, runs a full report and
// renders either the results or an inline error. A failed scan never shows
// partial results.
func ReportPageHandler(scanner *service.Scanner, renderer *ui.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		input := strings.TrimSpace(r.URL.Query().Get("url"))
		page := ui.Page{Input: input}

		if input == "" {
			page.Error = config.ErrEmptyURL
			renderPage(w, renderer, http.StatusBadRequest, page)
			return
		}
		if !util.IsValidURL(input, config.DefaultSEOLimits.HostnameMinLength) {
			page.Error = config.ErrInvalidURL
			renderPage(w, renderer, http.StatusBadRequest, page)
			return
		}

		report, err := scanner.Report(r.Context(), input)
		if err != nil {
			se := service.AsScanError(err)
			if se.Status >= http.StatusInternalServerError {
				log.Logger.Error("scan failed", zap.String("kind", string(se.Kind)), zap.Error(se))
			}
			page.Error = se.Message
			renderPage(w, renderer, se.Status, page)
			return
		}

		page.Report = report
		renderPage(w, renderer, http.StatusOK, page)
	}
}

// renderPage buffers the template output so a render failure can still be
// reported as a 500 instead of a truncated page.
func renderPage(w http.ResponseWriter, renderer *ui.Renderer, status int, page ui.Page) {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, page); err != nil {
		log.Logger.Error("failed to render page", zap.Error(err))
		http.Error(w, config.ErrUnknown, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Logger.Warn("failed to write page", zap.Error(err))
	}
}
