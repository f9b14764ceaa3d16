package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"seoscan/internal/log"
	"seoscan/internal/service"
	"seoscan/pkg/response"
)

// isoMillis matches the millisecond ISO-8601 form browsers produce.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	response.Success(w, response.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(isoMillis),
	})
}

// SeoDataHandler serves GET /api/seo-data?url=... with the bare SEO record.
func SeoDataHandler(scanner *service.Scanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		target := strings.TrimSpace(r.URL.Query().Get("url"))
		if target == "" {
			writeScanError(w, service.MissingInput())
			return
		}

		record, err := scanner.Scan(r.Context(), target)
		if err != nil {
			writeScanError(w, service.AsScanError(err))
			return
		}

		response.Success(w, record)
	}
}

// SeoReportHandler serves GET /api/seo-report?url=... with the record plus
// the feedback, score and band computed on the server.
func SeoReportHandler(scanner *service.Scanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		target := strings.TrimSpace(r.URL.Query().Get("url"))
		if target == "" {
			writeScanError(w, service.MissingInput())
			return
		}

		report, err := scanner.Report(r.Context(), target)
		if err != nil {
			writeScanError(w, service.AsScanError(err))
			return
		}

		response.Success(w, report)
	}
}

func writeScanError(w http.ResponseWriter, se *service.ScanError) {
	if se.Status >= http.StatusInternalServerError {
		log.Logger.Error("scan failed", zap.String("kind", string(se.Kind)), zap.Error(se))
	}
	response.Error(w, se.Status, se.Message)
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
