package router

import (
	"net/http"

	"seoscan/internal/api/v1/handler"
	"seoscan/internal/api/v1/middleware"
	"seoscan/internal/config"
	"seoscan/internal/log"
	"seoscan/internal/service"
	"seoscan/internal/ui"
	"seoscan/pkg/response"
)

func New(scanner *service.Scanner, renderer *ui.Renderer) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", handler.HealthCheckHandler)
	mux.HandleFunc("/api/seo-data", handler.SeoDataHandler(scanner))
	mux.HandleFunc("/api/seo-report", handler.SeoReportHandler(scanner))

	mux.HandleFunc("/{$}", handler.IndexHandler(renderer))
	mux.HandleFunc("/report", handler.ReportPageHandler(scanner, renderer))

	return middleware.RecoverPanic(
		log.Logger,
		func(w http.ResponseWriter, r *http.Request, err error) {
			response.Error(w, http.StatusInternalServerError, config.ErrUnknown)
		},
		middleware.Logging(
			middleware.Metrics(mux),
		),
	)
}

func NewMetricsRouter() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler.MetricsHandler())
	return mux
}
