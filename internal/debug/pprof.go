package debug

import (
	"net/http"
	_ "net/http/pprof"

	"go.uber.org/zap"
	"seoscan/internal/log"
)

// StartPprof serves the default mux, where net/http/pprof registers itself,
// on host in the background.
func StartPprof(host string) {
	go func() {
		log.Logger.Info("pprof listening", zap.String("host", host))
		if err := http.ListenAndServe(host, nil); err != nil {
			log.Logger.Error("pprof failed", zap.Error(err))
		}
	}()
}
