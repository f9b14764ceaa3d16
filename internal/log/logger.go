package log

import (
	"go.uber.org/zap"
)

var Logger *zap.Logger

// InitLogger installs the development logger. It runs before the config is
// loaded so that config errors can be reported.
func InitLogger() {
	l, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	Logger = l
}

// UseProduction swaps the logger for zap's JSON production logger once we
// know we are not running in dev mode.
func UseProduction() {
	l, err := zap.NewProduction()
	if err != nil {
		Logger.Error("failed to build production logger", zap.Error(err))
		return
	}
	Sync()
	Logger = l
}

func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
