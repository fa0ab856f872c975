package vmodel

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger sets the logger used to trace chain walks. Everything is logged at
// debug level. A nil logger turns logging off again.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Named("vmodel"))
}

func log() *zap.Logger { return logger.Load() }
