package app

import (
	"sync"
	"sync/atomic"

	"artspace/internal/events"
	"artspace/internal/gui"
	"artspace/internal/logger"
)

type Lifecycle struct {
	broker     *events.Broker
	guiManager *gui.Manager
	logger     logger.Logger

	once       sync.Once
	isShutdown atomic.Bool
}

func NewLifecycle(broker *events.Broker, gm *gui.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		broker:     broker,
		guiManager: gm,
		logger:     log,
	}
}

// Shutdown is safe to call more than once; only the first call does anything.
func (l *Lifecycle) Shutdown() {
	l.once.Do(l.shutdown)
}

func (l *Lifecycle) IsShutdown() bool {
	return l.isShutdown.Load()
}

func (l *Lifecycle) shutdown() {
	l.isShutdown.Store(true)
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	// Stop event delivery before tearing down the view that receives it.
	if l.broker != nil {
		l.broker.Close()
		l.logger.Debug("Lifecycle", "broker closed", nil)
	}

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
