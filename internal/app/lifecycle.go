package app

import (
	"os"
	"sync"

	"flexipy-lite/internal/logger"
	"flexipy-lite/internal/shutdown"
)

// Lifecycle runs the shutdown sequence once, whether triggered by the window
// close intercept, a signal, or the event loop returning.
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
	once    sync.Once
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{
		manager: shutdown.NewManager(log),
		logger:  log,
	}
}

// Register adds a resource to close on shutdown
func (l *Lifecycle) Register(name string, closeFn func() error) {
	l.manager.Register(name, closeFn)
}

// OnSignal arranges for quit to be called on SIGINT/SIGTERM
func (l *Lifecycle) OnSignal(quit func()) {
	l.manager.Listen(func(os.Signal) { quit() })
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

		if err := l.manager.Shutdown(); err != nil {
			l.logger.Error("Lifecycle", err, nil)
		}

		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}

// Done is closed once shutdown has begun
func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}
