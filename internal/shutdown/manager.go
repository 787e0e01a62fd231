package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"flexipy-lite/internal/logger"
)

// DefaultTimeout bounds how long a single component may take to close
const DefaultTimeout = 10 * time.Second

type component struct {
	name  string
	close func() error
}

// Manager closes registered components in reverse registration order,
// exactly once, on request or on SIGINT/SIGTERM.
type Manager struct {
	components []component
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
	err        error
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger:  log,
		timeout: DefaultTimeout,
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// SetTimeout changes the per-component close timeout
func (m *Manager) SetTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = d
}

// Register adds a component. Components registered after Shutdown are closed
// immediately.
func (m *Manager) Register(name string, closeFn func() error) {
	m.mu.Lock()
	select {
	case <-m.done:
		timeout := m.timeout
		m.mu.Unlock()
		m.closeOne(component{name: name, close: closeFn}, timeout)
		return
	default:
	}
	m.components = append(m.components, component{name: name, close: closeFn})
	m.mu.Unlock()
}

// Listen calls onSignal when the process receives an interrupt. The
// listener stops when the manager shuts down.
func (m *Manager) Listen(onSignal func(os.Signal)) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			onSignal(sig)
		case <-m.ctx.Done():
		}
	}()
}

// Shutdown closes all components and returns their joined errors. Later
// calls return the result of the first.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return m.err
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	var errs []error
	for i := len(m.components) - 1; i >= 0; i-- {
		if err := m.closeOne(m.components[i], m.timeout); err != nil {
			errs = append(errs, err)
		}
	}
	m.err = errors.Join(errs...)

	m.logger.Info("ShutdownManager", "shutdown sequence completed", map[string]interface{}{
		"errors": len(errs),
	})
	return m.err
}

func (m *Manager) closeOne(c component, timeout time.Duration) error {
	result := make(chan error, 1)
	go func() {
		result <- c.close()
	}()

	select {
	case err := <-result:
		if err != nil {
			m.logger.Error("ShutdownManager", err, map[string]interface{}{
				"component": c.name,
			})
			return fmt.Errorf("close %s: %w", c.name, err)
		}
		m.logger.Debug("ShutdownManager", "component closed", map[string]interface{}{
			"component": c.name,
		})
		return nil
	case <-time.After(timeout):
		m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
			"component": c.name,
		})
		return fmt.Errorf("close %s: timed out after %s", c.name, timeout)
	}
}

// Context is cancelled when shutdown begins
func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
