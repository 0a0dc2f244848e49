package governance

import (
	"fmt"
	"sync"
)

// ExecutorFunc adapts a plain function into an Executor.
type ExecutorFunc func(target string, callData []byte) error

func (f ExecutorFunc) Invoke(target string, callData []byte) error {
	return f(target, callData)
}

// TargetRegistry dispatches target invocations to handlers registered per
// address. It is the node's in-process call surface: a succeeded proposal's
// `target` selects the handler, `callData` is handed over opaque.
type TargetRegistry struct {
	sync.RWMutex

	handlers map[string]ExecutorFunc
}

func NewTargetRegistry() *TargetRegistry {
	return &TargetRegistry{
		handlers: map[string]ExecutorFunc{},
	}
}

func (r *TargetRegistry) Register(target string, handler ExecutorFunc) {
	r.Lock()
	defer r.Unlock()

	r.handlers[target] = handler
}

func (r *TargetRegistry) Invoke(target string, callData []byte) error {
	r.RLock()
	handler, found := r.handlers[target]
	r.RUnlock()

	if !found {
		return fmt.Errorf("no handler registered for target '%s'", target)
	}

	return handler(target, callData)
}
