package poller

import (
	"context"
	"sync"
)

// Runner is a poll loop owned by a Registry.
type Runner interface {
	Run(ctx context.Context)
	Trigger()
}

type watch struct {
	runner Runner
	cancel context.CancelFunc
	done   chan struct{}
}

// Registry keeps named watches. Each watch lives from Open until Close, like the
// screen that owns it.
type Registry struct {
	mu      sync.Mutex
	parent  context.Context
	watches map[string]*watch
}

func NewRegistry(ctx context.Context) *Registry {
	return &Registry{
		parent:  ctx,
		watches: make(map[string]*watch),
	}
}

// Open starts the runner built by newRunner under key unless a watch with that key
// is already running. It reports whether a new watch was started.
func (r *Registry) Open(key string, newRunner func() Runner) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.watches[key]; ok {
		return false
	}
	if r.parent.Err() != nil {
		return false
	}

	ctx, cancel := context.WithCancel(r.parent)
	w := &watch{runner: newRunner(), cancel: cancel, done: make(chan struct{})}
	r.watches[key] = w
	watchesOpen.Inc()

	go func() {
		defer close(w.done)
		w.runner.Run(ctx)
	}()
	return true
}

// Close cancels the watch and waits for its loop to return. Results of fetches
// still in flight are discarded.
func (r *Registry) Close(key string) bool {
	r.mu.Lock()
	w, ok := r.watches[key]
	if ok {
		delete(r.watches, key)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	w.cancel()
	<-w.done
	watchesOpen.Dec()
	return true
}

func (r *Registry) Trigger(key string) bool {
	r.mu.Lock()
	w, ok := r.watches[key]
	r.mu.Unlock()
	if ok {
		w.runner.Trigger()
	}
	return ok
}

func (r *Registry) TriggerAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.watches {
		w.runner.Trigger()
	}
}

func (r *Registry) IsOpen(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.watches[key]
	return ok
}

func (r *Registry) CloseAll() {
	r.mu.Lock()
	keys := make([]string, 0, len(r.watches))
	for k := range r.watches {
		keys = append(keys, k)
	}
	r.mu.Unlock()

	for _, k := range keys {
		r.Close(k)
	}
}
