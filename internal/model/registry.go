package model

import (
	"sync"

	"github.com/MeKo-Tech/langid/internal/language"
)

// registryKey identifies one cached model. The models directory is part of
// the key so detectors pointed at different model sets never share entries.
type registryKey struct {
	dir   string
	lang  language.Language
	order int
	kind  Kind
}

// inflight tracks one in-progress load so concurrent callers for the same
// key wait for it instead of duplicating the I/O.
type inflight struct {
	done chan struct{}
	prob *ProbabilityModel
	cnt  *CountModel
	err  error
}

// Registry is a process-wide cache of loaded models. Lookups take a shared
// lock; the slow load runs outside the lock and is coalesced per key, so at
// most one goroutine performs I/O for a given model. Load errors are not
// cached, a later call may retry.
type Registry struct {
	mu       sync.RWMutex
	probs    map[registryKey]*ProbabilityModel
	counts   map[registryKey]*CountModel
	inflight map[registryKey]*inflight
}

// defaultRegistry is the shared process-wide instance. It outlives any
// detector; model handles stay valid for as long as the process runs or
// until Clear evicts them.
var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry. Most callers want Default instead.
func NewRegistry() *Registry {
	return &Registry{
		probs:    make(map[registryKey]*ProbabilityModel),
		counts:   make(map[registryKey]*CountModel),
		inflight: make(map[registryKey]*inflight),
	}
}

// Default returns the shared process-wide registry.
func Default() *Registry { return defaultRegistry }

// LoadProbability returns the probability model for (language, order),
// loading it on first use. The returned handle is shared and read-only.
func (r *Registry) LoadProbability(modelsDir string, lang language.Language, order int) (*ProbabilityModel, error) {
	key := registryKey{dir: GetModelsDir(modelsDir), lang: lang, order: order, kind: KindProbability}

	r.mu.RLock()
	if m, ok := r.probs[key]; ok {
		r.mu.RUnlock()
		return m, nil
	}
	r.mu.RUnlock()

	call, leader := r.join(key)
	if !leader {
		<-call.done
		return call.prob, call.err
	}

	// Double-check the cache; an earlier leader may have completed
	// between the first lookup and joining.
	r.mu.RLock()
	m, ok := r.probs[key]
	r.mu.RUnlock()
	if !ok {
		m, call.err = loadProbabilityModel(modelsDir, lang, order)
	}
	call.prob = m

	r.mu.Lock()
	if call.err == nil {
		r.probs[key] = m
	}
	delete(r.inflight, key)
	r.mu.Unlock()
	close(call.done)

	return call.prob, call.err
}

// LoadCounts returns the unique or most-common model for
// (language, order, kind), loading it on first use.
func (r *Registry) LoadCounts(modelsDir string, lang language.Language, order int, kind Kind) (*CountModel, error) {
	key := registryKey{dir: GetModelsDir(modelsDir), lang: lang, order: order, kind: kind}

	r.mu.RLock()
	if m, ok := r.counts[key]; ok {
		r.mu.RUnlock()
		return m, nil
	}
	r.mu.RUnlock()

	call, leader := r.join(key)
	if !leader {
		<-call.done
		return call.cnt, call.err
	}

	r.mu.RLock()
	m, ok := r.counts[key]
	r.mu.RUnlock()
	if !ok {
		m, call.err = loadCountModel(modelsDir, lang, order, kind)
	}
	call.cnt = m

	r.mu.Lock()
	if call.err == nil {
		r.counts[key] = m
	}
	delete(r.inflight, key)
	r.mu.Unlock()
	close(call.done)

	return call.cnt, call.err
}

// join registers interest in a key's load. The first caller becomes the
// leader and must perform the load; followers wait on the returned call.
func (r *Registry) join(key registryKey) (*inflight, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if call, ok := r.inflight[key]; ok {
		return call, false
	}
	call := &inflight{done: make(chan struct{})}
	r.inflight[key] = call
	return call, true
}

// Clear evicts every cached model. In-progress loads finish normally.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probs = make(map[registryKey]*ProbabilityModel)
	r.counts = make(map[registryKey]*CountModel)
}
