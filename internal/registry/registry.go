// Package registry tracks live *bitset.Bitmap values behind short-lived
// UUID handles, so the network service can refer to sets without passing
// whole dumps around. Access is guarded by a sync.RWMutex, the way
// a shared connection map would be.
package registry

import (
	"sync"

	"github.com/google/uuid"

	"bitset"
	"bitset/internal/errs"
)

// Registry is a concurrency-safe map of handle -> Bitmap.
type Registry struct {
	mu      sync.RWMutex
	handles map[string]*bitset.Bitmap
	byPrint map[[32]byte]string
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		handles: make(map[string]*bitset.Bitmap),
		byPrint: make(map[[32]byte]string),
	}
}

// Register mints a new handle for b and returns it. If an equal Bitmap
// (by Fingerprint) is already registered, its existing handle is returned
// instead of creating a duplicate entry.
func (r *Registry) Register(b *bitset.Bitmap) string {
	fp := b.Fingerprint()

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byPrint[fp]; ok {
		return existing
	}
	handle := uuid.NewString()
	r.handles[handle] = b
	r.byPrint[fp] = handle
	return handle
}

// Get looks up the Bitmap registered under handle.
func (r *Registry) Get(handle string) (*bitset.Bitmap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.handles[handle]
	if !ok {
		return nil, errs.New(errs.MissingElement, "registry: no handle %q", handle)
	}
	return b, nil
}

// Forget removes handle from the registry. Never fails if absent.
func (r *Registry) Forget(handle string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.handles[handle]
	if !ok {
		return
	}
	delete(r.handles, handle)
	delete(r.byPrint, b.Fingerprint())
}

// Handles returns every currently registered handle.
func (r *Registry) Handles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.handles))
	for h := range r.handles {
		out = append(out, h)
	}
	return out
}
