// Package asset resolves asset references named in a scene to placeholder
// handles. The registry is an owned instance, never package-global state, so
// concurrent runs and tests stay isolated.
package asset

import (
	"fmt"

	"go.uber.org/zap"
)

// Handle is the opaque placeholder a resolved reference maps to. A real host
// backend would carry decoded data here; the runtime only needs the key and
// the cataloged kind.
type Handle struct {
	Ref  string
	Kind string // "" when the reference is not in the manifest
	Path string
}

// LoadError reports a single reference that failed to resolve. Failures are
// collected per reference and never abort the batch.
type LoadError struct {
	Ref string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load asset %q: %v", e.Ref, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Registry is the side-effect store mapping references to handles. Populated
// once before the run loop starts, cleared once after it ends; no locking by
// contract.
type Registry struct {
	manifest *Manifest
	handles  map[string]*Handle
	log      *zap.Logger
}

// NewRegistry creates an empty registry. manifest may be nil, in which case
// every reference resolves to an untyped placeholder.
func NewRegistry(manifest *Manifest, log *zap.Logger) *Registry {
	return &Registry{
		manifest: manifest,
		handles:  make(map[string]*Handle),
		log:      log,
	}
}

// Load resolves each reference to a handle. Loading a reference twice just
// overwrites its handle. Per-reference failures are collected and returned;
// the rest of the batch still loads.
func (r *Registry) Load(refs []string) []*LoadError {
	var failed []*LoadError
	for _, ref := range refs {
		if ref == "" {
			failed = append(failed, &LoadError{Ref: ref, Err: fmt.Errorf("empty asset reference")})
			continue
		}
		h := &Handle{Ref: ref}
		if e := r.manifest.Get(ref); e != nil {
			h.Kind = e.Kind
			h.Path = e.Path
		}
		r.handles[ref] = h
		r.log.Info("asset loaded", zap.String("ref", ref), zap.String("kind", h.Kind))
	}
	return failed
}

// Handle returns the handle for a loaded reference, or nil.
func (r *Registry) Handle(ref string) *Handle {
	return r.handles[ref]
}

// Count returns the number of loaded handles.
func (r *Registry) Count() int {
	return len(r.handles)
}

// Cleanup drops every handle. Safe to call on a registry that was never
// populated, and called unconditionally at shutdown.
func (r *Registry) Cleanup() {
	r.handles = make(map[string]*Handle)
	r.log.Info("asset registry cleared")
}
