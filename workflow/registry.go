// api/workflow/registry.go

package workflow

import "sync"

// Registry tracks in-flight workflows by nurse id so the delegate choice,
// arriving on a later request, finds the run it belongs to. At most one
// workflow exists per nurse regardless of which operation it guards. Terminal
// workflows are evicted on lookup.
type Registry struct {
	mu    sync.Mutex
	inUse map[int]*DelegateRetry
}

func NewRegistry() *Registry {
	return &Registry{inUse: make(map[int]*DelegateRetry)}
}

// GetOrCreate returns the pending workflow for the nurse, or registers a new
// one built by the factory.
func (r *Registry) GetOrCreate(nurseID int, build func() *DelegateRetry) *DelegateRetry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.inUse[nurseID]; ok && !d.Terminal() {
		return d
	}
	d := build()
	r.inUse[nurseID] = d
	return d
}

// Pending returns the workflow awaiting a delegate choice for the nurse, if
// any.
func (r *Registry) Pending(nurseID int) (*DelegateRetry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.inUse[nurseID]
	if !ok {
		return nil, false
	}
	if d.Terminal() {
		delete(r.inUse, nurseID)
		return nil, false
	}
	return d, true
}

// Remove drops the workflow for the nurse.
func (r *Registry) Remove(nurseID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inUse, nurseID)
}
