// Package vfs implements the virtual file system engine: the atomic root
// reference holding the current snapshot hierarchy, the written-locations
// tracker, and the watching coordinator that keeps the hierarchy in sync
// with file system change events across build boundaries.
package vfs

import (
	"sync/atomic"

	"go.trai.ch/vfs/internal/core/domain"
)

// RootReference is the single mutable slot holding the current hierarchy.
// Reads are a single atomic load; writes go through a compare-and-retry
// loop so concurrent updates never produce a torn intermediate state.
type RootReference struct {
	root atomic.Pointer[domain.Hierarchy]
}

// NewRootReference creates a reference holding the given hierarchy.
func NewRootReference(root domain.Hierarchy) *RootReference {
	r := &RootReference{}
	r.root.Store(&root)
	return r
}

// Get returns the current hierarchy.
func (r *RootReference) Get() domain.Hierarchy {
	return *r.root.Load()
}

// Update applies fn to the current hierarchy and installs the result,
// retrying with the latest hierarchy whenever a concurrent update wins the
// race. fn must be pure: it runs once per attempt. The installed hierarchy
// is returned.
func (r *RootReference) Update(fn func(current domain.Hierarchy) domain.Hierarchy) domain.Hierarchy {
	for {
		current := r.root.Load()
		updated := fn(*current)
		if r.root.CompareAndSwap(current, &updated) {
			return updated
		}
	}
}
