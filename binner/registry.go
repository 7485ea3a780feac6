package binner

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hepkit/hbin/errs"
)

// Handle identifies a registration. The zero Handle is never issued.
type Handle uint64

// Entry is one registered binner.
type Entry[B any] struct {
	Handle Handle
	Name   string
	Binner *Binner[B]
}

// Registry tracks live binners so they can be enumerated at the end of a job,
// for example to write every histogram of a given shape to one snapshot.
//
// Entries are grouped by Binner.Shape. The mutex only guards the maps; fills
// on registered binners are not synchronized.
type Registry[B any] struct {
	mu      sync.Mutex
	next    Handle
	entries map[Handle]*Entry[B]
	byBin   map[*Binner[B]]Handle
	byShape map[uint64][]Handle
}

// NewRegistry creates an empty registry.
func NewRegistry[B any]() *Registry[B] {
	return &Registry[B]{
		entries: make(map[Handle]*Entry[B]),
		byBin:   make(map[*Binner[B]]Handle),
		byShape: make(map[uint64][]Handle),
	}
}

// Register adds b under name. Registering the same binner again returns its
// existing handle and keeps the first name.
func (r *Registry[B]) Register(name string, b *Binner[B]) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.byBin[b]; ok {
		return h
	}

	r.next++
	h := r.next
	r.entries[h] = &Entry[B]{Handle: h, Name: name, Binner: b}
	r.byBin[b] = h
	r.byShape[b.Shape()] = append(r.byShape[b.Shape()], h)

	return h
}

// Remove deregisters h.
//
// Returns:
//   - error: ErrNotRegistered if h is unknown or was already removed
func (r *Registry[B]) Remove(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[h]
	if !ok {
		return fmt.Errorf("%w: handle %d", errs.ErrNotRegistered, h)
	}

	delete(r.entries, h)
	delete(r.byBin, e.Binner)

	key := e.Binner.Shape()
	group := r.byShape[key]
	for i, gh := range group {
		if gh == h {
			group = append(group[:i], group[i+1:]...)
			break
		}
	}
	if len(group) == 0 {
		delete(r.byShape, key)
	} else {
		r.byShape[key] = group
	}

	return nil
}

// Len returns the number of registered binners.
func (r *Registry[B]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// All returns every entry in registration order.
func (r *Registry[B]) All() []Entry[B] {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry[B], 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })

	return out
}

// Shape returns the entries whose binners have the given shape key, in
// registration order.
func (r *Registry[B]) Shape(key uint64) []Entry[B] {
	r.mu.Lock()
	defer r.mu.Unlock()

	group := r.byShape[key]
	out := make([]Entry[B], 0, len(group))
	for _, h := range group {
		out = append(out, *r.entries[h])
	}

	return out
}

// Shapes returns the distinct shape keys currently registered.
func (r *Registry[B]) Shapes() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]uint64, 0, len(r.byShape))
	for k := range r.byShape {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// Lookup returns the first registered binner with the given name.
func (r *Registry[B]) Lookup(name string) (*Binner[B], bool) {
	for _, e := range r.All() {
		if e.Name == name {
			return e.Binner, true
		}
	}

	return nil, false
}
