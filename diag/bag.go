package diag

import (
	"sort"
	"sync"
)

// Bag is the append-only diagnostics channel for one compilation unit.
// Appends are safe for concurrent use; wrapper generation runs on a worker
// pool and each diagnostic carries its own function-index context, so
// append order across goroutines does not need to be strict. Call Sort
// before rendering for a deterministic sequence.
type Bag struct {
	mu    sync.Mutex
	items []Diagnostic
}

func NewBag() *Bag {
	return &Bag{}
}

// Add appends a diagnostic. Diagnostics are never discarded.
func (b *Bag) Add(d Diagnostic) {
	b.mu.Lock()
	b.items = append(b.items, d)
	b.mu.Unlock()
}

func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Items returns a snapshot of the accumulated diagnostics.
func (b *Bag) Items() []Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// HasBlocking reports whether any diagnostic bars artifact emission.
func (b *Bag) HasBlocking() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		if b.items[i].Blocking() {
			return true
		}
	}
	return false
}

// Sort orders diagnostics by function index, then position, then code,
// for a stable and deterministic output sequence.
func (b *Bag) Sort() {
	b.mu.Lock()
	defer b.mu.Unlock()
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.FuncIdx != dj.FuncIdx {
			return di.FuncIdx < dj.FuncIdx
		}
		if di.Position != dj.Position {
			return di.Position < dj.Position
		}
		return di.Code < dj.Code
	})
}
