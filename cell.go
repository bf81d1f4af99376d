package kernel

import "sync"

// cell is the interior-mutability wrapper described by the specification's
// component A: single-borrower dynamic exclusion appropriate to a
// uniprocessor kernel where a held guard stands in for "interrupts masked".
// Re-entering a guard already held by the same caller is a bug, never a
// case the caller should recover from; cell does not detect it and does
// not report ErrDoubleBorrow: the underlying sync.Mutex simply blocks.
//
// Go's sync.Mutex already provides exactly this contract — non-reentrant,
// single-borrower exclusion — so cell is a thin named wrapper rather than a
// reimplementation; see DESIGN.md for why no pack library improves on it.
type cell struct {
	mu sync.Mutex
}

// guard is the scoped handle exclusiveAccess returns. Its only purpose is
// to make "drop the guard before calling the scheduler" a method call
// (release) rather than a raw Unlock, so every suspension point in this
// package reads the same way the specification narrates it.
type guard struct {
	c *cell
}

// exclusiveAccess acquires exclusive access to the cell's protected state.
// The returned guard must be released (via release) before any suspension
// point is reached, per §5's "no cell guard currently held by the caller"
// rule.
func (c *cell) exclusiveAccess() guard {
	c.mu.Lock()
	return guard{c: c}
}

// release drops the guard, permitting another borrower.
func (g guard) release() {
	g.c.mu.Unlock()
}
