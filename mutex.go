package kernel

// Mutex is a binary lock with a FIFO waiter queue (§4.3). Ownership is not
// tracked by thread identity — like the source kernel's mutex, any thread
// may call Unlock regardless of which thread locked it; callers that need
// owner checking build it on top (none of the test scenarios require it).
type Mutex struct {
	c       cell
	locked  bool
	waiters *readyQueue
}

func newMutex() *Mutex {
	return &Mutex{waiters: newReadyQueue()}
}

// Lock blocks t until the mutex is free, then acquires it. Uses direct
// hand-off on Unlock: a waiter that is woken already owns the lock and
// never re-tests the locked flag (§4.3, "either option is acceptable";
// this picks hand-off to make FIFO order directly observable — property
// 3 depends on the woken thread being the exact next owner, not merely
// eligible to race for it).
func (m *Mutex) Lock(t *Thread) {
	g := m.c.exclusiveAccess()
	if !m.locked {
		m.locked = true
		g.release()
		return
	}
	m.waiters.add(t)
	t.status.Store(ThreadBlocked)
	g.release()
	t.park()
}

// Unlock releases the mutex. If a thread is waiting, ownership passes to it
// directly; otherwise the mutex becomes free.
func (m *Mutex) Unlock() {
	g := m.c.exclusiveAccess()
	next := m.waiters.fetch()
	if next == nil {
		m.locked = false
		g.release()
		return
	}
	g.release()
	next.status.Store(ThreadRunning)
	next.wake()
}

// waiterCount reports the number of threads currently blocked on this
// mutex, used by tests.
func (m *Mutex) waiterCount() int {
	g := m.c.exclusiveAccess()
	defer g.release()
	return m.waiters.len()
}
