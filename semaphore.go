package kernel

// Semaphore is a counting semaphore with a FIFO waiter queue (§4.4). The
// count may be driven negative transiently in the Hoare-monitor encoding
// (a condition variable's semaphore starts at 0 and Wait always blocks),
// so count is signed, matching the source kernel's i32 counter rather than
// a size_t.
type Semaphore struct {
	c       cell
	count   int64
	waiters *readyQueue
}

func newSemaphore(initial int64) *Semaphore {
	return &Semaphore{count: initial, waiters: newReadyQueue()}
}

// Wait is P(): decrement count, blocking if it would go negative.
func (s *Semaphore) Wait(t *Thread) {
	g := s.c.exclusiveAccess()
	s.count--
	if s.count >= 0 {
		g.release()
		return
	}
	s.waiters.add(t)
	t.status.Store(ThreadBlocked)
	g.release()
	t.park()
}

// Post is V(): increment count, waking the longest-waiting thread if one
// is blocked.
func (s *Semaphore) Post() {
	g := s.c.exclusiveAccess()
	s.count++
	if s.count > 0 {
		g.release()
		return
	}
	next := s.waiters.fetch()
	g.release()
	if next != nil {
		next.status.Store(ThreadRunning)
		next.wake()
	}
}

// Value returns the current counter value, for diagnostics and tests.
func (s *Semaphore) Value() int64 {
	g := s.c.exclusiveAccess()
	defer g.release()
	return s.count
}

// waiterCount reports the number of threads currently blocked on Wait.
func (s *Semaphore) waiterCount() int {
	g := s.c.exclusiveAccess()
	defer g.release()
	return s.waiters.len()
}

// resetDrain removes and returns every thread currently blocked on Wait,
// restoring count to resetTo (the semaphore's free-state value — 1 for a
// binary lock, 0 for urgent/condition semaphores). Used by
// Monitor.CheckSelf to force-terminate an entire starved waiter population
// and leave the semaphore immediately reusable, under the semaphore's own
// guard, never by reaching into s.waiters directly from outside this file.
func (s *Semaphore) resetDrain(resetTo int64) []*Thread {
	g := s.c.exclusiveAccess()
	defer g.release()
	out := s.waiters.drain()
	s.count = resetTo
	return out
}
