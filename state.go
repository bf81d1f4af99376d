package kernel

import "sync/atomic"

// ThreadStatus is a TCB's scheduling state, per specification §3: a thread
// is in at most one of {ready queue, one waiter queue, running slot,
// sleep-timer heap} at any instant, and ThreadStatus records which regime
// applies.
type ThreadStatus uint32

const (
	// ThreadReady means the thread sits in the ready queue, waiting for
	// the processor.
	ThreadReady ThreadStatus = iota
	// ThreadRunning means the thread currently holds the processor.
	ThreadRunning
	// ThreadBlocked means the thread sits in some waiter queue or the
	// sleep-timer heap.
	ThreadBlocked
)

func (s ThreadStatus) String() string {
	switch s {
	case ThreadReady:
		return "Ready"
	case ThreadRunning:
		return "Running"
	case ThreadBlocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// atomicStatus is a lock-free holder for ThreadStatus, grounded on the
// teacher's FastState pattern (atomic.Uint64 load/store, no transition
// validation — the scheduler, not the holder, is responsible for only ever
// making legal transitions).
type atomicStatus struct {
	v atomic.Uint32
}

func newAtomicStatus(initial ThreadStatus) *atomicStatus {
	s := &atomicStatus{}
	s.v.Store(uint32(initial))
	return s
}

func (s *atomicStatus) Load() ThreadStatus {
	return ThreadStatus(s.v.Load())
}

func (s *atomicStatus) Store(status ThreadStatus) {
	s.v.Store(uint32(status))
}
