package kernel

import "sync/atomic"

// Thread is the in-kernel stand-in for a Thread Control Block (§3): a
// unique id, a mutable status, an optional exit code, and an opaque
// resource slot the core never inspects. A real TCB is reference-shared
// between the ready queue, any waiter queue it sits in, and the
// processor's "current" slot; here a *Thread plays that role and an
// element in one of those queues/slots simply holds a pointer to it.
//
// Go gives every Thread a real goroutine (started by Kernel.Spawn) rather
// than a saved register context: the goroutine blocks on resume whenever
// the TCB's status leaves Running, and is released exactly once per
// scheduling decision. This is the same technique a toy cooperative
// scheduler built from goroutines + a per-task channel uses to stand in
// for a context switch without touching assembly.
type Thread struct {
	id       uint64
	status   *atomicStatus
	exitCode atomic.Int64 // holds math.MinInt64 until an exit code is set; see ExitCode
	resource atomic.Value // opaque, user-supplied (§3: "opaque to the core")

	// resume is signalled exactly once by whichever scheduling decision
	// next makes this thread Running again (a sleep-timer tick, a
	// mutex/semaphore wakeup, a monitor admission). Buffered by one so the
	// waker never blocks on a thread that hasn't parked yet.
	resume chan struct{}

	// killed is set by Monitor.CheckSelf when it force-terminates this
	// thread while it sits in a waiter queue; the thread's own goroutine
	// never resumes in that case; only Kernel-side bookkeeping (tests,
	// process cleanup) observes it.
	killed atomic.Bool
}

const noExitCode = int64(-1) << 63

func newThread(id uint64) *Thread {
	t := &Thread{
		id:     id,
		status: newAtomicStatus(ThreadReady),
		resume: make(chan struct{}, 1),
	}
	t.exitCode.Store(noExitCode)
	return t
}

// ID returns the thread's unique identifier.
func (t *Thread) ID() uint64 { return t.id }

// Status returns the thread's current scheduling status.
func (t *Thread) Status() ThreadStatus { return t.status.Load() }

// Resource returns the opaque resource slot installed by SetResource, or
// nil if none was set or it has since been dropped.
func (t *Thread) Resource() any { return t.resource.Load() }

// SetResource installs the opaque resource slot the owning process attaches
// to this thread (user-mode pages, trap context — opaque to this package).
func (t *Thread) SetResource(v any) { t.resource.Store(v) }

// dropResource clears the resource slot, the Go equivalent of "surrendering
// user-mode pages and trap context" in Monitor.CheckSelf's remediation.
func (t *Thread) dropResource() { t.resource.Store((any)(nil)) }

// ExitCode returns the thread's exit code and whether one has been set.
func (t *Thread) ExitCode() (code int32, ok bool) {
	v := t.exitCode.Load()
	if v == noExitCode {
		return 0, false
	}
	return int32(v), true
}

func (t *Thread) setExitCode(code int32) { t.exitCode.Store(int64(code)) }

// Killed reports whether Monitor.CheckSelf force-terminated this thread.
func (t *Thread) Killed() bool { return t.killed.Load() }

// wake signals the thread's resume channel without blocking; a no-op if
// the thread was already woken and hasn't consumed the signal yet (FIFO
// waiter queues guarantee each thread is only ever pending one wake).
func (t *Thread) wake() {
	select {
	case t.resume <- struct{}{}:
	default:
	}
}

// park blocks the calling goroutine until wake is called for this thread.
// Must be called with no cell guard held, per §5.
func (t *Thread) park() {
	<-t.resume
}
