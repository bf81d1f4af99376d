package kernel

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"
)

// Kernel is the facade wiring the scheduler fragments (sleep-timer,
// block/wake) together with the process table, grounded on
// the teacher's Loop facade: fields grouped by concern, constructed via
// New(opts...), with a background goroutine standing in for the periodic
// timer tick that would come from hardware in a real kernel.
//
// Every Thread spawned by Kernel.Spawn gets its own goroutine; unlike the
// source kernel this is layered on, that means multiple threads' kernel
// code can genuinely run in parallel at the Go runtime level. Correctness
// of the primitives does not depend on true single-processor execution —
// each primitive's own cell provides the exclusion the spec's uniprocessor
// assumption would otherwise buy it for free (see DESIGN.md and spec §9's
// own note that porting to multicore leaves "the Hoare signalling algorithm
// itself... unchanged" once cells become real locks). Kernel keeps no
// global ready queue: a woken thread's goroutine resumes directly, and the
// only ordering Kernel itself imposes is the sleep-timer's (deadline, then
// registration order among equal deadlines; §8 S6).
type Kernel struct {
	logger          Logger
	checkerInterval time.Duration

	timer *sleepTimer

	nextThreadID atomic.Uint64
	nextProcID   atomic.Uint64

	procs procTable

	tickDone chan struct{}
}

// New constructs a Kernel and starts its background sleep-timer tick loop.
func New(opts ...Option) *Kernel {
	cfg := resolveOptions(opts)
	k := &Kernel{
		logger:          cfg.logger,
		checkerInterval: cfg.checkerInterval,
		timer:           newSleepTimer(),
		tickDone:        make(chan struct{}),
	}
	go k.tickLoop()
	return k
}

// Close stops the background tick loop. Safe to call once.
func (k *Kernel) Close() {
	select {
	case <-k.tickDone:
	default:
		close(k.tickDone)
	}
}

func (k *Kernel) tickLoop() {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-k.tickDone:
			return
		case now := <-ticker.C:
			k.Tick(now)
		}
	}
}

// Tick wakes the thread of every sleep-timer entry with deadline <= now,
// in deadline order with ties in registration order (§4.2, §8 S6). The
// threads are woken directly; they pass through no ready queue.
func (k *Kernel) Tick(now time.Time) {
	due := k.timer.due(now)
	for _, t := range due {
		k.wake(t)
	}
}

// wake transitions t straight from Blocked to Running and signals its
// resume channel. Its only caller is Tick, whose order comes from the
// sleep-timer's already-sorted due(); Mutex and Semaphore wake their own
// waiters with Thread.wake in their waiters queue's FIFO order. There is
// no separate global queue — see Kernel's doc comment.
func (k *Kernel) wake(t *Thread) {
	t.status.Store(ThreadRunning)
	t.wake()
}

// Spawn creates a new Thread, starts its goroutine, and returns the Thread
// handle immediately — the Go stand-in for "a thread is created outside
// the core" (spec §3). fn runs with the thread marked Running.
func (k *Kernel) Spawn(fn func(t *Thread)) *Thread {
	t := newThread(k.nextThreadID.Add(1))
	t.status.Store(ThreadRunning)
	go func() {
		fn(t)
	}()
	return t
}

// Sleep registers the calling thread on the sleep-timer and blocks it
// until a Tick observes the deadline has passed (§4.2).
func (k *Kernel) Sleep(t *Thread, ms int64) {
	deadline := time.Now().Add(time.Duration(ms) * time.Millisecond)
	t.status.Store(ThreadBlocked)
	k.timer.register(deadline, t)
	t.park()
}

// Yield cooperatively relinquishes the processor without blocking,
// equivalent to the specification's suspend_current_and_run_next. On top
// of Go's real scheduler this is runtime.Gosched(): there is no hand-rolled
// dispatch loop to hand control to explicitly.
func (k *Kernel) Yield() {
	runtime.Gosched()
}

// Logger returns the kernel's configured logger.
func (k *Kernel) Logger() Logger { return k.logger }

// StartChecker launches a background goroutine that periodically sweeps
// every monitor in every process and calls CheckSelf on it, the "dedicated
// checker thread" of spec §4.5/§8 S4. It stops when ctx is cancelled.
func (k *Kernel) StartChecker(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = k.checkerInterval
	}
	go runChecker(ctx, k, interval)
}
