// Package kernel implements the in-kernel synchronization core of a
// single-processor teaching OS: a mutex, a counting semaphore, and a
// Hoare-style monitor with condition variables, together with the
// scheduler fragments they depend on — a FIFO ready queue, a block/wake
// contract on threads, and a sleep-timer.
//
// # Architecture
//
// A [Kernel] owns the sleep-timer heap and a table of [Process] instances.
// Each [Process] owns three tombstoned slot tables (mutexes, semaphores,
// monitors) addressed by dense integer ids. Threads are [*Thread] values
// created via [Kernel.Spawn]; each gets a real goroutine rather than a
// saved register context. Mutual exclusion does not come from pretending
// Go's scheduler is a uniprocessor — it comes from every primitive guarding
// its own state behind a [cell], exactly the guarantee a single-processor
// kernel would otherwise get from masking interrupts around the same
// critical sections.
//
// # Execution model
//
// A thread loses the processor only by calling a suspension point:
// [Mutex.Lock], [Semaphore.Wait], [Monitor.Enter]/[Monitor.Wait]/
// [Monitor.Signal]/[Monitor.Leave] (when they internally wait on a
// semaphore), or [Kernel.Sleep]. Every suspension point releases any
// [cell] guard it holds before yielding control, mirroring the "interrupts
// masked during cell-guarded critical sections" discipline of a real
// uniprocessor kernel.
//
// # Monitor semantics
//
// [Monitor] implements Hoare semantics: [Monitor.Signal] suspends the
// signaller on an urgent queue and runs the signalled waiter immediately;
// [Monitor.Leave] always prefers the urgent queue over the entry queue.
// [Monitor.CheckSelf] is a liveness audit, intended to be driven by a
// dedicated checker goroutine (see [Kernel.StartChecker]): if every thread
// touching a monitor is blocked, it force-terminates them rather than let
// the system deadlock forever — there is no timed wait and no
// preemption to fall back on.
//
// # Syscall surface
//
// [Kernel.Dispatch] provides the flat numeric syscall surface described by
// the specification (ids 101 and 501-517): given a process, the calling
// thread, a syscall id and its three word-sized arguments, it resolves the
// named primitive and invokes it, returning a word-sized result or an
// error for an unrecognized id or bad primitive id.
//
// # Usage
//
//	k := kernel.New(kernel.WithLogger(kernel.NewTextLogger(os.Stderr, kernel.LevelInfo)))
//	proc := k.NewProcess()
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	k.StartChecker(ctx, 2*time.Millisecond)
//
//	id := proc.CreateMutex()
//	done := make(chan struct{})
//	k.Spawn(func(t *kernel.Thread) {
//	    m, _ := proc.LookupMutex(id)
//	    m.Lock(t)
//	    m.Unlock()
//	    close(done)
//	})
//	<-done
package kernel
