package kernel

import (
	"container/heap"
	"time"
)

// sleepEntry binds an absolute wake deadline to a blocked thread — the
// specification's sleep-timer entry (§3: "A min-ordered structure keyed by
// absolute wake-time (ms)"). seq is a monotonic registration counter used
// only to break ties between entries with an identical deadline:
// container/heap is not a stable priority queue, so without it two
// same-tick sleepers could pop in either order regardless of which
// registered first, violating the FIFO-among-same-tick half of §4.2/S6.
type sleepEntry struct {
	deadline time.Time
	seq      uint64
	thread   *Thread
}

// timerHeap is a min-heap of sleepEntry ordered by deadline, grounded
// directly on the teacher's timerHeap in loop.go (same container/heap
// shape: Len/Less/Swap/Push/Pop over a slice, Less comparing .when), with
// seq added as the equal-deadline tie-breaker loop.go's single-field Less
// doesn't need (the teacher never promises FIFO ordering among timers
// firing in the same tick).
type timerHeap []sleepEntry

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) {
	*h = append(*h, x.(sleepEntry))
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// sleepTimer is the process-wide singleton min-heap of pending sleeps,
// guarded by its own cell per §5's "the ready queue and the sleep-timer
// each have their own guards".
type sleepTimer struct {
	c    cell
	h    timerHeap
	next uint64 // monotonic registration counter, source of sleepEntry.seq
}

func newSleepTimer() *sleepTimer {
	return &sleepTimer{h: make(timerHeap, 0)}
}

// register schedules thread to be woken by a tick no earlier than deadline.
func (st *sleepTimer) register(deadline time.Time, thread *Thread) {
	g := st.c.exclusiveAccess()
	seq := st.next
	st.next++
	heap.Push(&st.h, sleepEntry{deadline: deadline, seq: seq, thread: thread})
	g.release()
}

// due pops every entry whose deadline has passed (<=  now) and returns the
// threads bound to them, oldest deadline first — "a periodic tick moves due
// entries back to the ready queue" (§3).
func (st *sleepTimer) due(now time.Time) []*Thread {
	g := st.c.exclusiveAccess()
	defer g.release()
	var out []*Thread
	for st.h.Len() > 0 && !st.h[0].deadline.After(now) {
		e := heap.Pop(&st.h).(sleepEntry)
		out = append(out, e.thread)
	}
	return out
}
