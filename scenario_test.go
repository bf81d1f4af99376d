package kernel

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestSleepMonotonicity covers the monotonicity half of scenario S6: a
// thread that sleeps for ms never resumes before ms have elapsed. FIFO
// order among same-deadline sleepers is checked by
// TestSleepFIFOAmongSameTick.
func TestSleepMonotonicity(t *testing.T) {
	k := New()
	defer k.Close()

	const sleepMs = 30
	start := time.Now()
	var wg sync.WaitGroup
	const n = 5
	elapsed := make([]time.Duration, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		idx := i
		k.Spawn(func(th *Thread) {
			defer wg.Done()
			k.Sleep(th, sleepMs)
			elapsed[idx] = time.Since(start)
		})
	}
	wg.Wait()

	for i, d := range elapsed {
		require.GreaterOrEqualf(t, d.Milliseconds(), int64(sleepMs), "thread %d woke too early", i)
	}
}

// TestSleepFIFOAmongSameTick asserts the FIFO-among-same-tick half of S6
// directly against the sleep-timer: container/heap is not a stable
// priority queue, so entries sharing one deadline would pop in arbitrary
// order without timerHeap's seq tie-breaker. This registers n threads
// against one identical deadline and checks due() returns them in exactly
// their registration order.
func TestSleepFIFOAmongSameTick(t *testing.T) {
	st := newSleepTimer()
	deadline := time.Now().Add(10 * time.Millisecond)

	const n = 8
	want := make([]*Thread, n)
	for i := 0; i < n; i++ {
		want[i] = newThread(uint64(i + 1))
		st.register(deadline, want[i])
	}

	got := st.due(deadline)
	require.Len(t, got, n)
	for i, th := range got {
		require.Samef(t, want[i], th, "sleeper at position %d resumed out of FIFO order", i)
	}
}
