package kernel

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSemaphoreBoundedBuffer(t *testing.T) {
	k := New()
	defer k.Close()

	const capacity = 6
	const producers = 4
	const itemsEach = 5
	const consumers = 2
	const itemsPerConsumer = 10

	empty := newSemaphore(capacity)
	full := newSemaphore(0)
	mutex := newMutex()

	var buf []int
	var wg sync.WaitGroup
	wg.Add(producers + consumers)

	values := []int{1, 2, 3, 4}
	for p := 0; p < producers; p++ {
		k.Spawn(func(th *Thread) {
			defer wg.Done()
			for i := 0; i < itemsEach; i++ {
				empty.Wait(th)
				mutex.Lock(th)
				buf = append(buf, values[i%len(values)])
				mutex.Unlock()
				full.Post()
			}
		})
	}

	consumed := make([]int, 0, producers*itemsEach)
	var consumedMu sync.Mutex
	for c := 0; c < consumers; c++ {
		k.Spawn(func(th *Thread) {
			defer wg.Done()
			for i := 0; i < itemsPerConsumer; i++ {
				full.Wait(th)
				mutex.Lock(th)
				v := buf[0]
				buf = buf[1:]
				mutex.Unlock()
				empty.Post()
				consumedMu.Lock()
				consumed = append(consumed, v)
				consumedMu.Unlock()
			}
		})
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("producer/consumer scenario did not complete")
	}

	require.Len(t, consumed, producers*itemsEach)
	require.Equal(t, int64(capacity), empty.Value()+full.Value())
}

func TestSemaphoreNeverNegativeAvailable(t *testing.T) {
	k := New()
	defer k.Close()

	s := newSemaphore(1)
	th := k.Spawn(func(*Thread) {})
	s.Wait(th)
	require.Equal(t, int64(0), s.Value())
	s.Post()
	require.Equal(t, int64(1), s.Value())
}
