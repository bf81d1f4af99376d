package kernel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestCheckerKillsStarvedConsumers mirrors scenario S4: demand (consumers
// asking for more items than producers ever supply) outstrips supply, so
// the consumers left waiting on notEmpty can never be woken by a signal.
// The checker daemon must notice the monitor is wedged and terminate them.
func TestCheckerKillsStarvedConsumers(t *testing.T) {
	k := New()
	defer k.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	k.StartChecker(ctx, 2*time.Millisecond)

	const capacity = 2
	const producers = 2
	const itemsEach = 2 // 4 items total supplied
	const consumers = 2
	const itemsWanted = 10 // 20 demanded, only 4 ever arrive

	proc := k.NewProcess()
	monID := proc.CreateMonitor()
	mon, err := proc.LookupMonitor(monID)
	require.NoError(t, err)
	notFull := mon.CreateCond()
	notEmpty := mon.CreateCond()

	var buf []int

	for p := 0; p < producers; p++ {
		k.Spawn(func(th *Thread) {
			for i := 0; i < itemsEach; i++ {
				mon.Enter(th)
				for len(buf) >= capacity {
					mon.Wait(th, notFull)
				}
				buf = append(buf, 1)
				mon.Signal(th, notEmpty)
				mon.Leave()
			}
		})
	}

	consumerThreads := make([]*Thread, consumers)
	for c := 0; c < consumers; c++ {
		consumerThreads[c] = k.Spawn(func(th *Thread) {
			for i := 0; i < itemsWanted; i++ {
				mon.Enter(th)
				for len(buf) == 0 {
					mon.Wait(th, notEmpty)
				}
				buf = buf[1:]
				mon.Signal(th, notFull)
				mon.Leave()
			}
		})
	}

	deadline := time.Now().Add(2 * time.Second)
	killedAny := false
	for time.Now().Before(deadline) {
		for _, th := range consumerThreads {
			if th.Killed() {
				killedAny = true
			}
		}
		if killedAny {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	require.True(t, killedAny, "checker should have terminated at least one starved consumer")
}
