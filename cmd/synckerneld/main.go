// Command synckerneld is a small demonstration binary that wires a
// kernel.Kernel together and runs a bounded-buffer producer/consumer over
// a monitor, the way the teacher pack ships runnable examples alongside a
// library package.
package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/zzudjj/synckernel"
)

const (
	bufferCapacity = 6
	producers      = 4
	itemsEach      = 5
	consumers      = 2
	itemsPerConsumer = 10
)

func main() {
	k := kernel.New(kernel.WithLogger(kernel.NewTextLogger(os.Stderr, kernel.LevelInfo)))
	defer k.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	k.StartChecker(ctx, 2*time.Millisecond)

	proc := k.NewProcess()
	monID := proc.CreateMonitor()
	mon, _ := proc.LookupMonitor(monID)
	notFull := mon.CreateCond()
	notEmpty := mon.CreateCond()

	var buf []int
	var wg sync.WaitGroup
	wg.Add(producers + consumers)

	for pidx := 0; pidx < producers; pidx++ {
		k.Spawn(func(t *kernel.Thread) {
			defer wg.Done()
			for i := 0; i < itemsEach; i++ {
				mon.Enter(t)
				for len(buf) >= bufferCapacity {
					mon.Wait(t, notFull)
				}
				buf = append(buf, i+1)
				mon.Signal(t, notEmpty)
				mon.Leave()
			}
		})
	}

	for cidx := 0; cidx < consumers; cidx++ {
		k.Spawn(func(t *kernel.Thread) {
			defer wg.Done()
			for i := 0; i < itemsPerConsumer; i++ {
				mon.Enter(t)
				for len(buf) == 0 {
					mon.Wait(t, notEmpty)
				}
				v := buf[0]
				buf = buf[1:]
				mon.Signal(t, notFull)
				mon.Leave()
				fmt.Printf("consumer %d took %d\n", cidx, v)
			}
		})
	}

	wg.Wait()
}
