package kernel

import (
	"context"
	"time"
)

// runChecker is the body of the dedicated checker thread described in
// §4.5/§8 scenario S4: on each tick it sweeps every monitor in every
// process and calls CheckSelf, logging whenever a sweep force-terminates
// starved waiters. Grounded on the teacher's periodic-tick goroutine shape
// (a ticker loop selecting on ctx.Done alongside the ticker channel).
func runChecker(ctx context.Context, k *Kernel, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweepOnce(k)
		}
	}
}

func sweepOnce(k *Kernel) {
	for _, p := range k.procs.all() {
		p.eachMonitor(func(id int, m *Monitor) {
			if killed := m.CheckSelf(); killed > 0 {
				k.logger.Log(LogEntry{
					Level:    LevelWarn,
					Category: "checker",
					ProcID:   p.id,
					PrimID:   id,
					Message:  "monitor starvation detected, threads terminated",
				})
			}
		})
	}
}
