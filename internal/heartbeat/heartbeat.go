package heartbeat

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Heartbeat periodically prints a liveness line so an idle-timeout
// watchdog does not kill a long, otherwise-silent run. It carries no data
// and affects no program state.
type Heartbeat struct {
	done     chan struct{}
	interval time.Duration
	out      io.Writer
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates a heartbeat writing to out every interval.
func New(interval time.Duration, out io.Writer) *Heartbeat {
	return &Heartbeat{
		done:     make(chan struct{}),
		interval: interval,
		out:      out,
		stopCh:   make(chan struct{}),
	}
}

// Start begins emitting in the background.
func (h *Heartbeat) Start() {
	go h.loop()
}

// Stop halts emission and waits for the loop to exit. Safe to call more
// than once; runs on both success and error exit paths.
func (h *Heartbeat) Stop() {
	h.stopOnce.Do(func() { close(h.stopCh) })
	<-h.done
}

func (h *Heartbeat) loop() {
	defer close(h.done)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.stopCh:
			return
		case <-ticker.C:
			fmt.Fprintf(h.out, "covdelta: still running (%s)\n",
				time.Now().UTC().Format(time.RFC3339))
		}
	}
}
