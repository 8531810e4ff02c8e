package dispatcher

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/cch137/gokv/lib/command"
	"github.com/cch137/gokv/lib/logging"
	"github.com/cch137/gokv/lib/store"
)

// idleGraceDuration, idleBackoffIncrement and idleBackoffCap set the
// worker's idle back-off: it spins with a 1ms poll for the first 100ms of
// idleness, then sleeps for a growing interval that gains
// idleBackoffIncrement on every idle iteration, up to idleBackoffCap. Any
// enqueue resets the ramp.
const (
	idleGraceDuration    = 100 * time.Millisecond
	idleBackoffCap       = time.Second
	idleBackoffIncrement = time.Second / (5 * 60 * 1000)
)

// Dispatcher is the single worker that is the only caller ever allowed to
// touch its store.Store. Every Request is appended to a FIFO queue
// guarded by one mutex and executed strictly in submission order; Submit
// blocks its caller until the worker has produced a Reply. Between
// batches the worker also drives the store's maintenance tick.
type Dispatcher struct {
	store  *store.Store
	logger *logging.Logger
	ms     *metrics.Set

	rehashStepsTotal *metrics.Counter

	mu    sync.Mutex
	state State
	queue []*queueEntry

	wake   chan struct{}
	stopCh chan struct{}
	doneCh chan struct{}
}

// New returns a Dispatcher for s, in state Uninitialised. Call Start to
// load the persisted snapshot and spawn the worker.
func New(s *store.Store) *Dispatcher {
	d := &Dispatcher{
		store:  s,
		logger: logging.New("dispatcher", logging.LevelInfo),
		ms:     metrics.NewSet(),
		state:  StateUninitialised,
		wake:   make(chan struct{}, 1),
	}
	d.rehashStepsTotal = d.ms.NewCounter("gokv_rehash_steps_total")
	d.ms.NewGauge("gokv_queue_depth", func() float64 {
		d.mu.Lock()
		defer d.mu.Unlock()
		return float64(len(d.queue))
	})
	return d
}

// SetLogLevel adjusts the dispatcher's own logger, independent of any
// other component's level.
func (d *Dispatcher) SetLogLevel(level logging.Level) {
	d.logger.SetLevel(level)
}

// State reports the dispatcher's current lifecycle state.
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// WritePrometheus dumps this dispatcher's metrics (and, transitively, its
// store's activity) in Prometheus text exposition format.
func (d *Dispatcher) WritePrometheus(w io.Writer) {
	d.ms.WritePrometheus(w)
}

// Start loads the store's persisted snapshot and spawns the worker
// goroutine. It is valid from Uninitialised or Stopped, so a Dispatcher
// can be re-started after a clean Stop; any other state is an error.
func (d *Dispatcher) Start() error {
	d.mu.Lock()
	if d.state != StateUninitialised && d.state != StateStopped {
		cur := d.state
		d.mu.Unlock()
		return fmt.Errorf("dispatcher: Start called from state %s", cur)
	}
	if err := d.store.Load(); err != nil {
		d.logger.Warningf("snapshot load failed, starting empty: %v", err)
	}
	d.state = StateLoaded
	d.stopCh = make(chan struct{})
	d.doneCh = make(chan struct{})
	d.mu.Unlock()

	go d.run()
	return nil
}

// Submit enqueues req and blocks until the worker has executed it,
// returning its Reply. Submit on a dispatcher that has not been started,
// or that is shutting down or stopped, returns ErrDatabaseClosed without
// touching the queue.
func (d *Dispatcher) Submit(req *command.Request) *command.Reply {
	d.mu.Lock()
	switch d.state {
	case StateUninitialised, StateShuttingDown, StateStopped:
		d.mu.Unlock()
		return command.NewErrorReply(command.ErrDatabaseClosed)
	}
	e := newQueueEntry(req)
	d.queue = append(d.queue, e)
	d.mu.Unlock()
	d.logger.Debugf("enqueued %s action=%s", e.id, req.Action)

	select {
	case d.wake <- struct{}{}:
	default:
	}

	return e.wait()
}

// Stop submits a final SHUTDOWN (which saves the dataset), then drains
// and retires the worker. It blocks until the worker goroutine has
// exited. The SHUTDOWN reply is returned to the caller.
func (d *Dispatcher) Stop() *command.Reply {
	reply := d.Submit(command.NewRequest(command.ActionShutdown))

	d.mu.Lock()
	d.state = StateShuttingDown
	stopCh := d.stopCh
	doneCh := d.doneCh
	d.mu.Unlock()

	close(stopCh)
	<-doneCh

	d.mu.Lock()
	d.state = StateStopped
	d.mu.Unlock()

	return reply
}

// drainLocked removes and returns every currently queued entry. Callers
// must hold d.mu.
func (d *Dispatcher) drainLocked() []*queueEntry {
	if len(d.queue) == 0 {
		return nil
	}
	entries := d.queue
	d.queue = nil
	return entries
}

// run is the worker loop: maintenance tick, drain and execute every
// queued entry in order, then idle back off if the queue was empty.
func (d *Dispatcher) run() {
	d.mu.Lock()
	d.state = StateRunning
	d.mu.Unlock()
	d.logger.Infof("worker started")

	var idleSince time.Time
	var backoff time.Duration

	for {
		d.mu.Lock()
		stepped := d.store.Maintenance()
		entries := d.drainLocked()
		d.mu.Unlock()

		if stepped {
			d.rehashStepsTotal.Inc()
		}

		if len(entries) == 0 {
			sleepDur := time.Millisecond
			if idleSince.IsZero() {
				idleSince = time.Now()
				backoff = 0
			} else if time.Since(idleSince) > idleGraceDuration {
				backoff += idleBackoffIncrement
				if backoff > idleBackoffCap {
					backoff = idleBackoffCap
				}
				sleepDur = backoff
			}

			select {
			case <-d.stopCh:
				close(d.doneCh)
				d.logger.Infof("worker stopped")
				return
			case <-d.wake:
				idleSince = time.Time{}
				backoff = 0
			case <-time.After(sleepDur):
			}
			continue
		}

		idleSince = time.Time{}
		backoff = 0
		for _, e := range entries {
			d.ms.GetOrCreateCounter(fmt.Sprintf(`gokv_commands_total{action=%q}`, e.req.Action.String())).Inc()
			reply := d.store.Execute(e.req)
			d.logger.Debugf("completed %s action=%s in %s", e.id, e.req.Action, time.Since(e.createdAt))
			e.complete(reply)
		}
	}
}
