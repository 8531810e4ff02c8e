package dispatcher

import (
	"sync"
	"time"

	"github.com/cch137/gokv/lib/command"
	"github.com/google/uuid"
)

// queueEntry is one submitted request sitting on the dispatcher's FIFO
// queue. Go's slice queue (see Dispatcher.queue) gives FIFO ordering
// without a manual linked list.
//
// Completion is signaled with a sync.Cond private to the entry rather than
// a busy-wait on a done flag: Submit's caller blocks on entry.wait(), the
// worker unblocks it from entry.complete(), and the Cond's internal lock
// establishes the happens-before edge between the executor's writes to
// reply and the caller's read of it.
type queueEntry struct {
	id        uuid.UUID
	createdAt time.Time
	req       *command.Request

	mu    sync.Mutex
	cond  *sync.Cond
	done  bool
	reply *command.Reply
}

func newQueueEntry(req *command.Request) *queueEntry {
	e := &queueEntry{
		id:        uuid.New(),
		createdAt: time.Now(),
		req:       req,
	}
	e.cond = sync.NewCond(&e.mu)
	return e
}

// complete stores reply and wakes whichever goroutine is blocked in wait.
func (e *queueEntry) complete(reply *command.Reply) {
	e.mu.Lock()
	e.reply = reply
	e.done = true
	e.cond.Signal()
	e.mu.Unlock()
}

// wait blocks until complete has been called, then returns the reply.
func (e *queueEntry) wait() *command.Reply {
	e.mu.Lock()
	for !e.done {
		e.cond.Wait()
	}
	reply := e.reply
	e.mu.Unlock()
	return reply
}
