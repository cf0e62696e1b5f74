// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package join

import "sync"

// intake is the unbounded multi-producer transport feeding a junction's
// dispatch goroutine. Producers never wait on capacity, so fire-and-forget
// sends return immediately and a reaction may send on its own junction
// without deadlocking the loop that is running it.
//
// This is the one genuinely shared, lock-requiring object of a junction;
// the pattern table and message bag stay dispatch-owned and lock-free.
type intake struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []envelope
	closed bool
}

func newIntake() *intake {
	q := &intake{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push admits env for dispatch. Envelopes from one producer keep their
// send order; envelopes from different producers are ordered by lock
// admission. ErrJunctionClosed after shutdown.
func (q *intake) push(env envelope) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrJunctionClosed
	}
	q.queue = append(q.queue, env)
	q.mu.Unlock()
	q.cond.Signal()
	return nil
}

// pop blocks until an envelope is available. Single consumer: only the
// dispatch goroutine calls pop.
func (q *intake) pop() envelope {
	q.mu.Lock()
	for len(q.queue) == 0 {
		q.cond.Wait()
	}
	env := q.queue[0]
	q.queue[0] = envelope{}
	q.queue = q.queue[1:]
	q.mu.Unlock()
	return env
}

// shutdown rejects further pushes and queues the final shutdown envelope
// behind everything already admitted. Every envelope whose push returned
// nil is therefore dispatched before the loop exits; that total order is
// what lets teardown fail each pending reply obligation exactly once.
// Idempotent.
func (q *intake) shutdown() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		q.queue = append(q.queue, envelope{kind: envShutdown})
	}
	q.mu.Unlock()
	q.cond.Signal()
}
