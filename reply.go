// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package join

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lfq"
)

// replyCapacity is the ring size of a reply handoff. lfq rings need
// capacity >= 2; a handoff still carries exactly one outcome, enforced
// by the delivered flag, the spare slot just satisfies the ring.
const replyCapacity = 2

// reply is the one-shot single-producer single-consumer handoff that
// routes a reaction result (or a teardown error) back to a blocked
// caller. The producer is always the dispatch goroutine; the consumer
// is the goroutine blocked in Recv or SendRecv.
type reply struct {
	q         lfq.SPSC[kont.Either[error, any]]
	delivered atomix.Uint32
	slot      kont.Either[error, any]
}

func newReply() *reply {
	r := &reply{}
	r.q.Init(replyCapacity)
	return r
}

// deliver hands the outcome to the waiting caller. One-shot: the first
// delivery wins, later ones are dropped. A delivery racing teardown or
// an abandoned receiver is swallowed here rather than surfaced, so it
// can never stall the dispatch loop.
func (r *reply) deliver(e kont.Either[error, any]) {
	if r.delivered.Add(1) != 1 {
		return
	}
	r.slot = e
	_ = r.q.Enqueue(&r.slot)
}

// wait blocks until an outcome arrives, backing off between polls with
// iox.Backoff. The junction's terminated flag breaks the wait once the
// dispatch goroutine is gone; one final dequeue then decides between a
// delivery that raced termination and ErrReplyNeverArrived.
func (r *reply) wait(j *Junction) (any, error) {
	var bo iox.Backoff
	for {
		e, err := r.q.Dequeue()
		if err == nil {
			return splitOutcome(e)
		}
		if j.terminated.Load() != 0 {
			if e, err := r.q.Dequeue(); err == nil {
				return splitOutcome(e)
			}
			return nil, ErrReplyNeverArrived
		}
		bo.Wait()
	}
}

func splitOutcome(e kont.Either[error, any]) (any, error) {
	if err, ok := e.GetLeft(); ok {
		return nil, err
	}
	v, _ := e.GetRight()
	return v, nil
}
