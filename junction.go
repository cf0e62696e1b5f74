// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package join

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/kont"
)

// Junction is the coordinating engine behind a set of channels and
// patterns. A single dispatch goroutine owns the pattern table and
// message bag exclusively: it pulls one envelope at a time from the
// shared intake, updates the bag, runs the match engine to quiescence,
// invokes reactions, and routes results into reply handoffs. Processing
// arrivals one at a time is what gives callers atomic multi-channel
// synchronization without any locking around the matching state.
type Junction struct {
	id         JunctionID
	intake     *intake
	done       chan struct{}
	terminated atomix.Uint32

	// dispatch-owned; never touched off the dispatch goroutine
	table  *patternTable
	bag    *messageBag
	engine matchEngine
}

// New creates a junction and starts its dispatch goroutine. Declare the
// channels and patterns before sending; registration rides the intake,
// so declarations made before the first send are dispatched before it.
func New() *Junction {
	j := &Junction{
		id:     nextJunctionID(),
		intake: newIntake(),
		done:   make(chan struct{}),
		table:  newPatternTable(),
		bag:    newMessageBag(),
	}
	j.engine = matchEngine{table: j.table, bag: j.bag}
	go j.dispatch()
	return j
}

// ID returns the junction's identity.
func (j *Junction) ID() JunctionID {
	return j.id
}

// Close tears the junction down: the dispatch loop finishes every
// envelope admitted so far, fails each still-pending blocking call with
// ErrReplyNeverArrived, and exits. Close returns once the loop is gone.
// Idempotent; safe to call from any goroutine, but never from a
// reaction, which runs on the loop Close waits for.
func (j *Junction) Close() {
	j.intake.shutdown()
	<-j.done
}

// admit pushes an envelope into the intake transport.
func (j *Junction) admit(env envelope) error {
	return j.intake.push(env)
}

func (j *Junction) dispatch() {
	for {
		env := j.intake.pop()
		switch env.kind {
		case envPattern:
			j.table.add(env.pat)
			// Messages may already be queued for the new pattern's
			// channels. Only this pattern can be newly firable, and it
			// is a candidate of every channel it references, so one
			// drain over its first channel reaches it.
			j.drainFirings(env.pat.channels[0])
		case envMessage:
			j.bag.push(env.ch, env.msg)
			j.drainFirings(env.ch)
		case envShutdown:
			j.teardown()
			return
		}
	}
}

// drainFirings re-runs matching until no pattern touching ch is firable.
// Residual queued messages may satisfy another firing without a new
// arrival; messages a reaction sends are not residual, they arrive
// through the intake like any others.
func (j *Junction) drainFirings(ch ChannelID) {
	for {
		p, msgs, ok := j.engine.match(ch)
		if !ok {
			return
		}
		j.fire(p, msgs)
	}
}

// fire invokes the reaction with the consumed values in declared order,
// then delivers one result into each receive-capable message's reply
// handoff, also in declared order. Reactions run on the dispatch
// goroutine: long reactions serialize behind each other and throttle
// the whole junction, and a reaction must not block on its own junction.
func (j *Junction) fire(p *pattern, msgs []message) {
	args := make([]any, 0, len(msgs))
	for i, m := range msgs {
		if p.kinds[i] != kindRecv {
			args = append(args, m.value)
		}
	}
	results := p.fire(args)
	ri := 0
	for i, m := range msgs {
		if p.kinds[i] == kindSend {
			continue
		}
		m.reply.deliver(kont.Right[error, any](results[ri]))
		ri++
	}
}

// teardown fails every reply obligation still queued in the bag, then
// raises the terminated flag and closes done. Flag ordering matters:
// reply.wait re-checks its queue after observing the flag, so a delivery
// made here is never lost and a caller never hangs.
func (j *Junction) teardown() {
	j.bag.drain(func(m message) {
		if m.reply != nil {
			m.reply.deliver(kont.Left[error, any](ErrReplyNeverArrived))
		}
	})
	j.terminated.Add(1)
	close(j.done)
}
