// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package join

// message is an owned value pending consumption by a pattern firing,
// optionally carrying the one-shot reply handoff of the blocked caller
// that produced it. A fire-and-forget send has value only; a blocking
// receive has reply only; a send-then-receive has both, so the value
// and its reply obligation cross into the junction as one unit.
//
// Values keep the static type of the handle that created them. The
// typed closures built at pattern registration recover them; a failed
// assertion there is an internal-consistency defect, not a user error.
type message struct {
	value any
	reply *reply
}

type envelopeKind uint8

const (
	// envMessage carries a message arrival for a channel.
	envMessage envelopeKind = iota
	// envPattern registers a pattern. Registration rides the same
	// intake as arrivals so the dispatch goroutine stays the sole
	// owner of the pattern table.
	envPattern
	// envShutdown is the final envelope; the dispatch loop tears
	// down and exits when it arrives.
	envShutdown
)

// envelope is the unit exchanged across threads into the junction:
// a channel identity paired with a message, or a control payload.
type envelope struct {
	kind envelopeKind
	ch   ChannelID
	msg  message
	pat  *pattern
}
