// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package join

// SendChannel is the asynchronous, fire-and-forget handle. Send queues a
// value for pattern matching and never waits on a firing; values sent
// here can only feed reactions, never receive their results.
type SendChannel[T any] struct {
	id       ChannelID
	junction *Junction
}

// NewSendChannel creates a fire-and-forget channel owned by j.
func NewSendChannel[T any](j *Junction) *SendChannel[T] {
	return &SendChannel[T]{id: nextChannelID(), junction: j}
}

// ID returns the channel's identity.
func (c *SendChannel[T]) ID() ChannelID { return c.id }

// JunctionID returns the identity of the junction this channel belongs to.
func (c *SendChannel[T]) JunctionID() JunctionID { return c.junction.id }

// Strip returns the identity-only token used when declaring patterns.
// The token carries no live send capability.
func (c *SendChannel[T]) Strip() StrippedSend[T] {
	return StrippedSend[T]{id: c.id, junction: c.junction.id}
}

// Send queues value for pattern matching. Non-blocking: it returns once
// the envelope is admitted to the junction intake. ErrJunctionClosed if
// the junction has been closed.
func (c *SendChannel[T]) Send(value T) error {
	return c.junction.admit(envelope{
		kind: envMessage,
		ch:   c.id,
		msg:  message{value: value},
	})
}

// RecvChannel is the synchronous, value-receiving handle. Recv carries no
// payload into the junction; it contributes a reply obligation that a
// firing pattern satisfies with one of its results.
type RecvChannel[R any] struct {
	id       ChannelID
	junction *Junction
}

// NewRecvChannel creates a blocking-receive channel owned by j.
func NewRecvChannel[R any](j *Junction) *RecvChannel[R] {
	return &RecvChannel[R]{id: nextChannelID(), junction: j}
}

// ID returns the channel's identity.
func (c *RecvChannel[R]) ID() ChannelID { return c.id }

// JunctionID returns the identity of the junction this channel belongs to.
func (c *RecvChannel[R]) JunctionID() JunctionID { return c.junction.id }

// Strip returns the identity-only token used when declaring patterns.
func (c *RecvChannel[R]) Strip() StrippedRecv[R] {
	return StrippedRecv[R]{id: c.id, junction: c.junction.id}
}

// Recv blocks until a pattern including this channel fires and returns
// the result routed to it. ErrReplyNeverArrived if the junction is torn
// down mid-wait.
//
// Panics if the junction is already closed when called: the reply
// obligation cannot be registered, and there is no partial result to
// hand back.
func (c *RecvChannel[R]) Recv() (R, error) {
	r := newReply()
	err := c.junction.admit(envelope{
		kind: envMessage,
		ch:   c.id,
		msg:  message{reply: r},
	})
	if err != nil {
		panic("join: junction closed before reply obligation registered")
	}
	v, err := r.wait(c.junction)
	if err != nil {
		var zero R
		return zero, err
	}
	return v.(R), nil
}

// BidirChannel is the synchronous, bidirectional handle. SendRecv queues
// a value and waits for a firing's result. The value and the reply
// obligation travel in a single envelope, so the value is never visible
// to matching without the obligation registered in the same step; no
// other envelope can be dispatched between the two. A separate Send
// followed by Recv carries no such guarantee.
type BidirChannel[T, R any] struct {
	id       ChannelID
	junction *Junction
}

// NewBidirChannel creates a blocking send-then-receive channel owned by j.
func NewBidirChannel[T, R any](j *Junction) *BidirChannel[T, R] {
	return &BidirChannel[T, R]{id: nextChannelID(), junction: j}
}

// ID returns the channel's identity.
func (c *BidirChannel[T, R]) ID() ChannelID { return c.id }

// JunctionID returns the identity of the junction this channel belongs to.
func (c *BidirChannel[T, R]) JunctionID() JunctionID { return c.junction.id }

// Strip returns the identity-only token used when declaring patterns.
func (c *BidirChannel[T, R]) Strip() StrippedBidir[T, R] {
	return StrippedBidir[T, R]{id: c.id, junction: c.junction.id}
}

// SendRecv queues value and blocks until a pattern including this
// channel fires, returning the result routed to it. Error contract
// matches Recv.
func (c *BidirChannel[T, R]) SendRecv(value T) (R, error) {
	r := newReply()
	err := c.junction.admit(envelope{
		kind: envMessage,
		ch:   c.id,
		msg:  message{value: value, reply: r},
	})
	if err != nil {
		panic("join: junction closed before reply obligation registered")
	}
	v, err := r.wait(c.junction)
	if err != nil {
		var zero R
		return zero, err
	}
	return v.(R), nil
}

// StrippedSend is the identity-only form of a SendChannel: the channel
// identity plus its static type, with no live capability. It exists
// solely for pattern declaration.
type StrippedSend[T any] struct {
	id       ChannelID
	junction JunctionID
}

// StrippedRecv is the identity-only form of a RecvChannel.
type StrippedRecv[R any] struct {
	id       ChannelID
	junction JunctionID
}

// StrippedBidir is the identity-only form of a BidirChannel.
type StrippedBidir[T, R any] struct {
	id       ChannelID
	junction JunctionID
}
