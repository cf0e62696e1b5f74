// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package join

type channelKind uint8

const (
	kindSend channelKind = iota
	kindRecv
	kindBidir
)

// pattern is the registered form of a join pattern: the declared channel
// order, the kind of each channel, and the type-erased reaction built by
// the typed partial-pattern constructors. Patterns are immutable once
// registered.
//
// fire receives the dequeued values of the value-carrying channels
// (send and bidir) in declared order and returns one result per
// receive-capable channel (recv and bidir) in declared order. The typed
// constructors fix both arities at declaration, so firing re-validates
// nothing.
type pattern struct {
	channels []ChannelID
	kinds    []channelKind
	fire     func(args []any) []any
}

func requireJunction(j *Junction, owner JunctionID) {
	if j.id != owner {
		panic("join: channel declared on a foreign junction")
	}
}

func register(j *Junction, channels []ChannelID, kinds []channelKind, fire func([]any) []any) {
	p := &pattern{channels: channels, kinds: kinds, fire: fire}
	if err := j.admit(envelope{kind: envPattern, pat: p}); err != nil {
		panic("join: pattern declared on a closed junction")
	}
}

// PartialSend1 is a partially declared pattern over one send channel.
// Extend with And, AndRecv, or AndBidir, or finish with Do.
type PartialSend1[T any] struct {
	j *Junction
	a StrippedSend[T]
}

// When starts a pattern declaration on j from a send channel token.
// Panics if the token belongs to a different junction.
func When[T any](j *Junction, a StrippedSend[T]) *PartialSend1[T] {
	requireJunction(j, a.junction)
	return &PartialSend1[T]{j: j, a: a}
}

// Do registers the unary send pattern with reaction f.
func (p *PartialSend1[T]) Do(f func(T)) {
	register(p.j,
		[]ChannelID{p.a.id},
		[]channelKind{kindSend},
		func(args []any) []any {
			f(args[0].(T))
			return nil
		})
}

// PartialRecv1 is a partially declared pattern over one receive channel.
type PartialRecv1[R any] struct {
	j *Junction
	a StrippedRecv[R]
}

// WhenRecv starts a pattern declaration on j from a receive channel token.
func WhenRecv[R any](j *Junction, a StrippedRecv[R]) *PartialRecv1[R] {
	requireJunction(j, a.junction)
	return &PartialRecv1[R]{j: j, a: a}
}

// Do registers the unary receive pattern: f produces the reply delivered
// to each Recv call consumed by a firing.
func (p *PartialRecv1[R]) Do(f func() R) {
	register(p.j,
		[]ChannelID{p.a.id},
		[]channelKind{kindRecv},
		func([]any) []any {
			return []any{f()}
		})
}

// PartialBidir1 is a partially declared pattern over one bidir channel.
type PartialBidir1[T, R any] struct {
	j *Junction
	a StrippedBidir[T, R]
}

// WhenBidir starts a pattern declaration on j from a bidir channel token.
func WhenBidir[T, R any](j *Junction, a StrippedBidir[T, R]) *PartialBidir1[T, R] {
	requireJunction(j, a.junction)
	return &PartialBidir1[T, R]{j: j, a: a}
}

// Do registers the unary bidir pattern: f maps each SendRecv value to
// its reply.
func (p *PartialBidir1[T, R]) Do(f func(T) R) {
	register(p.j,
		[]ChannelID{p.a.id},
		[]channelKind{kindBidir},
		func(args []any) []any {
			return []any{f(args[0].(T))}
		})
}

// PartialSend2 is a partially declared pattern over two send channels.
type PartialSend2[T, U any] struct {
	j *Junction
	a StrippedSend[T]
	b StrippedSend[U]
}

// And extends a one-send partial pattern with a second send channel.
func And[T, U any](p *PartialSend1[T], b StrippedSend[U]) *PartialSend2[T, U] {
	requireJunction(p.j, b.junction)
	return &PartialSend2[T, U]{j: p.j, a: p.a, b: b}
}

// Do registers the two-send pattern with reaction f.
func (p *PartialSend2[T, U]) Do(f func(T, U)) {
	register(p.j,
		[]ChannelID{p.a.id, p.b.id},
		[]channelKind{kindSend, kindSend},
		func(args []any) []any {
			f(args[0].(T), args[1].(U))
			return nil
		})
}

// PartialSendRecv is a partially declared pattern over a send channel
// and a receive channel.
type PartialSendRecv[T, R any] struct {
	j *Junction
	a StrippedSend[T]
	b StrippedRecv[R]
}

// AndRecv extends a one-send partial pattern with a receive channel.
func AndRecv[T, R any](p *PartialSend1[T], b StrippedRecv[R]) *PartialSendRecv[T, R] {
	requireJunction(p.j, b.junction)
	return &PartialSendRecv[T, R]{j: p.j, a: p.a, b: b}
}

// Do registers the send+recv pattern: f maps the sent value to the
// reply delivered to the consumed Recv call.
func (p *PartialSendRecv[T, R]) Do(f func(T) R) {
	register(p.j,
		[]ChannelID{p.a.id, p.b.id},
		[]channelKind{kindSend, kindRecv},
		func(args []any) []any {
			return []any{f(args[0].(T))}
		})
}

// PartialSendBidir is a partially declared pattern over a send channel
// and a bidir channel.
type PartialSendBidir[T, U, R any] struct {
	j *Junction
	a StrippedSend[T]
	b StrippedBidir[U, R]
}

// AndBidir extends a one-send partial pattern with a bidir channel.
func AndBidir[T, U, R any](p *PartialSend1[T], b StrippedBidir[U, R]) *PartialSendBidir[T, U, R] {
	requireJunction(p.j, b.junction)
	return &PartialSendBidir[T, U, R]{j: p.j, a: p.a, b: b}
}

// Do registers the send+bidir pattern: f receives the send value and
// the bidir value, and its result replies to the consumed SendRecv call.
func (p *PartialSendBidir[T, U, R]) Do(f func(T, U) R) {
	register(p.j,
		[]ChannelID{p.a.id, p.b.id},
		[]channelKind{kindSend, kindBidir},
		func(args []any) []any {
			return []any{f(args[0].(T), args[1].(U))}
		})
}

// PartialSend3 is a partially declared pattern over three send channels.
type PartialSend3[T, U, V any] struct {
	j *Junction
	a StrippedSend[T]
	b StrippedSend[U]
	c StrippedSend[V]
}

// And2 extends a two-send partial pattern with a third send channel.
func And2[T, U, V any](p *PartialSend2[T, U], c StrippedSend[V]) *PartialSend3[T, U, V] {
	requireJunction(p.j, c.junction)
	return &PartialSend3[T, U, V]{j: p.j, a: p.a, b: p.b, c: c}
}

// Do registers the three-send pattern with reaction f.
func (p *PartialSend3[T, U, V]) Do(f func(T, U, V)) {
	register(p.j,
		[]ChannelID{p.a.id, p.b.id, p.c.id},
		[]channelKind{kindSend, kindSend, kindSend},
		func(args []any) []any {
			f(args[0].(T), args[1].(U), args[2].(V))
			return nil
		})
}

// PartialSend2Recv is a partially declared pattern over two send
// channels and a receive channel.
type PartialSend2Recv[T, U, R any] struct {
	j *Junction
	a StrippedSend[T]
	b StrippedSend[U]
	c StrippedRecv[R]
}

// AndRecv2 extends a two-send partial pattern with a receive channel.
func AndRecv2[T, U, R any](p *PartialSend2[T, U], c StrippedRecv[R]) *PartialSend2Recv[T, U, R] {
	requireJunction(p.j, c.junction)
	return &PartialSend2Recv[T, U, R]{j: p.j, a: p.a, b: p.b, c: c}
}

// Do registers the send+send+recv pattern.
func (p *PartialSend2Recv[T, U, R]) Do(f func(T, U) R) {
	register(p.j,
		[]ChannelID{p.a.id, p.b.id, p.c.id},
		[]channelKind{kindSend, kindSend, kindRecv},
		func(args []any) []any {
			return []any{f(args[0].(T), args[1].(U))}
		})
}

// PartialSend2Bidir is a partially declared pattern over two send
// channels and a bidir channel.
type PartialSend2Bidir[T, U, V, R any] struct {
	j *Junction
	a StrippedSend[T]
	b StrippedSend[U]
	c StrippedBidir[V, R]
}

// AndBidir2 extends a two-send partial pattern with a bidir channel.
func AndBidir2[T, U, V, R any](p *PartialSend2[T, U], c StrippedBidir[V, R]) *PartialSend2Bidir[T, U, V, R] {
	requireJunction(p.j, c.junction)
	return &PartialSend2Bidir[T, U, V, R]{j: p.j, a: p.a, b: p.b, c: c}
}

// Do registers the send+send+bidir pattern.
func (p *PartialSend2Bidir[T, U, V, R]) Do(f func(T, U, V) R) {
	register(p.j,
		[]ChannelID{p.a.id, p.b.id, p.c.id},
		[]channelKind{kindSend, kindSend, kindBidir},
		func(args []any) []any {
			return []any{f(args[0].(T), args[1].(U), args[2].(V))}
		})
}
