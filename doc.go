// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package join implements join-calculus concurrency: independently
// created channels combine into join patterns, and a pattern fires
// exactly once, atomically, when every channel it requires holds a
// pending message.
//
// # Architecture
//
//   - Junction: one dispatch goroutine per [Junction] owns all matching
//     state and processes envelopes one at a time from an unbounded
//     multi-producer intake.
//   - Replies: blocked callers wait on one-shot handoffs backed by
//     minimum-capacity lock-free SPSC rings via [code.hybscloud.com/lfq],
//     polling with [code.hybscloud.com/iox] adaptive backoff. Outcomes
//     cross the handoff as [code.hybscloud.com/kont.Either].
//   - Matching: earliest-registered firable pattern wins; each channel
//     yields its oldest message. Deterministic for a fixed registration
//     and arrival order.
//   - Reactions: run on the dispatch goroutine, never concurrently with
//     each other. A reaction may send on its own junction but must not
//     call Recv or SendRecv on it.
//
// # Channels
//
//   - [SendChannel]: fire-and-forget; Send never waits on a firing.
//   - [RecvChannel]: Recv blocks until a firing routes a result to it.
//   - [BidirChannel]: SendRecv carries value and reply obligation in a
//     single envelope, making the pair atomic under the dispatch order.
//
// # Patterns
//
// Declared through identity-only tokens obtained with Strip, via the
// partial-pattern constructors: [When], [WhenRecv], [WhenBidir] start a
// declaration; [And], [AndRecv], [AndBidir], [And2], [AndRecv2],
// [AndBidir2] extend it; Do registers it with its typed reaction.
// A receive-capable channel appears at most once, declared last.
//
// # Example
//
//	j := join.New()
//	defer j.Close()
//	a := join.NewSendChannel[int](j)
//	b := join.NewRecvChannel[int](j)
//	join.AndRecv(join.When(j, a.Strip()), b.Strip()).Do(func(n int) int {
//		return n * 2
//	})
//	a.Send(21)
//	n, _ := b.Recv() // 42
package join
