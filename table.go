// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package join

// patternTable holds the registered patterns in registration order and
// indexes them by the channels they reference, so an arrival re-evaluates
// only the patterns it could possibly have newly satisfied. Owned
// exclusively by the dispatch goroutine after construction; no locks.
type patternTable struct {
	patterns  []*pattern
	byChannel map[ChannelID][]int
}

func newPatternTable() *patternTable {
	return &patternTable{byChannel: make(map[ChannelID][]int)}
}

// add appends p; its index is its registration priority. A channel
// referenced several times by one pattern is indexed once.
func (t *patternTable) add(p *pattern) {
	idx := len(t.patterns)
	t.patterns = append(t.patterns, p)
	for i, ch := range p.channels {
		dup := false
		for k := 0; k < i; k++ {
			if p.channels[k] == ch {
				dup = true
				break
			}
		}
		if !dup {
			t.byChannel[ch] = append(t.byChannel[ch], idx)
		}
	}
}

// candidates returns the indices of patterns referencing ch, ascending
// in registration order.
func (t *patternTable) candidates(ch ChannelID) []int {
	return t.byChannel[ch]
}

// fifo is a slice-backed FIFO of one channel's pending messages.
type fifo struct {
	items []message
}

func (q *fifo) push(m message) {
	q.items = append(q.items, m)
}

// pop removes and returns the oldest message. Callers check length first.
func (q *fifo) pop() message {
	m := q.items[0]
	q.items[0] = message{}
	q.items = q.items[1:]
	return m
}

func (q *fifo) len() int {
	return len(q.items)
}

// messageBag holds one FIFO queue of pending messages per channel.
// Owned exclusively by the dispatch goroutine; no locks.
type messageBag struct {
	queues map[ChannelID]*fifo
}

func newMessageBag() *messageBag {
	return &messageBag{queues: make(map[ChannelID]*fifo)}
}

func (b *messageBag) push(ch ChannelID, m message) {
	q := b.queues[ch]
	if q == nil {
		q = &fifo{}
		b.queues[ch] = q
	}
	q.push(m)
}

// pop removes the oldest pending message of ch.
func (b *messageBag) pop(ch ChannelID) message {
	return b.queues[ch].pop()
}

// pending reports how many messages of ch are queued.
func (b *messageBag) pending(ch ChannelID) int {
	q := b.queues[ch]
	if q == nil {
		return 0
	}
	return q.len()
}

// drain removes every queued message, invoking fn on each. Teardown only.
func (b *messageBag) drain(fn func(message)) {
	for ch, q := range b.queues {
		for q.len() > 0 {
			fn(q.pop())
		}
		delete(b.queues, ch)
	}
}
