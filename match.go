// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package join

// matchEngine decides, over the current bag state, which pattern fires
// next and which exact messages it consumes.
//
// Policy: a pattern is firable iff every channel it references has at
// least as many pending messages as its occurrences in the pattern.
// Among simultaneously firable patterns the earliest-registered wins;
// within a pattern each channel yields its oldest message. Fixed
// registration order plus fixed arrival order therefore gives an
// identical firing sequence on every run.
type matchEngine struct {
	table *patternTable
	bag   *messageBag
}

// match selects the highest-priority firable pattern among those
// referencing ch and consumes one head message per channel occurrence,
// in declared order. Returns false when no candidate is firable.
//
// Only candidates of the just-arrived channel can be newly firable:
// firings remove messages, they never add any, so patterns not touching
// ch are exactly as unfirable as they were at the last quiescent point.
func (e *matchEngine) match(ch ChannelID) (*pattern, []message, bool) {
	for _, idx := range e.table.candidates(ch) {
		p := e.table.patterns[idx]
		if !e.firable(p) {
			continue
		}
		msgs := make([]message, len(p.channels))
		for i, c := range p.channels {
			msgs[i] = e.bag.pop(c)
		}
		return p, msgs, true
	}
	return nil, nil, false
}

func (e *matchEngine) firable(p *pattern) bool {
	for i, c := range p.channels {
		need := 1
		for k := 0; k < i; k++ {
			if p.channels[k] == c {
				need++
			}
		}
		if e.bag.pending(c) < need {
			return false
		}
	}
	return true
}
