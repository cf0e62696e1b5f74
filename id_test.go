// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package join_test

import (
	"testing"

	"code.hybscloud.com/join"
)

func TestChannelIDMonotonic(t *testing.T) {
	j := newJunction(t)

	a := join.NewSendChannel[int](j)
	b := join.NewRecvChannel[int](j)
	c := join.NewBidirChannel[string, int](j)

	if a.ID() >= b.ID() {
		t.Fatalf("channel ids not increasing: %d >= %d", a.ID(), b.ID())
	}
	if b.ID() >= c.ID() {
		t.Fatalf("channel ids not increasing: %d >= %d", b.ID(), c.ID())
	}
}

func TestJunctionIDMonotonic(t *testing.T) {
	j1 := newJunction(t)
	j2 := newJunction(t)

	if j1.ID() >= j2.ID() {
		t.Fatalf("junction ids not increasing: %d >= %d", j1.ID(), j2.ID())
	}
}

func TestChannelJunctionID(t *testing.T) {
	j := newJunction(t)

	a := join.NewSendChannel[int](j)
	b := join.NewRecvChannel[int](j)
	c := join.NewBidirChannel[string, int](j)

	if a.JunctionID() != j.ID() {
		t.Fatalf("send channel junction id %d, want %d", a.JunctionID(), j.ID())
	}
	if b.JunctionID() != j.ID() {
		t.Fatalf("recv channel junction id %d, want %d", b.JunctionID(), j.ID())
	}
	if c.JunctionID() != j.ID() {
		t.Fatalf("bidir channel junction id %d, want %d", c.JunctionID(), j.ID())
	}
}
