// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package join_test

import (
	"errors"
	"testing"
	"time"

	"code.hybscloud.com/join"
)

func TestSendThenRecv(t *testing.T) {
	skipRace(t)
	j := newJunction(t)
	a := join.NewSendChannel[int](j)
	b := join.NewRecvChannel[int](j)
	join.AndRecv(join.When(j, a.Strip()), b.Strip()).Do(func(n int) int {
		return n
	})

	if err := a.Send(5); err != nil {
		t.Fatalf("send: %v", err)
	}
	got, err := b.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if got != 5 {
		t.Fatalf("recv got %d, want 5", got)
	}
}

func TestRecvThenSend(t *testing.T) {
	skipRace(t)
	j := newJunction(t)
	a := join.NewSendChannel[int](j)
	b := join.NewRecvChannel[int](j)
	join.AndRecv(join.When(j, a.Strip()), b.Strip()).Do(func(n int) int {
		return n
	})

	result := make(chan int, 1)
	go func() {
		n, err := b.Recv()
		if err != nil {
			t.Errorf("recv: %v", err)
		}
		result <- n
	}()
	time.Sleep(10 * time.Millisecond) // let the recv request queue first
	if err := a.Send(5); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got := <-result; got != 5 {
		t.Fatalf("recv got %d, want 5", got)
	}
}

func TestBidirSendRecv(t *testing.T) {
	skipRace(t)
	j := newJunction(t)
	c := join.NewBidirChannel[string, int](j)
	join.WhenBidir(j, c.Strip()).Do(func(s string) int {
		return len(s)
	})

	got, err := c.SendRecv("hello")
	if err != nil {
		t.Fatalf("send_recv: %v", err)
	}
	if got != 5 {
		t.Fatalf("send_recv got %d, want 5", got)
	}
}

func TestSendOnClosedJunction(t *testing.T) {
	j := join.New()
	a := join.NewSendChannel[int](j)
	j.Close()

	if err := a.Send(1); !errors.Is(err, join.ErrJunctionClosed) {
		t.Fatalf("send after close: %v, want ErrJunctionClosed", err)
	}
}

func TestRecvOnClosedJunctionPanics(t *testing.T) {
	j := join.New()
	b := join.NewRecvChannel[int](j)
	j.Close()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for recv on closed junction")
		}
		msg, ok := r.(string)
		if !ok || msg != "join: junction closed before reply obligation registered" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	b.Recv()
}

func TestForeignChannelPanics(t *testing.T) {
	j1 := newJunction(t)
	j2 := newJunction(t)
	a := join.NewSendChannel[int](j1)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for foreign channel")
		}
		msg, ok := r.(string)
		if !ok || msg != "join: channel declared on a foreign junction" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	join.When(j2, a.Strip())
}
