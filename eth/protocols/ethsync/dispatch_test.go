// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package ethsync

import "testing"

func TestSendGetBodies_EmptyQueueGoesIdle(t *testing.T) {
	chain := newTestChain(2)
	h, _ := newTestHandler(chain, &testQueue{}, nil)

	ok, err := h.sendGetBodies()
	if err != nil {
		t.Fatalf("sendGetBodies: %v", err)
	}
	if ok {
		t.Fatalf("expected sendGetBodies to report nothing to do")
	}
	if h.SyncState() != Idle {
		t.Fatalf("state = %v, want Idle", h.SyncState())
	}
}

func TestSendGetBodies_DrainsQueueAndSends(t *testing.T) {
	chain := newTestChain(3)
	queue := &testQueue{}
	headers := chain.GetHeadersFrom(HashOrNumber{Number: 1}, 0, 2, false)
	queue.ValidateAndAddHeaders(headers, "some-peer")

	h, peerSide := newTestHandler(chain, queue, nil)

	done := make(chan struct {
		ok  bool
		err error
	}, 1)
	go func() {
		ok, err := h.sendGetBodies()
		done <- struct {
			ok  bool
			err error
		}{ok, err}
	}()

	msg, err := peerSide.ReadMsg()
	if err != nil {
		t.Fatalf("ReadMsg: %v", err)
	}
	if msg.Code != GetBlockBodiesMsg {
		t.Fatalf("code = %d, want GetBlockBodiesMsg", msg.Code)
	}
	var req GetBlockBodiesPacket
	if err := msg.Decode(&req); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(req) != 2 {
		t.Fatalf("requested %d hashes, want 2", len(req))
	}

	result := <-done
	if result.err != nil {
		t.Fatalf("sendGetBodies: %v", result.err)
	}
	if !result.ok {
		t.Fatalf("expected sendGetBodies to report work in flight")
	}
	if got := h.peekSent(); len(got) != 2 {
		t.Fatalf("sentHeaders has %d entries, want 2", len(got))
	}
}

func TestOnShutdown_ReturnsOutstandingHeadersToQueue(t *testing.T) {
	chain := newTestChain(3)
	queue := &testQueue{}
	h, _ := newTestHandler(chain, queue, nil)

	wrappers := []BlockHeaderWrapper{
		{Header: chain.byNumber(1), PeerID: h.ID()},
		{Header: chain.byNumber(2), PeerID: h.ID()},
	}
	h.reserveSent(wrappers)

	h.onShutdown()
	if len(queue.pending) != 2 {
		t.Fatalf("expected 2 headers returned to the queue, got %d", len(queue.pending))
	}
	if len(h.peekSent()) != 0 {
		t.Fatalf("expected sentHeaders to be drained")
	}

	// Calling onShutdown a second time must be a no-op, not a second return.
	h.onShutdown()
	if len(queue.pending) != 2 {
		t.Fatalf("onShutdown must be idempotent, got %d pending after second call", len(queue.pending))
	}
}

func TestPendingHeaders_SingleOutstandingSlot(t *testing.T) {
	chain := newTestChain(2)
	h, peerSide := newTestHandler(chain, &testQueue{}, nil)

	go func() {
		msg, err := peerSide.ReadMsg()
		if err == nil {
			msg.Discard()
		}
	}()
	if err := h.sendGetHeadersByNumber(1, 10); err != nil {
		t.Fatalf("sendGetHeadersByNumber: %v", err)
	}
	req := h.takePendingHeaders()
	if req == nil {
		t.Fatalf("expected a pending request to have been recorded")
	}
	if req2 := h.takePendingHeaders(); req2 != nil {
		t.Fatalf("takePendingHeaders should clear the slot, got %+v", req2)
	}
}
