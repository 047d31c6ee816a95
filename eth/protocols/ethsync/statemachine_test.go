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

import (
	"testing"

	"github.com/coreward/ethsync/core/types"
)

func TestChangeState_IdempotentOnEqualState(t *testing.T) {
	chain := newTestChain(2)
	h, peerSide := newTestHandler(chain, &testQueue{}, nil)
	h.stats.AddHeaders(5)

	if err := h.ChangeState(Idle); err != nil {
		t.Fatalf("ChangeState: %v", err)
	}
	headers, _ := h.stats.Snapshot()
	if headers != 5 {
		t.Fatalf("stats were reset on a no-op transition: headers = %d", headers)
	}
	_ = peerSide
}

func TestChangeState_ToHashRetrieving_SendsRequest(t *testing.T) {
	chain := newTestChain(4)
	h, peerSide := newTestHandler(chain, &testQueue{}, nil)

	done := make(chan error, 1)
	go func() { done <- h.ChangeState(HashRetrieving) }()

	msg, err := peerSide.ReadMsg()
	if err != nil {
		t.Fatalf("ReadMsg: %v", err)
	}
	if msg.Code != GetBlockHeadersMsg {
		t.Fatalf("code = %d, want GetBlockHeadersMsg", msg.Code)
	}
	msg.Discard()

	if err := <-done; err != nil {
		t.Fatalf("ChangeState: %v", err)
	}
	if h.SyncState() != HashRetrieving {
		t.Fatalf("state = %v, want HashRetrieving", h.SyncState())
	}
}

func TestHandleBlockHeaders_InitialProbe(t *testing.T) {
	chain := newTestChain(3)
	h, _ := newTestHandler(chain, &testQueue{}, nil)
	h.setPendingHeaders(requestByHash(chain.CurrentHeader().Hash(), 1, 0, false))

	if err := h.HandleBlockHeaders([]*types.Header{chain.CurrentHeader()}); err != nil {
		t.Fatalf("HandleBlockHeaders: %v", err)
	}
	if !h.handshakeDone() {
		t.Fatalf("expected handshake to complete from the initial probe")
	}
}

func TestHandleBlockHeaders_HeaderRetrieving_Empty(t *testing.T) {
	chain := newTestChain(3)
	h, _ := newTestHandler(chain, &testQueue{}, nil)
	h.completeHandshake(BlockIdentifier{})
	h.SetSyncDone(false)
	h.setSyncState(HashRetrieving)
	h.setPendingHeaders(requestByNumber(1, 10))

	if err := h.HandleBlockHeaders(nil); err != nil {
		t.Fatalf("HandleBlockHeaders: %v", err)
	}
	if h.SyncState() != DoneHashRetrieving {
		t.Fatalf("state = %v, want DoneHashRetrieving", h.SyncState())
	}
}

func TestHandleBlockHeaders_ForwardSync_ChainsAndFollowsUp(t *testing.T) {
	chain := newTestChain(4) // headers 0..3
	queue := &testQueue{}
	h, peerSide := newTestHandler(chain, queue, nil)
	h.completeHandshake(BlockIdentifier{})
	h.SetSyncDone(false)
	h.setSyncState(HashRetrieving)
	h.mu.Lock()
	h.eldestHash = chain.byNumber(0).Hash()
	h.hasEldestHash = true
	h.mu.Unlock()
	h.setPendingHeaders(requestByNumber(1, 3))

	batch := chain.GetHeadersFrom(HashOrNumber{Number: 1}, 0, 3, false)

	done := make(chan error, 1)
	go func() { done <- h.HandleBlockHeaders(batch) }()

	msg, err := peerSide.ReadMsg()
	if err != nil {
		t.Fatalf("ReadMsg: %v", err)
	}
	if msg.Code != GetBlockHeadersMsg {
		t.Fatalf("code = %d, want GetBlockHeadersMsg (follow-up request)", msg.Code)
	}
	var req GetBlockHeadersRequest
	if err := msg.Decode(&req); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.Origin.Number != 4 {
		t.Fatalf("follow-up origin = %d, want 4", req.Origin.Number)
	}

	if err := <-done; err != nil {
		t.Fatalf("HandleBlockHeaders: %v", err)
	}
	if len(queue.headers) != 3 {
		t.Fatalf("expected 3 headers queued, got %d", len(queue.headers))
	}
	h.mu.Lock()
	eldest := h.eldestHash
	h.mu.Unlock()
	if want := batch[len(batch)-1].Hash(); eldest != want {
		t.Fatalf("eldestHash = %x, want %x", eldest, want)
	}
}

func TestHandleBlockHeaders_BadChaining_DropsPeer(t *testing.T) {
	chain := newTestChain(4)
	queue := &testQueue{}
	events := &testListener{}
	h, _ := newTestHandler(chain, queue, events)
	h.completeHandshake(BlockIdentifier{})
	h.SetSyncDone(false)
	h.setSyncState(HashRetrieving)
	h.mu.Lock()
	h.eldestHash = chain.byNumber(0).Hash()
	h.hasEldestHash = true
	h.mu.Unlock()
	h.setPendingHeaders(requestByNumber(1, 3))

	batch := chain.GetHeadersFrom(HashOrNumber{Number: 1}, 0, 3, false)
	// Break the parent chain: header[1].ParentHash no longer matches header[0].
	broken := make([]*types.Header, len(batch))
	copy(broken, batch)
	tampered := *broken[1]
	tampered.ParentHash = [32]byte{0x99}
	broken[1] = &tampered

	if err := h.HandleBlockHeaders(broken); err == nil {
		t.Fatalf("expected an error for a broken parent chain")
	}
	if len(queue.dropped) != 1 || queue.dropped[0] != h.ID() {
		t.Fatalf("expected the peer to be dropped from the queue, got %v", queue.dropped)
	}
	if len(events.useless) != 1 {
		t.Fatalf("expected one OnUselessPeer callback, got %v", events.useless)
	}
}

func TestHandleBlockHeaders_NewBlockHeaders_UpdatesBest(t *testing.T) {
	chain := newTestChain(5)
	queue := &testQueue{}
	events := &testListener{}
	h, _ := newTestHandler(chain, queue, events)
	h.completeHandshake(BlockIdentifier{})
	h.SetSyncDone(true)
	h.setSyncState(Idle)
	headers := chain.GetHeadersFrom(HashOrNumber{Number: 3}, 0, 1, false)
	h.setPendingHeaders(requestByNumber(3, 1))

	if err := h.HandleBlockHeaders(headers); err != nil {
		t.Fatalf("HandleBlockHeaders: %v", err)
	}
	best := h.BestKnownBlock()
	if best == nil || best.Number != 3 {
		t.Fatalf("bestKnownBlock = %+v, want number 3", best)
	}
	if len(events.numbers) != 1 || events.numbers[0] != 3 {
		t.Fatalf("expected one OnNewBlockNumber(3) callback, got %v", events.numbers)
	}
	if len(queue.headers) != 1 {
		t.Fatalf("expected the header to be queued")
	}
}
