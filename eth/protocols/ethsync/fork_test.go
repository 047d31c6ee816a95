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

func TestNegativeGap(t *testing.T) {
	chain := newTestChain(5) // local head is number 4
	h, _ := newTestHandler(chain, &testQueue{}, nil)

	if !h.negativeGap(BlockIdentifier{Number: 2}) {
		t.Fatalf("block behind the local head should be a negative gap")
	}
	if h.negativeGap(BlockIdentifier{Number: 10}) {
		t.Fatalf("block ahead of the local head should be a positive gap")
	}
}

func TestStartGapRecovery_NegativeGap_RequestsReverseByHash(t *testing.T) {
	chain := newTestChain(5)
	h, peerSide := newTestHandler(chain, &testQueue{}, nil)

	gapBlock := BlockIdentifier{Number: 2, Hash: [32]byte{0x02}}
	done := make(chan error, 1)
	go func() { done <- h.RecoverGap(gapBlock) }()

	msg, err := peerSide.ReadMsg()
	if err != nil {
		t.Fatalf("ReadMsg: %v", err)
	}
	var req GetBlockHeadersRequest
	if err := msg.Decode(&req); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.Origin.Hash != gapBlock.Hash {
		t.Fatalf("origin hash = %x, want %x", req.Origin.Hash, gapBlock.Hash)
	}
	if !req.Reverse {
		t.Fatalf("expected a reverse walk for a negative gap")
	}
	if err := <-done; err != nil {
		t.Fatalf("RecoverGap: %v", err)
	}
}

func TestStartGapRecovery_PositiveGap_RequestsForwardByNumber(t *testing.T) {
	chain := newTestChain(5) // head number 4
	h, peerSide := newTestHandler(chain, &testQueue{}, nil)

	gapBlock := BlockIdentifier{Number: 100, Hash: [32]byte{0x64}}
	done := make(chan error, 1)
	go func() { done <- h.RecoverGap(gapBlock) }()

	msg, err := peerSide.ReadMsg()
	if err != nil {
		t.Fatalf("ReadMsg: %v", err)
	}
	var req GetBlockHeadersRequest
	if err := msg.Decode(&req); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.Origin.Hash != ([32]byte{}) {
		t.Fatalf("expected a by-number origin for a positive gap")
	}
	if req.Reverse {
		t.Fatalf("expected a forward walk for a positive gap")
	}
	if err := <-done; err != nil {
		t.Fatalf("RecoverGap: %v", err)
	}
}

func TestProcessForkCoverage_NegativeGap_FindsAncestor(t *testing.T) {
	chain := newTestChain(5) // headers 0..4
	queue := &testQueue{}
	h, _ := newTestHandler(chain, queue, nil)

	gap := BlockIdentifier{Number: 3, Hash: chain.byNumber(3).Hash()}
	h.mu.Lock()
	h.gapBlock = &gap
	h.mu.Unlock()

	// Reverse batch starting at the gap block: [3, 2, 1]. Every header in
	// this test chain is already locally known, so the walk finds an
	// ancestor immediately, at the gap block itself, and queues nothing.
	batch := []*types.Header{chain.byNumber(3), chain.byNumber(2), chain.byNumber(1)}

	if err := h.processForkCoverage(batch); err != nil {
		t.Fatalf("processForkCoverage: %v", err)
	}
	h.mu.Lock()
	found := h.commonAncestor
	h.mu.Unlock()
	if !found {
		t.Fatalf("expected commonAncestor to be set")
	}
	if len(queue.headers) != 0 {
		t.Fatalf("expected nothing queued, everything was already locally known")
	}
	// The ancestor walk transitions to BlockRetrieving, but with nothing
	// queued for bodies the state machine immediately collapses to Idle.
	if h.SyncState() != Idle {
		t.Fatalf("state = %v, want Idle", h.SyncState())
	}
}

func TestProcessGapRecovery_EmptyReply_EndsStreamCleanly(t *testing.T) {
	chain := newTestChain(3)
	queue := &testQueue{}
	h, _ := newTestHandler(chain, queue, nil)
	h.mu.Lock()
	h.lastHashToAsk = [32]byte{0xaa}
	h.hasLastHashToAsk = true
	h.mu.Unlock()

	if err := h.processGapRecovery(nil); err != nil {
		t.Fatalf("processGapRecovery: %v", err)
	}
	if len(queue.dropped) != 0 {
		t.Fatalf("an empty reply must not drop the peer, got %v", queue.dropped)
	}
	// ChangeState(BlockRetrieving) collapses straight back to Idle because
	// nothing was queued for bodies, same as the negative-gap ancestor case.
	if h.SyncState() != Idle {
		t.Fatalf("state = %v, want Idle", h.SyncState())
	}
}

func TestProcessForkCoverage_NoAncestorFound(t *testing.T) {
	chain := newTestChain(3)
	h, _ := newTestHandler(chain, &testQueue{}, nil)

	gap := BlockIdentifier{Number: 3, Hash: [32]byte{0xaa}}
	h.mu.Lock()
	h.gapBlock = &gap
	h.mu.Unlock()

	foreign := &types.Header{Number: chain.CurrentHeader().Number, Extra: []byte{0x99}}
	if err := h.processForkCoverage([]*types.Header{foreign}); err != errInvalidHeaders && err != errNoCommonAncestor {
		t.Fatalf("err = %v, want errInvalidHeaders or errNoCommonAncestor", err)
	}
}
