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
	"math/big"
	"testing"
	"time"

	"github.com/coreward/ethsync/p2p"
	"github.com/coreward/ethsync/rlp"
)

// newTestMsg builds a p2p.Msg carrying the RLP encoding of val, without
// routing it through an actual pipe — useful for unit-testing a single
// handler method in isolation.
func newTestMsg(t *testing.T, code uint64, val interface{}) p2p.Msg {
	t.Helper()
	size, r, err := rlp.EncodeToReader(val)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return p2p.Msg{Code: code, Size: uint32(size), Payload: r}
}

func newTestHandler(chain *testChain, queue *testQueue, events Listener) (*PeerHandler, *p2p.MsgPipeRW) {
	rw, peerSide := p2p.MsgPipe()
	cfg := DefaultConfig()
	cfg.NetworkID = 7
	cfg.StatusTimeout = 0 // most tests don't drive Run() to completion fast enough to matter; opt in explicitly where needed
	h := NewPeerHandler("peer1", ProtocolVersion, rw, nil, cfg, chain, queue, events)
	return h, peerSide
}

func TestHandleStatus_Success(t *testing.T) {
	chain := newTestChain(3)
	queue := &testQueue{}
	events := &testListener{}
	h, peerSide := newTestHandler(chain, queue, events)
	go func() {
		// drain the outbound GET_BLOCK_HEADERS probe so HandleStatus's send
		// doesn't block forever on the pipe.
		if msg, err := peerSide.ReadMsg(); err == nil {
			msg.Discard()
		}
	}()

	head := chain.CurrentHeader()
	msg := newTestMsg(t, StatusMsg, &StatusPacket{
		ProtocolVersion: ProtocolVersion,
		NetworkID:       7,
		TD:              big.NewInt(3),
		Head:            head.Hash(),
		Genesis:         chain.GenesisHash(),
	})

	if err := h.HandleStatus(msg); err != nil {
		t.Fatalf("HandleStatus: %v", err)
	}
	if h.handshakeDone() {
		t.Fatalf("handshake should not be complete until the initial probe answers")
	}
	if len(events.statuses) != 1 {
		t.Fatalf("expected one status callback, got %d", len(events.statuses))
	}
	if got := events.statuses[0].NetworkID; got != 7 {
		t.Fatalf("networkID = %d, want 7", got)
	}

	h.completeHandshake(BlockIdentifier{Number: head.Number.Uint64(), Hash: head.Hash()})
	if !h.handshakeDone() {
		t.Fatalf("handshake should be complete")
	}
	if best := h.BestKnownBlock(); best == nil || best.Number != head.Number.Uint64() {
		t.Fatalf("bestKnownBlock not set correctly: %+v", best)
	}
}

func TestHandleStatus_GenesisMismatch(t *testing.T) {
	chain := newTestChain(2)
	queue := &testQueue{}
	var gotReason p2p.DiscReason
	rw, _ := p2p.MsgPipe()
	cfg := DefaultConfig()
	cfg.NetworkID = 7
	h := NewPeerHandler("peer1", ProtocolVersion, rw, func(r p2p.DiscReason) { gotReason = r }, cfg, chain, queue, nil)

	msg := newTestMsg(t, StatusMsg, &StatusPacket{
		ProtocolVersion: ProtocolVersion,
		NetworkID:       7,
		TD:              big.NewInt(1),
		Head:            chain.CurrentHeader().Hash(),
		Genesis:         [32]byte{0xff}, // wrong genesis
	})

	if err := h.HandleStatus(msg); err != errGenesisMismatch {
		t.Fatalf("err = %v, want errGenesisMismatch", err)
	}
	if gotReason != p2p.DiscIncompatibleVersion {
		t.Fatalf("disconnect reason = %v, want DiscIncompatibleVersion", gotReason)
	}
	if len(queue.dropped) != 0 {
		t.Fatalf("handshake-time disconnect must not touch the queue, got %v", queue.dropped)
	}
}

func TestHandleStatus_ProtocolVersionMismatch(t *testing.T) {
	chain := newTestChain(2)
	queue := &testQueue{}
	var gotReason p2p.DiscReason
	rw, _ := p2p.MsgPipe()
	cfg := DefaultConfig()
	cfg.NetworkID = 7
	h := NewPeerHandler("peer1", ProtocolVersion, rw, func(r p2p.DiscReason) { gotReason = r }, cfg, chain, queue, nil)

	msg := newTestMsg(t, StatusMsg, &StatusPacket{
		ProtocolVersion: ProtocolVersion - 1,
		NetworkID:       7,
		TD:              big.NewInt(1),
		Head:            chain.CurrentHeader().Hash(),
		Genesis:         chain.GenesisHash(),
	})

	if err := h.HandleStatus(msg); err != errProtocolMismatch {
		t.Fatalf("err = %v, want errProtocolMismatch", err)
	}
	if gotReason != p2p.DiscIncompatibleVersion {
		t.Fatalf("disconnect reason = %v, want DiscIncompatibleVersion", gotReason)
	}
	if len(queue.dropped) != 0 {
		t.Fatalf("handshake-time disconnect must not touch the queue, got %v", queue.dropped)
	}
}

func TestHandleStatus_NetworkIDMismatch(t *testing.T) {
	chain := newTestChain(2)
	queue := &testQueue{}
	var gotReason p2p.DiscReason
	rw, _ := p2p.MsgPipe()
	cfg := DefaultConfig()
	cfg.NetworkID = 7
	h := NewPeerHandler("peer1", ProtocolVersion, rw, func(r p2p.DiscReason) { gotReason = r }, cfg, chain, queue, nil)

	msg := newTestMsg(t, StatusMsg, &StatusPacket{
		ProtocolVersion: ProtocolVersion,
		NetworkID:       99,
		TD:              big.NewInt(1),
		Head:            chain.CurrentHeader().Hash(),
		Genesis:         chain.GenesisHash(),
	})

	if err := h.HandleStatus(msg); err != errNetworkIDMismatch {
		t.Fatalf("err = %v, want errNetworkIDMismatch", err)
	}
	if gotReason != p2p.DiscInvalidIdentity {
		t.Fatalf("disconnect reason = %v, want DiscInvalidIdentity", gotReason)
	}
}

func TestHandleStatus_PeerDiscoveryMode(t *testing.T) {
	chain := newTestChain(2)
	queue := &testQueue{}
	var gotReason p2p.DiscReason
	rw, _ := p2p.MsgPipe()
	cfg := DefaultConfig()
	cfg.NetworkID = 7
	cfg.PeerDiscoveryMode = true
	h := NewPeerHandler("peer1", ProtocolVersion, rw, func(r p2p.DiscReason) { gotReason = r }, cfg, chain, queue, nil)

	msg := newTestMsg(t, StatusMsg, &StatusPacket{
		ProtocolVersion: ProtocolVersion,
		NetworkID:       7,
		TD:              big.NewInt(1),
		Head:            chain.CurrentHeader().Hash(),
		Genesis:         chain.GenesisHash(),
	})

	done := make(chan error, 1)
	go func() { done <- h.HandleStatus(msg) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("HandleStatus: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("HandleStatus blocked — discovery-mode peers must not send a header probe")
	}
	if gotReason != p2p.DiscRequested {
		t.Fatalf("disconnect reason = %v, want DiscRequested", gotReason)
	}
}
