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

	"github.com/coreward/ethsync/core/types"
	"github.com/coreward/ethsync/p2p"
)

func TestRun_UnexpectedMessageBeforeHandshake(t *testing.T) {
	chain := newTestChain(2)
	h, peerSide := newTestHandler(chain, &testQueue{}, nil)

	runDone := make(chan error, 1)
	go func() { runDone <- h.Run() }()

	if err := p2p.Send(peerSide, NewBlockMsg, "not a status message"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case err := <-runDone:
		if err != errNoStatusMsg {
			t.Fatalf("Run err = %v, want errNoStatusMsg", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after a pre-handshake protocol violation")
	}
}

func TestRun_HandshakeTimeoutDisconnects(t *testing.T) {
	chain := newTestChain(2)
	rw, peerSide := p2p.MsgPipe()
	cfg := DefaultConfig()
	cfg.NetworkID = 7
	cfg.StatusTimeout = 1
	var gotReason p2p.DiscReason
	h := NewPeerHandler("peer1", ProtocolVersion, rw, func(r p2p.DiscReason) {
		gotReason = r
		peerSide.Close() // a real caller tears down the connection here, unblocking ReadMsg
	}, cfg, chain, &testQueue{}, nil)

	runDone := make(chan error, 1)
	go func() { runDone <- h.Run() }()

	select {
	case <-runDone:
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after the handshake timeout fired")
	}
	if gotReason != p2p.DiscReadTimeout {
		t.Fatalf("disconnect reason = %v, want DiscReadTimeout", gotReason)
	}
}

func TestRun_HandshakeCompletesViaProbeReply(t *testing.T) {
	chain := newTestChain(2)
	h, peerSide := newTestHandler(chain, &testQueue{}, nil)

	runDone := make(chan error, 1)
	go func() { runDone <- h.Run() }()

	peerHead := chain.byNumber(1)
	if err := p2p.Send(peerSide, StatusMsg, &StatusPacket{
		ProtocolVersion: ProtocolVersion,
		NetworkID:       7,
		TD:              big.NewInt(2),
		Head:            peerHead.Hash(),
		Genesis:         chain.GenesisHash(),
	}); err != nil {
		t.Fatalf("Send STATUS: %v", err)
	}

	// The probe request (GET_BLOCK_HEADERS by hash, amount 1) arrives while the
	// handshake is still HandshakeInit; Run must still let the reply through
	// so the handshake can complete.
	probe, err := peerSide.ReadMsg()
	if err != nil {
		t.Fatalf("ReadMsg (probe): %v", err)
	}
	if probe.Code != GetBlockHeadersMsg {
		t.Fatalf("code = %d, want GetBlockHeadersMsg", probe.Code)
	}
	probe.Discard()

	if err := p2p.Send(peerSide, BlockHeadersMsg, BlockHeadersPacket{peerHead}); err != nil {
		t.Fatalf("Send BLOCK_HEADERS: %v", err)
	}

	deadline := time.After(time.Second)
	for {
		if h.handshakeDone() {
			break
		}
		select {
		case err := <-runDone:
			t.Fatalf("Run returned before completing the handshake: %v", err)
		case <-deadline:
			t.Fatalf("handshake did not complete via the probe reply")
		case <-time.After(5 * time.Millisecond):
		}
	}

	best := h.BestKnownBlock()
	if best == nil || best.Hash != peerHead.Hash() {
		t.Fatalf("bestKnownBlock = %+v, want hash %x", best, peerHead.Hash())
	}

	peerSide.Close()
	<-runDone
}

func TestRun_ServesHeaderRequests(t *testing.T) {
	chain := newTestChain(5)
	h, peerSide := newTestHandler(chain, &testQueue{}, nil)
	h.completeHandshake(BlockIdentifier{})

	runDone := make(chan error, 1)
	go func() { runDone <- h.Run() }()

	if err := p2p.Send(peerSide, GetBlockHeadersMsg, &GetBlockHeadersRequest{
		Origin: HashOrNumber{Number: 1},
		Amount: 2,
	}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	msg, err := peerSide.ReadMsg()
	if err != nil {
		t.Fatalf("ReadMsg: %v", err)
	}
	if msg.Code != BlockHeadersMsg {
		t.Fatalf("code = %d, want BlockHeadersMsg", msg.Code)
	}
	var reply BlockHeadersPacket
	if err := msg.Decode(&reply); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(reply) != 2 {
		t.Fatalf("len(reply) = %d, want 2", len(reply))
	}

	peerSide.Close()
	<-runDone
}

func TestRun_QueueRejectionDropsPeer(t *testing.T) {
	chain := newTestChain(3)
	queue := &testQueue{rejected: true}
	events := &testListener{}
	h, peerSide := newTestHandler(chain, queue, events)
	h.completeHandshake(BlockIdentifier{})
	h.SetSyncDone(true)
	h.setSyncState(Idle)
	headers := chain.GetHeadersFrom(HashOrNumber{Number: 1}, 0, 1, false)
	h.setPendingHeaders(requestByNumber(1, 1))

	runDone := make(chan error, 1)
	go func() { runDone <- h.Run() }()

	if err := p2p.Send(peerSide, BlockHeadersMsg, BlockHeadersPacket(headers)); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case err := <-runDone:
		if err != errQueueRejected {
			t.Fatalf("Run err = %v, want errQueueRejected", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after a queue rejection")
	}
	if len(queue.dropped) != 1 || queue.dropped[0] != h.ID() {
		t.Fatalf("expected the peer to be dropped from the queue, got %v", queue.dropped)
	}
	if len(events.useless) != 1 {
		t.Fatalf("expected one OnUselessPeer callback, got %v", events.useless)
	}
}

func TestHandleNewBlockHashes_RequestsSpanNotCount(t *testing.T) {
	chain := newTestChain(2)
	h, peerSide := newTestHandler(chain, &testQueue{}, nil)
	h.completeHandshake(BlockIdentifier{})
	h.SetSyncDone(true)
	h.setSyncState(Idle)

	// Two announced hashes, non-contiguous: first=100, last=105. The span
	// (105-100+1=6) differs from the announced count (2); the request must
	// use the span, not the count.
	packet := NewBlockHashesPacket{
		{Hash: [32]byte{0x01}, Number: 100},
		{Hash: [32]byte{0x02}, Number: 105},
	}

	done := make(chan error, 1)
	go func() { done <- h.handleNewBlockHashes(newTestMsg(t, NewBlockHashesMsg, packet)) }()

	msg, err := peerSide.ReadMsg()
	if err != nil {
		t.Fatalf("ReadMsg: %v", err)
	}
	if msg.Code != GetBlockHeadersMsg {
		t.Fatalf("code = %d, want GetBlockHeadersMsg", msg.Code)
	}
	var req GetBlockHeadersRequest
	if err := msg.Decode(&req); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.Origin.Number != 100 {
		t.Fatalf("origin number = %d, want 100", req.Origin.Number)
	}
	if req.Amount != 6 {
		t.Fatalf("amount = %d, want 6 (last-first+1), not the announced count", req.Amount)
	}

	if err := <-done; err != nil {
		t.Fatalf("handleNewBlockHashes: %v", err)
	}
}

func TestHandleNewBlock_LowDifficulty_Ignored(t *testing.T) {
	chain := newTestChain(3) // local total difficulty at head is 3
	queue := &testQueue{}
	h, _ := newTestHandler(chain, queue, nil)
	h.completeHandshake(BlockIdentifier{})

	block := types.NewBlockWithHeader(&types.Header{
		Number: big.NewInt(10),
		Extra:  []byte{0x77},
	})
	msg := newTestMsg(t, NewBlockMsg, &NewBlockPacket{Block: block, TD: big.NewInt(2)})

	if err := h.handleNewBlock(msg); err != nil {
		t.Fatalf("handleNewBlock: %v", err)
	}
	if best := h.BestKnownBlock(); best == nil || best.Number != 0 {
		t.Fatalf("bestKnownBlock = %+v, want unchanged (number 0)", best)
	}
	if len(queue.blocks) != 0 {
		t.Fatalf("expected no queue interaction for a low-difficulty announcement")
	}
}

func TestRun_TransactionsRespectProcessFlag(t *testing.T) {
	chain := newTestChain(2)
	h, peerSide := newTestHandler(chain, &testQueue{}, nil)
	h.completeHandshake(BlockIdentifier{})
	h.SetProcessTransactions(false)

	runDone := make(chan error, 1)
	go func() { runDone <- h.Run() }()

	if err := p2p.Send(peerSide, TransactionsMsg, TransactionsPacket(nil)); err != nil {
		t.Fatalf("Send: %v", err)
	}

	// Give dispatch a moment to run, then confirm the handler is still
	// alive and tracked nothing (transactions were disabled).
	time.Sleep(20 * time.Millisecond)
	if h.knownTxs.Cardinality() != 0 {
		t.Fatalf("expected no transactions to be tracked while disabled")
	}

	peerSide.Close()
	<-runDone
}
