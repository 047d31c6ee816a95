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
)

func TestValidateHeaders_NilRequest(t *testing.T) {
	chain := newTestChain(2)
	h, _ := newTestHandler(chain, &testQueue{}, nil)
	if err := h.validateHeaders(nil, nil); err != errUnexpectedMsg {
		t.Fatalf("err = %v, want errUnexpectedMsg", err)
	}
}

func TestValidateHeaders_TooMany(t *testing.T) {
	chain := newTestChain(5)
	h, _ := newTestHandler(chain, &testQueue{}, nil)
	req := requestByNumber(1, 2)
	headers := chain.GetHeadersFrom(HashOrNumber{Number: 1}, 0, 5, false)
	if err := h.validateHeaders(&req, headers); err != errInvalidHeaders {
		t.Fatalf("err = %v, want errInvalidHeaders", err)
	}
}

func TestValidateHeaders_ParentChainBroken(t *testing.T) {
	chain := newTestChain(5)
	h, _ := newTestHandler(chain, &testQueue{}, nil)
	h.setSyncState(HashRetrieving)

	req := requestByNumber(1, 3)
	headers := chain.GetHeadersFrom(HashOrNumber{Number: 1}, 0, 3, false)
	// Break the chain by swapping two headers out of parent order.
	headers[1], headers[2] = headers[2], headers[1]

	if err := h.validateHeaders(&req, headers); err != errInvalidHeaders {
		t.Fatalf("err = %v, want errInvalidHeaders", err)
	}
}

func TestValidateHeaders_WellFormed(t *testing.T) {
	chain := newTestChain(5)
	h, _ := newTestHandler(chain, &testQueue{}, nil)
	h.setSyncState(HashRetrieving)

	req := requestByNumber(1, 3)
	headers := chain.GetHeadersFrom(HashOrNumber{Number: 1}, 0, 3, false)
	if err := h.validateHeaders(&req, headers); err != nil {
		t.Fatalf("validateHeaders: %v", err)
	}
}

func TestValidateBodies_PartialResponseTolerated(t *testing.T) {
	chain := newTestChain(3)
	h, _ := newTestHandler(chain, &testQueue{}, nil)
	headers := chain.GetHeadersFrom(HashOrNumber{Number: 1}, 0, 2, false)
	sent := []BlockHeaderWrapper{
		{Header: headers[0], PeerID: "other-peer"},
		{Header: headers[1], PeerID: "other-peer"},
	}
	// Best known is behind both sent headers, so neither is "expected" yet;
	// only one of the two bodies arrives, and the missing one isn't this
	// peer's own header, so the partial reply is tolerated.
	h.updateBestKnownBlock(BlockIdentifier{Number: 0})

	if err := h.validateBodies(sent, BlockBodiesPacket{{}}); err != nil {
		t.Fatalf("validateBodies: %v", err)
	}
}

func TestValidateBodies_OwnHeaderMissing(t *testing.T) {
	chain := newTestChain(3)
	h, _ := newTestHandler(chain, &testQueue{}, nil)
	headers := chain.GetHeadersFrom(HashOrNumber{Number: 1}, 0, 2, false)
	sent := []BlockHeaderWrapper{
		{Header: headers[0], PeerID: h.ID()},
		{Header: headers[1], PeerID: "other-peer"},
	}
	// Best known is behind both headers, so no body is "expected" yet, but
	// the peer that supplied headers[0] is this handler's own peer, and it
	// answered with nothing — that specific gap is never tolerated.
	h.updateBestKnownBlock(BlockIdentifier{Number: 0})

	if err := h.validateBodies(sent, nil); err != errInvalidBodies {
		t.Fatalf("err = %v, want errInvalidBodies", err)
	}
}

func TestValidateBodies_OwnHeaderMissing_IndependentOfSyncDone(t *testing.T) {
	chain := newTestChain(6)
	h, _ := newTestHandler(chain, &testQueue{}, nil)
	h.SetSyncDone(true)
	headers := chain.GetHeadersFrom(HashOrNumber{Number: 1}, 0, 5, false)
	sent := make([]BlockHeaderWrapper, len(headers))
	for i, hdr := range headers {
		sent[i] = BlockHeaderWrapper{Header: hdr, PeerID: h.ID()}
	}
	// Long sync has finished, so the "too few bodies" check is skipped, but
	// the peer still owes the body at position 3 (its own header) and
	// answered with only 3 of the 5 it was sent — this must still be
	// rejected regardless of syncDone.
	bodies := BlockBodiesPacket{{}, {}, {}}

	if err := h.validateBodies(sent, bodies); err != errInvalidBodies {
		t.Fatalf("err = %v, want errInvalidBodies", err)
	}
}

func TestMergeBodies(t *testing.T) {
	chain := newTestChain(3)
	headers := chain.GetHeadersFrom(HashOrNumber{Number: 1}, 0, 2, false)
	sent := []BlockHeaderWrapper{
		{Header: headers[0], PeerID: "p"},
		{Header: headers[1], PeerID: "p"},
	}
	bodies := BlockBodiesPacket{{}, {}}
	blocks, err := mergeBodies(sent, bodies)
	if err != nil {
		t.Fatalf("mergeBodies: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	if blocks[0].NumberU64() != headers[0].Number.Uint64() {
		t.Fatalf("block number mismatch")
	}
}
