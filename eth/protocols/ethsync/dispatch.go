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
	"github.com/coreward/ethsync/common"
	"github.com/coreward/ethsync/p2p"
)

// sendGetHeadersByNumber requests up to max headers starting at the given
// block number, walking forward with no gaps.
func (h *PeerHandler) sendGetHeadersByNumber(start uint64, max int) error {
	req := requestByNumber(start, max)
	h.setPendingHeaders(req)
	return p2p.Send(h.rw, GetBlockHeadersMsg, &GetBlockHeadersRequest{
		Origin: HashOrNumber{Number: start},
		Amount: uint64(max),
	})
}

// sendGetHeadersByHash requests up to max headers starting at the given
// hash, optionally walking in reverse and skipping entries.
func (h *PeerHandler) sendGetHeadersByHash(start common.Hash, max int, skip uint64, reverse bool) error {
	req := requestByHash(start, max, skip, reverse)
	h.setPendingHeaders(req)
	return p2p.Send(h.rw, GetBlockHeadersMsg, &GetBlockHeadersRequest{
		Origin:  HashOrNumber{Hash: start},
		Amount:  uint64(max),
		Skip:    skip,
		Reverse: reverse,
	})
}

func (h *PeerHandler) setPendingHeaders(req GetHeadersRequest) {
	h.mu.Lock()
	h.pendingHeaders = &req
	h.mu.Unlock()
}

func (h *PeerHandler) takePendingHeaders() *GetHeadersRequest {
	h.mu.Lock()
	defer h.mu.Unlock()
	req := h.pendingHeaders
	h.pendingHeaders = nil
	return req
}

// sendGetBodies drains one batch of headers awaiting bodies from the shared
// queue and requests their bodies. It returns false, transitioning the
// handler to Idle, when the queue currently has nothing pending.
func (h *PeerHandler) sendGetBodies() (bool, error) {
	pending := h.queue.PendingHeaders()
	if pending == 0 {
		h.setSyncState(Idle)
		return false, nil
	}
	batch := h.queue.DrainPendingHeaders(h.config.MaxHashesAsk)
	if len(batch) == 0 {
		h.setSyncState(Idle)
		return false, nil
	}
	h.reserveSent(batch)

	hashes := make([]common.Hash, len(batch))
	for i, w := range batch {
		hashes[i] = w.Header.Hash()
	}
	if err := p2p.Send(h.rw, GetBlockBodiesMsg, GetBlockBodiesPacket(hashes)); err != nil {
		return false, err
	}
	return true, nil
}
