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
	"github.com/coreward/ethsync/core/types"
)

// validateHeaders checks a BLOCK_HEADERS reply against the request that
// solicited it. It returns errInvalidHeaders if the peer violated the
// protocol and the response must not be processed further.
func (h *PeerHandler) validateHeaders(req *GetHeadersRequest, headers []*types.Header) error {
	if req == nil {
		return errUnexpectedMsg
	}
	if len(headers) > req.MaxHeaders {
		return errInvalidHeaders
	}
	best := h.BestKnownBlock()

	if len(headers) == 0 {
		if best == nil {
			return errInvalidHeaders
		}
		if !req.ByHash() && req.StartNumber <= best.Number {
			return errInvalidHeaders
		}
		return nil
	}

	first := headers[0]
	if req.ByHash() && req.Skip == 0 {
		if first.Hash() != req.StartHash {
			return errInvalidHeaders
		}
	} else if !req.ByHash() {
		if first.Number.Uint64() != req.StartNumber+req.Skip {
			return errInvalidHeaders
		}
	}

	h.mu.Lock()
	syncDone := h.syncDone
	eldest, hasEldest := h.eldestHash, h.hasEldestHash
	state := h.syncState
	h.mu.Unlock()

	if !syncDone && hasEldest && !req.ByHash() {
		if first.ParentHash != eldest {
			return errInvalidHeaders
		}
	}

	if state == HashRetrieving {
		for i := 1; i < len(headers); i++ {
			prev, cur := headers[i-1], headers[i]
			if req.Reverse {
				if cur.Number.Uint64() != prev.Number.Uint64()-1 || prev.ParentHash != cur.Hash() {
					return errInvalidHeaders
				}
			} else {
				if cur.Number.Uint64() != prev.Number.Uint64()+1 || cur.ParentHash != prev.Hash() {
					return errInvalidHeaders
				}
			}
		}
	}
	return nil
}

// expectedBodyCount returns the number of leading sentHeaders entries whose
// number is within the peer's best known block, per the long-sync body
// validation rule.
func (h *PeerHandler) expectedBodyCount(sent []BlockHeaderWrapper) int {
	best := h.BestKnownBlock()
	if best == nil {
		return 0
	}
	count := 0
	for _, w := range sent {
		if w.Header.Number.Uint64() > best.Number {
			break
		}
		count++
	}
	return count
}

// validateBodies checks a BLOCK_BODIES reply against sentHeaders. A
// response may legally be partial: the "too few bodies" check only applies
// while long sync is still running (headers beyond the peer's best known
// block aren't expected yet). Independently of syncDone, a peer that
// originally supplied a header and failed to deliver its body is always
// rejected. This preserves the source behavior of tolerating forwarded
// partial responses (see design notes on the open question).
func (h *PeerHandler) validateBodies(sent []BlockHeaderWrapper, bodies BlockBodiesPacket) error {
	h.mu.Lock()
	syncDone := h.syncDone
	h.mu.Unlock()

	if !syncDone {
		expected := h.expectedBodyCount(sent)
		if len(bodies) < expected {
			return errInvalidBodies
		}
	}
	if len(bodies) < len(sent) {
		missing := sent[len(bodies)]
		if missing.PeerID == h.id {
			return errInvalidBodies
		}
	}
	return nil
}

// mergeBodies pairs sentHeaders with the returned bodies in order, building
// full blocks. Any construction failure rejects the whole batch. Wrappers
// that were merged are removed from sentHeaders by the caller.
func mergeBodies(sent []BlockHeaderWrapper, bodies BlockBodiesPacket) ([]*types.Block, error) {
	n := len(bodies)
	if n > len(sent) {
		return nil, errInvalidBodies
	}
	blocks := make([]*types.Block, 0, n)
	for i := 0; i < n; i++ {
		body := bodies[i]
		block := types.NewBlockWithHeader(sent[i].Header).WithBody(types.Body{
			Transactions: body.Transactions,
			Uncles:       body.Uncles,
		})
		blocks = append(blocks, block)
	}
	return blocks, nil
}
