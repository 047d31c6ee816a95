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
	"github.com/google/uuid"

	"github.com/coreward/ethsync/core/types"
)

// negativeGap reports whether the block is at or behind the local chain,
// meaning the local chain itself needs to reorganize onto the peer's fork.
func (h *PeerHandler) negativeGap(block BlockIdentifier) bool {
	local := h.chain.CurrentHeader()
	return block.Number <= local.Number.Uint64()
}

// RecoverGap begins a fork-recovery episode for a block that does not chain
// cleanly onto the local view (i.e. its announced parent is unknown
// locally). Nothing in this package calls it; the caller invokes it when the
// local chain cannot place an announced or delivered block.
//
// Unlike ChangeState(HashRetrieving), which starts a fresh forward sync from
// the local head, entering HashRetrieving here must not also fire the
// regular startHeaderRetrieving request — that would send a second,
// unrelated GET_BLOCK_HEADERS and immediately overwrite the pending-request
// slot startGapRecovery is about to set.
func (h *PeerHandler) RecoverGap(block BlockIdentifier) error {
	h.setSyncState(HashRetrieving)
	h.stats.Reset()
	return h.startGapRecovery(block)
}

func (h *PeerHandler) startGapRecovery(block BlockIdentifier) error {
	h.mu.Lock()
	h.gapBlock = &block
	h.lastHashToAsk = block.Hash
	h.hasLastHashToAsk = true
	h.commonAncestor = false
	h.hasEldestHash = false
	h.mu.Unlock()
	h.forkEpisode = uuid.New()

	local := h.chain.CurrentHeader()
	batch := h.config.ForkCoverBatch
	if batch == 0 {
		batch = ForkCoverBatchSize
	}

	h.log.Info("starting fork recovery", "episode", h.forkEpisode, "gapBlock", block.Number, "localBest", local.Number)

	if h.negativeGap(block) {
		return h.sendGetHeadersByHash(block.Hash, batch, 0, true)
	}
	start := uint64(0)
	if local.Number.Uint64() > uint64(batch-1) {
		start = local.Number.Uint64() - uint64(batch-1)
	}
	max := batch
	if remain := local.Number.Uint64() - start + 1; uint64(max) > remain {
		max = int(remain)
	}
	return h.sendGetHeadersByNumber(start, max)
}

// processForkCoverage implements the fork-cover algorithm: walk the batch
// from newest to oldest looking for a header the local chain already has.
func (h *PeerHandler) processForkCoverage(headers []*types.Header) error {
	h.mu.Lock()
	gap := h.gapBlock
	negative := gap != nil && h.negativeGap(*gap)
	h.mu.Unlock()

	if len(headers) == 0 {
		h.dropConnection(ReasonUselessPeer)
		return errNoCommonAncestor
	}

	ordered := headers
	if !negative {
		ordered = make([]*types.Header, len(headers))
		for i, hdr := range headers {
			ordered[len(headers)-1-i] = hdr
		}
	} else if gap != nil && ordered[0].Hash() != gap.Hash {
		h.dropConnection(ReasonUselessPeer)
		return errInvalidHeaders
	}

	var (
		toQueue []*types.Header
		found   bool
	)
	for _, hdr := range ordered {
		if h.chain.HasBlock(hdr.Hash()) {
			found = true
			break
		}
		toQueue = append(toQueue, hdr)
	}
	if !found {
		h.dropConnection(ReasonUselessPeer)
		return errNoCommonAncestor
	}

	h.mu.Lock()
	h.commonAncestor = true
	h.mu.Unlock()

	if len(toQueue) > 0 {
		if !h.queue.ValidateAndAddHeaders(toQueue, h.id) {
			h.dropConnection(ReasonUselessPeer)
			return errQueueRejected
		}
	}

	if negative {
		return h.ChangeState(BlockRetrieving)
	}
	local := h.chain.CurrentHeader()
	return h.sendGetHeadersByNumber(local.Number.Uint64()+1, h.config.MaxHashesAsk)
}

// processGapRecovery continues forward header sync following an already
// located common ancestor, terminating once lastHashToAsk is observed.
func (h *PeerHandler) processGapRecovery(headers []*types.Header) error {
	h.mu.Lock()
	target := h.lastHashToAsk
	hasTarget := h.hasLastHashToAsk
	h.mu.Unlock()

	// An empty reply is a legal end-of-stream signal here, not a protocol
	// violation: the peer has nothing further between the common ancestor
	// and the fork block. Treat it the same as reaching lastHashToAsk.
	if len(headers) == 0 {
		return h.ChangeState(BlockRetrieving)
	}
	reached := false
	for i, hdr := range headers {
		if hasTarget && hdr.Hash() == target {
			headers = headers[:i+1]
			reached = true
			break
		}
	}
	if !h.queue.ValidateAndAddHeaders(headers, h.id) {
		h.dropConnection(ReasonUselessPeer)
		return errQueueRejected
	}
	if reached {
		return h.ChangeState(BlockRetrieving)
	}
	last := headers[len(headers)-1]
	return h.sendGetHeadersByNumber(last.Number.Uint64()+1, h.config.MaxHashesAsk)
}
