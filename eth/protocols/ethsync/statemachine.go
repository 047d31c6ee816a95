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

// ChangeState is the externally driven half of the sync state machine: the
// orchestrator calls it to request a transition. It is idempotent on equal
// input, per the design's invariant.
func (h *PeerHandler) ChangeState(next SyncState) error {
	h.mu.Lock()
	cur := h.syncState
	h.mu.Unlock()
	if cur == next {
		return nil
	}
	h.setSyncState(next)
	h.stats.Reset()

	switch next {
	case HashRetrieving:
		return h.startHeaderRetrieving()
	case BlockRetrieving:
		ok, err := h.sendGetBodies()
		if err != nil {
			return err
		}
		if !ok {
			h.setSyncState(Idle)
		}
		return nil
	}
	return nil
}

func (h *PeerHandler) setSyncState(s SyncState) {
	h.mu.Lock()
	h.syncState = s
	h.mu.Unlock()
}

// SyncState reports the handler's current sync phase.
func (h *PeerHandler) SyncState() SyncState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.syncState
}

// SetSyncDone flips the long-sync flag; once true, header responses are
// treated as new-block announcements rather than bulk backlog.
func (h *PeerHandler) SetSyncDone(done bool) {
	h.mu.Lock()
	h.syncDone = done
	h.mu.Unlock()
}

// SetProcessTransactions toggles whether inbound TRANSACTIONS messages are
// forwarded or discarded.
func (h *PeerHandler) SetProcessTransactions(enabled bool) {
	h.mu.Lock()
	h.processTxs = enabled
	h.mu.Unlock()
}

// startHeaderRetrieving begins a fresh forward header sync from just past
// whichever of the local chain head or the shared queue's backlog is
// further along.
func (h *PeerHandler) startHeaderRetrieving() error {
	h.mu.Lock()
	h.hasLastHashToAsk = false
	h.commonAncestor = true
	h.mu.Unlock()

	local := h.chain.CurrentHeader()
	start := local.Number.Uint64()
	startHash := local.Hash()
	if last := h.queue.LastQueuedHeader(); last != nil && last.Number.Uint64() > start {
		start = last.Number.Uint64()
		startHash = last.Hash()
	}

	h.mu.Lock()
	h.eldestHash = startHash
	h.hasEldestHash = true
	h.mu.Unlock()

	return h.sendGetHeadersByNumber(start+1, h.config.MaxHashesAsk)
}

// HandleBlockHeaders is the response-router entry point for BLOCK_HEADERS,
// dispatching by (handshake phase, syncDone, syncState, commonAncestorFound)
// as described by the sync state machine.
func (h *PeerHandler) HandleBlockHeaders(headers []*types.Header) error {
	req := h.takePendingHeaders()
	if err := h.validateHeaders(req, headers); err != nil {
		h.dropConnection(ReasonUselessPeer)
		return err
	}

	h.mu.Lock()
	phase := h.handshakePhase
	syncDone := h.syncDone
	state := h.syncState
	ancestorFound := h.commonAncestor
	h.mu.Unlock()

	switch {
	case phase == HandshakeInit:
		return h.processInitialProbe(headers)
	case !syncDone:
		return h.processHeaderRetrieving(headers)
	case state != HashRetrieving:
		return h.processNewBlockHeaders(headers)
	case !ancestorFound:
		return h.processForkCoverage(headers)
	default:
		return h.processGapRecovery(headers)
	}
}

func (h *PeerHandler) processInitialProbe(headers []*types.Header) error {
	if len(headers) == 0 {
		h.dropConnection(ReasonUselessPeer)
		return errInvalidHeaders
	}
	hdr := headers[0]
	h.completeHandshake(BlockIdentifier{Number: hdr.Number.Uint64(), Hash: hdr.Hash()})
	return nil
}

// processHeaderRetrieving implements the long-sync forward header stream:
// an empty reply means the peer has nothing further, a non-empty reply is
// queued and, while still in HashRetrieving, immediately followed up.
func (h *PeerHandler) processHeaderRetrieving(headers []*types.Header) error {
	if len(headers) == 0 {
		h.setSyncState(DoneHashRetrieving)
		return nil
	}
	if !h.queue.ValidateAndAddHeaders(headers, h.id) {
		h.dropConnection(ReasonUselessPeer)
		return errQueueRejected
	}
	last := headers[len(headers)-1]
	h.stats.AddHeaders(len(headers))

	h.mu.Lock()
	state := h.syncState
	h.eldestHash = last.Hash()
	h.mu.Unlock()

	if state == HashRetrieving {
		return h.sendGetHeadersByNumber(last.Number.Uint64()+1, h.config.MaxHashesAsk)
	}
	return nil
}

// processNewBlockHeaders handles a headers reply arriving outside of
// long-sync hash retrieval, i.e. a direct response to a NEW_BLOCK_HASHES
// driven request.
func (h *PeerHandler) processNewBlockHeaders(headers []*types.Header) error {
	if len(headers) == 0 {
		return nil
	}
	if !h.queue.ValidateAndAddHeaders(headers, h.id) {
		h.dropConnection(ReasonUselessPeer)
		return errQueueRejected
	}
	last := headers[len(headers)-1]
	h.updateBestKnownBlock(BlockIdentifier{Number: last.Number.Uint64(), Hash: last.Hash()})
	return nil
}
