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

	"github.com/coreward/ethsync/common"
	"github.com/coreward/ethsync/core/types"
)

// Chain is the read-only local blockchain view this handler needs. The
// chain database, genesis configuration and total difficulty bookkeeping
// live entirely on the other side of this interface.
type Chain interface {
	// GenesisHash returns the hash of block zero.
	GenesisHash() common.Hash

	// CurrentHeader returns the header of the local head block.
	CurrentHeader() *types.Header

	// TotalDifficulty returns the total difficulty accumulated up to and
	// including the given local block hash.
	TotalDifficulty(hash common.Hash) *big.Int

	// HasBlock reports whether the given hash is present in the local chain.
	HasBlock(hash common.Hash) bool

	// GetHeadersFrom serves a GET_BLOCK_HEADERS request against the local
	// chain, honoring the same origin/skip/amount/reverse semantics as the
	// wire request. The returned slice is capped by the caller.
	GetHeadersFrom(origin HashOrNumber, skip uint64, amount int, reverse bool) []*types.Header

	// GetBodiesByHash serves a GET_BLOCK_BODIES request against the local
	// chain. Hashes with no matching local block are simply omitted.
	GetBodiesByHash(hashes []common.Hash) []*blockBody
}

// Queue is the shared download queue. Multiple peer handlers deliver into
// and drain from the same Queue concurrently; all synchronization is the
// Queue's own responsibility.
type Queue interface {
	// PendingHeaders reports the queue's outstanding header backlog size.
	PendingHeaders() int

	// LastQueuedHeader returns the highest-numbered header currently held
	// by the queue, or nil if the queue is empty.
	LastQueuedHeader() *types.Header

	// DrainPendingHeaders removes and returns up to max headers awaiting a
	// body fetch, tagged with the peer that originally supplied each one.
	DrainPendingHeaders(max int) []BlockHeaderWrapper

	// ReturnHeaders puts headers back into the queue unfulfilled, used when
	// a peer disconnects while owing bodies for headers it supplied.
	ReturnHeaders(headers []BlockHeaderWrapper)

	// ValidateAndAddHeaders offers a batch of newly retrieved headers to
	// the queue, tagged with the id of the peer that supplied them. It
	// returns false if the queue rejects the batch (e.g. malformed chain).
	ValidateAndAddHeaders(headers []*types.Header, peerID string) bool

	// AddBlocks offers completed blocks (header+body) to the queue.
	AddBlocks(blocks []*types.Block, peerID string) bool

	// ValidateAndAddNewBlock offers a single gossiped block outside of the
	// normal batched retrieval flow.
	ValidateAndAddNewBlock(block *types.Block, peerID string) bool

	// DropPeer instructs the queue to discard any headers and blocks it is
	// currently attributing to peerID, following a protocol violation.
	DropPeer(peerID string)
}

// Listener receives notifications about sync-relevant peer events. A
// no-op implementation is appropriate when node reputation and orchestration
// live outside this module, matching the Non-goal on peer reputation.
type Listener interface {
	// OnStatusUpdated is invoked once a peer's STATUS passes the genesis,
	// version and network checks, before the handshake probe completes.
	OnStatusUpdated(peerID string, status StatusRecord)

	// OnNewBlockNumber is invoked whenever the local view of a peer's best
	// known block advances.
	OnNewBlockNumber(peerID string, number uint64)

	// OnUselessPeer is invoked before a peer is dropped for a protocol
	// violation, giving the orchestrator a chance to adjust reputation.
	OnUselessPeer(peerID string)
}

// NopListener is a Listener that does nothing; useful for tests and for
// deployments that have no reputation subsystem wired in.
type NopListener struct{}

func (NopListener) OnStatusUpdated(string, StatusRecord) {}
func (NopListener) OnNewBlockNumber(string, uint64)      {}
func (NopListener) OnUselessPeer(string)                 {}
