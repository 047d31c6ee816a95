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
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/holiman/uint256"

	"github.com/coreward/ethsync/common"
	"github.com/coreward/ethsync/core/types"
	"github.com/coreward/ethsync/internal/syncx"
	"github.com/coreward/ethsync/log"
	"github.com/coreward/ethsync/p2p"
)

// HandshakePhase is the state of the initial STATUS negotiation.
type HandshakePhase int

const (
	HandshakeInit HandshakePhase = iota
	HandshakeSucceeded
	HandshakeFailed
)

func (p HandshakePhase) String() string {
	switch p {
	case HandshakeInit:
		return "init"
	case HandshakeSucceeded:
		return "succeeded"
	case HandshakeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SyncState is the state of the per-peer block download state machine.
type SyncState int

const (
	Idle SyncState = iota
	HashRetrieving
	DoneHashRetrieving
	BlockRetrieving
)

func (s SyncState) String() string {
	switch s {
	case Idle:
		return "idle"
	case HashRetrieving:
		return "hash-retrieving"
	case DoneHashRetrieving:
		return "done-hash-retrieving"
	case BlockRetrieving:
		return "block-retrieving"
	default:
		return "unknown"
	}
}

// BlockIdentifier is a (number, hash) pair identifying a block without
// carrying its content.
type BlockIdentifier struct {
	Number uint64
	Hash   common.Hash
}

// StatusRecord is the parsed content of a peer's STATUS handshake message.
type StatusRecord struct {
	ProtocolVersion uint32
	NetworkID       uint64
	TD              *uint256.Int
	BestHash        common.Hash
	GenesisHash     common.Hash
}

// BlockHeaderWrapper pairs a header with the id of the peer it was received
// from, so that a body request timing out does not implicate a peer that
// never supplied the header in the first place.
type BlockHeaderWrapper struct {
	Header *types.Header
	PeerID string
}

// GetHeadersRequest records the outstanding GET_BLOCK_HEADERS request so
// the response validator can check the reply against exactly what was
// asked for.
type GetHeadersRequest struct {
	StartNumber uint64
	StartHash   common.Hash
	hasHash     bool
	MaxHeaders  int
	Skip        uint64
	Reverse     bool
}

// ByHash reports whether the request was anchored on a hash rather than a
// block number.
func (r GetHeadersRequest) ByHash() bool { return r.hasHash }

func requestByNumber(start uint64, max int) GetHeadersRequest {
	return GetHeadersRequest{StartNumber: start, MaxHeaders: max}
}

func requestByHash(start common.Hash, max int, skip uint64, reverse bool) GetHeadersRequest {
	return GetHeadersRequest{StartHash: start, hasHash: true, MaxHeaders: max, Skip: skip, Reverse: reverse}
}

// PeerHandler is the per-connection state for the eth sync sub-protocol. One
// instance is created per accepted peer connection and destroyed on
// disconnect.
type PeerHandler struct {
	id         string
	version    uint32
	rw         p2p.MsgReadWriter
	disconnect func(p2p.DiscReason)
	log        log.Logger

	config Config
	chain  Chain
	queue  Queue
	events Listener

	knownBlocks mapset.Set[common.Hash]
	knownTxs    mapset.Set[common.Hash]

	mu               sync.Mutex // guards the fields below
	handshakePhase   HandshakePhase
	syncState        SyncState
	syncDone         bool
	processTxs       bool
	bestKnownBlock   *BlockIdentifier
	peerTD           *uint256.Int
	genesisHash      common.Hash
	networkID        uint64
	pendingHeaders   *GetHeadersRequest
	eldestHash       common.Hash
	hasEldestHash    bool
	lastHashToAsk    common.Hash
	hasLastHashToAsk bool
	commonAncestor   bool
	gapBlock         *BlockIdentifier
	stats            SyncStatistics

	sentMu  *syncx.ClosableMutex
	sentHdr []BlockHeaderWrapper

	forkEpisode  uuid.UUID
	shutdownOnce sync.Once
}

// NewPeerHandler constructs a handler for a freshly accepted connection. The
// caller is expected to invoke SendStatus immediately after. disconnect is
// invoked to actually tear down the transport; it is the handler's only
// dependency on the (out of scope) transport layer.
func NewPeerHandler(id string, version uint32, rw p2p.MsgReadWriter, disconnect func(p2p.DiscReason), cfg Config, chain Chain, queue Queue, events Listener) *PeerHandler {
	if events == nil {
		events = NopListener{}
	}
	if disconnect == nil {
		disconnect = func(p2p.DiscReason) {}
	}
	h := &PeerHandler{
		id:          id,
		version:     version,
		rw:          rw,
		disconnect:  disconnect,
		log:         log.New("peer", id, "proto", ProtocolName),
		config:      cfg,
		chain:       chain,
		queue:       queue,
		events:      events,
		knownBlocks: mapset.NewSet[common.Hash](),
		knownTxs:    mapset.NewSet[common.Hash](),
		processTxs:  true,
		peerTD:      new(uint256.Int),
		genesisHash: chain.GenesisHash(),
		networkID:   cfg.NetworkID,
		sentMu:      syncx.NewClosableMutex(),
	}
	return h
}

// ID returns the peer's identifier, stable for the lifetime of the handler.
func (h *PeerHandler) ID() string { return h.id }

// BestKnownBlock returns the highest block the peer has ever advertised.
func (h *PeerHandler) BestKnownBlock() *BlockIdentifier {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.bestKnownBlock == nil {
		return nil
	}
	cp := *h.bestKnownBlock
	return &cp
}

// updateBestKnownBlock enforces monotonic advancement: a new identifier is
// only accepted if its number is strictly greater than the current one.
func (h *PeerHandler) updateBestKnownBlock(id BlockIdentifier) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.bestKnownBlock == nil || id.Number > h.bestKnownBlock.Number {
		h.bestKnownBlock = &id
		h.events.OnNewBlockNumber(h.id, id.Number)
	}
}

// reserveSent appends wrappers to the outstanding sentHeaders sequence.
func (h *PeerHandler) reserveSent(wrappers []BlockHeaderWrapper) {
	h.sentMu.MustLock()
	defer h.sentMu.Unlock()
	h.sentHdr = append(h.sentHdr, wrappers...)
}

// drainSent removes the first n wrappers from sentHeaders, returning them.
func (h *PeerHandler) drainSent(n int) []BlockHeaderWrapper {
	h.sentMu.MustLock()
	defer h.sentMu.Unlock()
	if n > len(h.sentHdr) {
		n = len(h.sentHdr)
	}
	out := h.sentHdr[:n]
	h.sentHdr = h.sentHdr[n:]
	return out
}

// peekSent returns a snapshot of sentHeaders without draining it. After
// onShutdown has closed the guarding mutex it returns nil.
func (h *PeerHandler) peekSent() []BlockHeaderWrapper {
	if !h.sentMu.TryLock() {
		return nil
	}
	defer h.sentMu.Unlock()
	cp := make([]BlockHeaderWrapper, len(h.sentHdr))
	copy(cp, h.sentHdr)
	return cp
}

// onShutdown releases every outstanding sentHeaders entry back to the
// shared queue and closes the guarding mutex. Safe to call more than once;
// only the first call has any effect.
func (h *PeerHandler) onShutdown() {
	h.shutdownOnce.Do(func() {
		h.sentMu.MustLock()
		pending := h.sentHdr
		h.sentHdr = nil
		h.sentMu.Unlock()
		h.sentMu.Close()
		if len(pending) > 0 {
			h.queue.ReturnHeaders(pending)
		}
	})
}

// TotalDifficulty returns the peer's most recently announced total
// difficulty.
func (h *PeerHandler) TotalDifficulty() *uint256.Int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return new(uint256.Int).Set(h.peerTD)
}

func bigToUint256(v *big.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	r, overflow := uint256.FromBig(v)
	if overflow {
		return new(uint256.Int).SetAllOne()
	}
	return r
}
