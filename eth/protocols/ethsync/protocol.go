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

// Package ethsync implements a single per-peer instance of the eth/62-style
// blockchain synchronization sub-protocol: handshake, header/body request
// dispatch, response validation and the sync/fork-recovery state machine.
package ethsync

import (
	"errors"

	"github.com/coreward/ethsync/p2p"
)

// ProtocolName is the official short name of this sub-protocol.
const ProtocolName = "eth"

// ProtocolVersion is the version of the sub-protocol implemented here.
const ProtocolVersion = 62

// Protocol message codes.
const (
	StatusMsg          = 0x00
	NewBlockHashesMsg  = 0x01
	TransactionsMsg    = 0x02
	GetBlockHeadersMsg = 0x03
	BlockHeadersMsg    = 0x04
	GetBlockBodiesMsg  = 0x05
	BlockBodiesMsg     = 0x06
	NewBlockMsg        = 0x07
)

// Caps and batch sizes, per §6 of the protocol description.
const (
	// MaxHeaderFetch is the amount of headers a peer's GET_BLOCK_HEADERS
	// request may be answered with in a single reply.
	MaxHeaderFetch = 65536

	// ForkCoverBatchSize is the number of headers requested at once when
	// probing for a common ancestor during fork recovery.
	ForkCoverBatchSize = 192
)

// DisconnectReason enumerates the protocol-level reasons this handler may
// tear down a connection. Each maps onto a concrete p2p.DiscReason at the
// transport boundary (see discReasonFor).
type DisconnectReason int

const (
	ReasonIncompatibleProtocol DisconnectReason = iota
	ReasonNullIdentity
	ReasonRequested
	ReasonUselessPeer
	ReasonHandshakeTimeout
)

func (r DisconnectReason) String() string {
	switch r {
	case ReasonIncompatibleProtocol:
		return "incompatible protocol"
	case ReasonNullIdentity:
		return "null identity"
	case ReasonRequested:
		return "requested"
	case ReasonUselessPeer:
		return "useless peer"
	case ReasonHandshakeTimeout:
		return "handshake timeout"
	default:
		return "unknown disconnect reason"
	}
}

// Config bundles the configuration a handler needs but does not itself
// source; the caller is responsible for populating it from wherever the
// running node keeps its configuration.
type Config struct {
	NetworkID         uint64
	MaxHashesAsk      int
	PeerDiscoveryMode bool
	StatusTimeout     int64 // seconds a peer has to send its STATUS message; 0 disables the timer
	ForkCoverBatch    int
	MaxHeaderReply    int
}

// DefaultConfig returns sane defaults matching the caps above.
func DefaultConfig() Config {
	return Config{
		NetworkID:         1,
		MaxHashesAsk:      192,
		PeerDiscoveryMode: false,
		StatusTimeout:     5,
		ForkCoverBatch:    ForkCoverBatchSize,
		MaxHeaderReply:    MaxHeaderFetch,
	}
}

// discReasonFor maps a protocol-level disconnect reason onto the transport's
// own p2p.DiscReason vocabulary.
func discReasonFor(r DisconnectReason) p2p.DiscReason {
	switch r {
	case ReasonIncompatibleProtocol:
		return p2p.DiscIncompatibleVersion
	case ReasonNullIdentity:
		return p2p.DiscInvalidIdentity
	case ReasonRequested:
		return p2p.DiscRequested
	case ReasonUselessPeer:
		return p2p.DiscUselessPeer
	case ReasonHandshakeTimeout:
		return p2p.DiscReadTimeout
	default:
		return p2p.DiscSubprotocolError
	}
}

var (
	errNoStatusMsg       = errors.New("first message must be a status message")
	errNetworkIDMismatch = errors.New("network ID mismatch")
	errGenesisMismatch   = errors.New("genesis block mismatch")
	errProtocolMismatch  = errors.New("protocol version mismatch")
	errUnexpectedMsg     = errors.New("unexpected message received")
	errInvalidHeaders    = errors.New("invalid header sequence")
	errInvalidBodies     = errors.New("invalid body response")
	errNoCommonAncestor  = errors.New("no common ancestor found in fork cover batch")
	errQueueRejected     = errors.New("shared queue rejected delivered data")
)
