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

	"github.com/coreward/ethsync/p2p"
)

// SendStatus transmits the local STATUS message. It must be called exactly
// once, before any other message is sent to this peer.
func (h *PeerHandler) SendStatus(head *BlockIdentifier, td *big.Int) error {
	return p2p.Send(h.rw, StatusMsg, &StatusPacket{
		ProtocolVersion: uint32(h.version),
		NetworkID:       h.networkID,
		TD:              td,
		Head:            head.Hash,
		Genesis:         h.genesisHash,
	})
}

// HandleStatus processes an inbound STATUS message per the handshake
// controller described in the protocol design: genesis and version
// mismatches are fatal and incompatible, network mismatches indicate a
// disjoint identity, and discovery-only nodes never proceed to sync.
func (h *PeerHandler) HandleStatus(msg p2p.Msg) error {
	var status StatusPacket
	if err := msg.Decode(&status); err != nil {
		h.failHandshake()
		return errNoStatusMsg
	}
	if status.Genesis != h.genesisHash {
		h.failHandshake()
		h.disconnectHandshake(ReasonIncompatibleProtocol)
		return errGenesisMismatch
	}
	if status.ProtocolVersion != h.version {
		h.failHandshake()
		h.disconnectHandshake(ReasonIncompatibleProtocol)
		return errProtocolMismatch
	}
	if status.NetworkID != h.networkID {
		h.failHandshake()
		h.disconnectHandshake(ReasonNullIdentity)
		return errNetworkIDMismatch
	}
	h.mu.Lock()
	h.peerTD = bigToUint256(status.TD)
	h.mu.Unlock()

	h.events.OnStatusUpdated(h.id, StatusRecord{
		ProtocolVersion: status.ProtocolVersion,
		NetworkID:       status.NetworkID,
		TD:              bigToUint256(status.TD),
		BestHash:        status.Head,
		GenesisHash:     status.Genesis,
	})

	if h.config.PeerDiscoveryMode {
		h.disconnectHandshake(ReasonRequested)
		return nil
	}

	// Handshake is not yet STATUS_SUCCEEDED: it completes only once the
	// initial best-block probe below returns, per §4.1 step 4.
	return h.sendGetHeadersByHash(status.Head, 1, 0, false)
}

// completeHandshake finishes the handshake once the initial probe response
// for the peer's advertised best hash arrives.
func (h *PeerHandler) completeHandshake(id BlockIdentifier) {
	h.mu.Lock()
	h.handshakePhase = HandshakeSucceeded
	h.bestKnownBlock = &id
	h.mu.Unlock()
	h.log.Debug("eth handshake complete", "number", id.Number, "hash", id.Hash)
}

func (h *PeerHandler) failHandshake() {
	h.mu.Lock()
	h.handshakePhase = HandshakeFailed
	h.mu.Unlock()
}

func (h *PeerHandler) handshakeDone() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.handshakePhase != HandshakeInit
}
