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

// disconnectHandshake tears down the connection for a handshake-time
// incompatibility. No queue cleanup is needed: nothing has been attributed
// to this peer yet.
func (h *PeerHandler) disconnectHandshake(reason DisconnectReason) {
	h.log.Debug("dropping incompatible peer", "reason", reason)
	h.disconnect(discReasonFor(reason))
}

// dropConnection is the protocol-violation path: the queue is told to
// discard anything attributed to this peer, the orchestrator's reputation
// hook fires, and the wire disconnect always reports USELESS_PEER
// regardless of which specific check failed.
func (h *PeerHandler) dropConnection(reason DisconnectReason) {
	h.log.Info("dropping peer for protocol violation", "reason", reason)
	h.events.OnUselessPeer(h.id)
	h.queue.DropPeer(h.id)
	h.disconnect(discReasonFor(ReasonUselessPeer))
}
