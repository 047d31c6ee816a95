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
	"time"

	"github.com/coreward/ethsync/p2p"
)

// Run drives the handler's message loop until the peer disconnects or a
// fatal protocol error occurs. It is meant to be invoked as the body of a
// p2p.Protocol's Run callback.
//
// The handshake deadline is the one internal exception to "the core does
// not time itself out" (§5): a peer that never sends STATUS is disconnected
// on a fixed protocol-level timer rather than left to a supervisor policy.
func (h *PeerHandler) Run() error {
	defer h.onShutdown()

	if h.config.StatusTimeout > 0 {
		timer := time.AfterFunc(time.Duration(h.config.StatusTimeout)*time.Second, func() {
			if !h.handshakeDone() {
				h.disconnectHandshake(ReasonHandshakeTimeout)
			}
		})
		defer timer.Stop()
	}

	for {
		msg, err := h.rw.ReadMsg()
		if err != nil {
			return err
		}
		if err := h.dispatch(msg); err != nil {
			h.log.Debug("eth message handling failed", "code", msg.Code, "err", err)
			return err
		}
	}
}

// dispatch is the response router: it demultiplexes an inbound message by
// command code and, once past the handshake, current sync phase.
//
// BLOCK_HEADERS and the serve-only GET_* queries are handled regardless of
// handshake phase: the initial best-block probe reply (§4.1 step 4) arrives
// as a BLOCK_HEADERS message while the handshake is still HandshakeInit, and
// a header/body request touches no per-peer sync state, so both are safe
// (and, for the probe reply, required) before the handshake completes. Every
// other code depends on completed handshake state (peer TD, best-known
// block, sync phase) and is gated accordingly.
func (h *PeerHandler) dispatch(msg p2p.Msg) error {
	defer msg.Discard()

	switch msg.Code {
	case StatusMsg:
		return h.HandleStatus(msg)
	case BlockHeadersMsg:
		return h.handleBlockHeadersMsg(msg)
	case GetBlockHeadersMsg:
		return h.serveGetHeaders(msg)
	case GetBlockBodiesMsg:
		return h.serveGetBodies(msg)
	}

	if !h.handshakeDone() {
		return errNoStatusMsg
	}

	switch msg.Code {
	case NewBlockHashesMsg:
		return h.handleNewBlockHashes(msg)
	case TransactionsMsg:
		return h.handleTransactions(msg)
	case BlockBodiesMsg:
		return h.handleBlockBodiesMsg(msg)
	case NewBlockMsg:
		return h.handleNewBlock(msg)
	default:
		return errUnexpectedMsg
	}
}

func (h *PeerHandler) handleNewBlockHashes(msg p2p.Msg) error {
	var packet NewBlockHashesPacket
	if err := msg.Decode(&packet); err != nil {
		return err
	}
	ids := packet.unpack()
	if len(ids) == 0 {
		return nil
	}
	max := ids[0]
	for _, id := range ids[1:] {
		if id.Number > max.Number {
			max = id
		}
		h.knownBlocks.Add(id.Hash)
	}
	h.knownBlocks.Add(max.Hash)
	h.updateBestKnownBlock(max)

	h.mu.Lock()
	syncDone, state := h.syncDone, h.syncState
	h.mu.Unlock()
	if syncDone && state != HashRetrieving {
		amount := int(max.Number-ids[0].Number) + 1
		return h.sendGetHeadersByNumber(ids[0].Number, amount)
	}
	return nil
}

func (h *PeerHandler) handleTransactions(msg p2p.Msg) error {
	h.mu.Lock()
	enabled := h.processTxs
	h.mu.Unlock()
	if !enabled {
		return nil
	}
	var packet TransactionsPacket
	if err := msg.Decode(&packet); err != nil {
		return err
	}
	for _, tx := range packet {
		h.knownTxs.Add(tx.Hash())
	}
	return nil
}

func (h *PeerHandler) serveGetHeaders(msg p2p.Msg) error {
	var req GetBlockHeadersRequest
	if err := msg.Decode(&req); err != nil {
		return err
	}
	amount := int(req.Amount)
	if amount > MaxHeaderFetch {
		amount = MaxHeaderFetch
	}
	if max := h.config.MaxHeaderReply; max > 0 && amount > max {
		amount = max
	}
	headers := h.chain.GetHeadersFrom(req.Origin, req.Skip, amount, req.Reverse)
	return p2p.Send(h.rw, BlockHeadersMsg, BlockHeadersPacket(headers))
}

func (h *PeerHandler) serveGetBodies(msg p2p.Msg) error {
	var req GetBlockBodiesPacket
	if err := msg.Decode(&req); err != nil {
		return err
	}
	bodies := h.chain.GetBodiesByHash(req)
	return p2p.Send(h.rw, BlockBodiesMsg, BlockBodiesPacket(bodies))
}

func (h *PeerHandler) handleBlockHeadersMsg(msg p2p.Msg) error {
	var packet BlockHeadersPacket
	if err := msg.Decode(&packet); err != nil {
		return err
	}
	return h.HandleBlockHeaders(packet)
}

func (h *PeerHandler) handleBlockBodiesMsg(msg p2p.Msg) error {
	var packet BlockBodiesPacket
	if err := msg.Decode(&packet); err != nil {
		return err
	}
	sent := h.peekSent()
	if err := h.validateBodies(sent, packet); err != nil {
		h.dropConnection(ReasonUselessPeer)
		return err
	}
	blocks, err := mergeBodies(sent, packet)
	if err != nil {
		h.dropConnection(ReasonUselessPeer)
		return err
	}
	h.drainSent(len(blocks))
	h.stats.AddBlocks(len(blocks))

	if len(blocks) > 0 && !h.queue.AddBlocks(blocks, h.id) {
		h.dropConnection(ReasonUselessPeer)
		return errQueueRejected
	}

	if h.SyncState() == BlockRetrieving {
		if _, err := h.sendGetBodies(); err != nil {
			return err
		}
	}
	return nil
}

func (h *PeerHandler) handleNewBlock(msg p2p.Msg) error {
	var packet NewBlockPacket
	if err := msg.Decode(&packet); err != nil {
		return err
	}
	announced := bigToUint256(packet.TD)
	localTD := bigToUint256(h.chain.TotalDifficulty(h.chain.CurrentHeader().Hash()))
	if announced.Cmp(localTD) < 0 {
		return nil
	}
	h.mu.Lock()
	h.peerTD = announced
	h.mu.Unlock()

	hdr := packet.Block.Header()
	h.updateBestKnownBlock(BlockIdentifier{Number: hdr.Number.Uint64(), Hash: hdr.Hash()})

	h.mu.Lock()
	syncDone := h.syncDone
	h.mu.Unlock()
	if syncDone {
		if !h.queue.ValidateAndAddNewBlock(packet.Block, h.id) {
			h.dropConnection(ReasonUselessPeer)
			return errQueueRejected
		}
	}
	return nil
}
