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

import "github.com/coreward/ethsync/event"

// StatusUpdate is broadcast on FeedListener.StatusFeed whenever a peer's
// STATUS passes the handshake checks.
type StatusUpdate struct {
	PeerID string
	Status StatusRecord
}

// BlockNumberUpdate is broadcast on FeedListener.BlockNumberFeed whenever a
// peer's advertised best block advances.
type BlockNumberUpdate struct {
	PeerID string
	Number uint64
}

// FeedListener is a Listener implementation that fans events out through
// event.Feed subscriptions, letting a global sync orchestrator observe
// every peer handler without the handler knowing who, if anyone, is
// listening.
type FeedListener struct {
	StatusFeed      event.Feed
	BlockNumberFeed event.Feed
	UselessPeerFeed event.Feed
}

func (l *FeedListener) OnStatusUpdated(peerID string, status StatusRecord) {
	l.StatusFeed.Send(StatusUpdate{PeerID: peerID, Status: status})
}

func (l *FeedListener) OnNewBlockNumber(peerID string, number uint64) {
	l.BlockNumberFeed.Send(BlockNumberUpdate{PeerID: peerID, Number: number})
}

func (l *FeedListener) OnUselessPeer(peerID string) {
	l.UselessPeerFeed.Send(peerID)
}
