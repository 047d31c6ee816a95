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

import "sync/atomic"

// SyncStatistics accumulates progress counters for the current sync episode
// (reset when ChangeState moves to a different state, and when RecoverGap
// starts an episode). It is purely observational: logging it
// never feeds back into state-machine decisions, per the design's note that
// this is a supplemented, non-authoritative feature.
type SyncStatistics struct {
	headers atomic.Uint64
	blocks  atomic.Uint64
}

// AddHeaders records that n headers were accepted into the queue.
func (s *SyncStatistics) AddHeaders(n int) { s.headers.Add(uint64(n)) }

// AddBlocks records that n blocks were merged and delivered to the queue.
func (s *SyncStatistics) AddBlocks(n int) { s.blocks.Add(uint64(n)) }

// Reset clears both counters, called when the sync state changes to a
// different value and when a fork-recovery episode starts.
func (s *SyncStatistics) Reset() {
	s.headers.Store(0)
	s.blocks.Store(0)
}

// Snapshot returns the current header and block counts for logging.
func (s *SyncStatistics) Snapshot() (headers, blocks uint64) {
	return s.headers.Load(), s.blocks.Load()
}

// LogSyncStats emits a single INFO line summarizing sync progress, mirroring
// the original Eth62.logSyncStats behavior of the source implementation.
// Callers invoke this on a fixed cadence (see scenario 9); it never affects
// state-machine outcomes.
func (h *PeerHandler) LogSyncStats() {
	headers, blocks := h.stats.Snapshot()
	best := h.BestKnownBlock()
	var bestNum uint64
	if best != nil {
		bestNum = best.Number
	}
	h.log.Info("sync progress", "peer", h.id, "state", h.SyncState(), "headers", headers, "blocks", blocks, "bestKnown", bestNum)
}
