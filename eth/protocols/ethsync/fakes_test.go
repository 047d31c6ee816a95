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

	"github.com/coreward/ethsync/common"
	"github.com/coreward/ethsync/core/types"
)

// testChain is a minimal in-memory Chain backed by a linear header list
// indexed by number, sufficient to drive the handshake/sync/fork-recovery
// paths under test without a real blockchain.
type testChain struct {
	mu      sync.Mutex
	headers []*types.Header // index 0 is genesis
	td      map[common.Hash]*big.Int
}

func newTestChain(n int) *testChain {
	c := &testChain{td: make(map[common.Hash]*big.Int)}
	var parent common.Hash
	for i := 0; i < n; i++ {
		h := &types.Header{
			ParentHash: parent,
			Number:     big.NewInt(int64(i)),
			Time:       uint64(i),
			Extra:      []byte{byte(i), byte(i >> 8)},
		}
		c.headers = append(c.headers, h)
		parent = h.Hash()
		c.td[parent] = big.NewInt(int64(i) + 1)
	}
	return c
}

func (c *testChain) GenesisHash() common.Hash {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.headers[0].Hash()
}

func (c *testChain) CurrentHeader() *types.Header {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.headers[len(c.headers)-1]
}

func (c *testChain) TotalDifficulty(hash common.Hash) *big.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if td, ok := c.td[hash]; ok {
		return new(big.Int).Set(td)
	}
	return new(big.Int)
}

func (c *testChain) HasBlock(hash common.Hash) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, h := range c.headers {
		if h.Hash() == hash {
			return true
		}
	}
	return false
}

func (c *testChain) byNumber(n uint64) *types.Header {
	if n >= uint64(len(c.headers)) {
		return nil
	}
	return c.headers[n]
}

func (c *testChain) byHash(hash common.Hash) *types.Header {
	for _, h := range c.headers {
		if h.Hash() == hash {
			return h
		}
	}
	return nil
}

func (c *testChain) GetHeadersFrom(origin HashOrNumber, skip uint64, amount int, reverse bool) []*types.Header {
	c.mu.Lock()
	defer c.mu.Unlock()

	var start *types.Header
	if origin.Hash != (common.Hash{}) {
		start = c.byHash(origin.Hash)
	} else {
		start = c.byNumber(origin.Number)
	}
	if start == nil {
		return nil
	}

	var out []*types.Header
	n := start.Number.Uint64()
	step := skip + 1
	for len(out) < amount {
		h := c.byNumber(n)
		if h == nil {
			break
		}
		out = append(out, h)
		if reverse {
			if n < step {
				break
			}
			n -= step
		} else {
			n += step
		}
	}
	return out
}

func (c *testChain) GetBodiesByHash(hashes []common.Hash) []*blockBody {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*blockBody
	for _, hash := range hashes {
		if h := c.byHash(hash); h != nil {
			out = append(out, &blockBody{})
		}
	}
	return out
}

// testQueue is a minimal in-memory Queue.
type testQueue struct {
	mu       sync.Mutex
	pending  []BlockHeaderWrapper
	headers  []*types.Header
	blocks   []*types.Block
	rejected bool
	dropped  []string
}

func (q *testQueue) PendingHeaders() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *testQueue) LastQueuedHeader() *types.Header {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.headers) == 0 {
		return nil
	}
	return q.headers[len(q.headers)-1]
}

func (q *testQueue) DrainPendingHeaders(max int) []BlockHeaderWrapper {
	q.mu.Lock()
	defer q.mu.Unlock()
	if max > len(q.pending) {
		max = len(q.pending)
	}
	out := q.pending[:max]
	q.pending = q.pending[max:]
	return out
}

func (q *testQueue) ReturnHeaders(headers []BlockHeaderWrapper) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, headers...)
}

func (q *testQueue) ValidateAndAddHeaders(headers []*types.Header, peerID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.rejected {
		return false
	}
	for _, h := range headers {
		q.headers = append(q.headers, h)
		q.pending = append(q.pending, BlockHeaderWrapper{Header: h, PeerID: peerID})
	}
	return true
}

func (q *testQueue) AddBlocks(blocks []*types.Block, peerID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.rejected {
		return false
	}
	q.blocks = append(q.blocks, blocks...)
	return true
}

func (q *testQueue) ValidateAndAddNewBlock(block *types.Block, peerID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.rejected {
		return false
	}
	q.blocks = append(q.blocks, block)
	return true
}

func (q *testQueue) DropPeer(peerID string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.dropped = append(q.dropped, peerID)
}

// testListener records every callback it receives.
type testListener struct {
	mu       sync.Mutex
	statuses []StatusRecord
	numbers  []uint64
	useless  []string
}

func (l *testListener) OnStatusUpdated(peerID string, status StatusRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.statuses = append(l.statuses, status)
}

func (l *testListener) OnNewBlockNumber(peerID string, number uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.numbers = append(l.numbers, number)
}

func (l *testListener) OnUselessPeer(peerID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.useless = append(l.useless, peerID)
}
