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
	"fmt"
	"io"
	"math/big"

	"github.com/coreward/ethsync/common"
	"github.com/coreward/ethsync/core/types"
	"github.com/coreward/ethsync/rlp"
)

// StatusPacket is the network handshake, sent as the first message of the
// protocol run and used to negotiate compatibility between peers.
type StatusPacket struct {
	ProtocolVersion uint32
	NetworkID       uint64
	TD              *big.Int
	Head            common.Hash
	Genesis         common.Hash
}

// blockID is a compact (number, hash) pair, used by NEW_BLOCK_HASHES.
type blockID struct {
	Hash   common.Hash
	Number uint64
}

// NewBlockHashesPacket announces the availability of one or more blocks
// without transferring their contents.
type NewBlockHashesPacket []blockID

// unpack flattens the packet into BlockIdentifier values.
func (p NewBlockHashesPacket) unpack() []BlockIdentifier {
	out := make([]BlockIdentifier, len(p))
	for i, b := range p {
		out[i] = BlockIdentifier{Number: b.Number, Hash: b.Hash}
	}
	return out
}

// HashOrNumber is a combined field for specifying an origin block.
type HashOrNumber struct {
	Hash   common.Hash
	Number uint64
}

// EncodeRLP is a specialized encoder for HashOrNumber to encode only one of
// the two contained union fields.
func (hn *HashOrNumber) EncodeRLP(w io.Writer) error {
	if hn.Hash == (common.Hash{}) {
		return rlp.Encode(w, hn.Number)
	}
	if hn.Number != 0 {
		return fmt.Errorf("both origin hash (%x) and number (%d) provided", hn.Hash, hn.Number)
	}
	return rlp.Encode(w, hn.Hash)
}

// DecodeRLP is a specialized decoder for HashOrNumber to decode the contents
// into either a block hash or a block number.
func (hn *HashOrNumber) DecodeRLP(s *rlp.Stream) error {
	_, size, err := s.Kind()
	switch {
	case err != nil:
		return err
	case size == 32:
		hn.Number = 0
		return s.Decode(&hn.Hash)
	default:
		hn.Hash = common.Hash{}
		return s.Decode(&hn.Number)
	}
}

// GetBlockHeadersRequest represents a block header query.
type GetBlockHeadersRequest struct {
	Origin  HashOrNumber
	Amount  uint64
	Skip    uint64
	Reverse bool
}

// BlockHeadersPacket represents a block header response.
type BlockHeadersPacket []*types.Header

// GetBlockBodiesPacket represents a block body request.
type GetBlockBodiesPacket []common.Hash

// blockBody represents the data content of a single block.
type blockBody struct {
	Transactions []*types.Transaction
	Uncles       []*types.Header
}

// BlockBodiesPacket is the network packet for block content distribution.
type BlockBodiesPacket []*blockBody

// unpack retrieves the transactions and uncles from the range of block
// bodies contained within, and returns them in a fresh slice each.
func (p BlockBodiesPacket) unpack() ([][]*types.Transaction, [][]*types.Header) {
	txset := make([][]*types.Transaction, len(p))
	uncleset := make([][]*types.Header, len(p))
	for i, body := range p {
		txset[i], uncleset[i] = body.Transactions, body.Uncles
	}
	return txset, uncleset
}

// NewBlockPacket is the network packet for the block propagation message.
type NewBlockPacket struct {
	Block *types.Block
	TD    *big.Int
}

// TransactionsPacket is the network packet for transaction distribution.
type TransactionsPacket []*types.Transaction
