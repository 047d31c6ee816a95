// Copyright 2023 The go-ethereum Authors
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

// Package kzg4844 implements the KZG data types used by EIP-4844 blob
// transactions. Only the wire-format shapes are provided here; verifying
// and computing KZG proofs is the concern of block execution, which is
// out of scope for a protocol handler that only relays opaque transactions.
package kzg4844

// BlobSize is the number of bytes in a blob of EIP-4844 data.
const BlobSize = 131072

// Blob represents a 4844 data blob.
type Blob [BlobSize]byte

// Commitment is a serialized commitment to a polynomial.
type Commitment [48]byte

// Proof is a serialized commitment to the KZG proof.
type Proof [48]byte

// versionedHashVersion is the version byte prepended to blob versioned hashes,
// as defined by EIP-4844.
const versionedHashVersion = 0x01

// CalcBlobHashV1 calculates the 'versioned blob hash' of a commitment, as defined
// by EIP-4844, using the commitment's SHA256 hash truncated to the given hasher.
func CalcBlobHashV1(hasher hashFunc, commit *Commitment) (vh [32]byte) {
	if hasher.Size() != 32 {
		panic("wrong hash size")
	}
	hasher.Reset()
	hasher.Write(commit[:])
	hasher.Sum(vh[:0])
	vh[0] = versionedHashVersion
	return vh
}

// hashFunc is the subset of hash.Hash used by CalcBlobHashV1, kept local so
// callers don't need to depend on a specific SHA256 implementation.
type hashFunc interface {
	Reset()
	Size() int
	Write(p []byte) (n int, err error)
	Sum(b []byte) []byte
}
