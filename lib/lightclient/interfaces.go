// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package lightclient

import (
	"github.com/ChainSafe/avail-light-client/lib/grandpa"
	"github.com/ChainSafe/gossamer/lib/common"
)

// ProofVerifier checks a trie inclusion proof binding a storage key to an
// exact committed value under a state root.
type ProofVerifier interface {
	VerifyInclusion(stateRoot common.Hash, encodedProofNodes [][]byte,
		key, value []byte) error
}

// FinalityEngine attests that the header batch ending in the block with the
// given hash and number chains from the trusted head and was finalised by
// the given authority set. The light client consumes this verdict; it never
// re-derives it.
type FinalityEngine interface {
	VerifyFinality(hash common.Hash, number uint32, setID uint64,
		authorities []grandpa.Authority, proof []byte) error
}

// EventDecoder locates the grandpa NewAuthorities event inside a SCALE
// encoded System.Events value and returns its authority list.
type EventDecoder interface {
	DecodeNewAuthorities(encodedEvents []byte) ([]grandpa.Authority, error)
}
