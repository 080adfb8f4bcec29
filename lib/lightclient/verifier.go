// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package lightclient

import (
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/lib/trie/proof"
)

// TrieProofVerifier verifies storage inclusion proofs against the state
// trie of the remote chain. It fails with proof.ErrKeyNotFoundInProofTrie
// when the proof does not open the key, and with
// proof.ErrValueMismatchProofTrie when the committed value differs from the
// claimed one.
type TrieProofVerifier struct{}

// VerifyInclusion checks the trie inclusion proof binds key to value under
// stateRoot.
func (TrieProofVerifier) VerifyInclusion(stateRoot common.Hash,
	encodedProofNodes [][]byte, key, value []byte) error {
	return proof.Verify(encodedProofNodes, stateRoot.ToBytes(), key, value)
}
