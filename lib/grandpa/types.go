// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/lib/crypto/ed25519"
)

// Subround is the subround of a GRANDPA vote.
type Subround byte

const (
	prevote Subround = iota
	precommit
)

// Authority is a GRANDPA authority: an ed25519 public key and a voting weight.
type Authority struct {
	Key    ed25519.PublicKeyBytes
	Weight uint64
}

// String returns the Authority as a string
func (a Authority) String() string {
	return fmt.Sprintf("key=%s weight=%d", a.Key, a.Weight)
}

// Vote is a GRANDPA vote for the block with the given hash and number.
type Vote struct {
	Hash   common.Hash
	Number uint32
}

// String returns the Vote as a string
func (v Vote) String() string {
	return fmt.Sprintf("hash=%s number=%d", v.Hash, v.Number)
}

// FullVote is the payload an authority signs to produce a precommit
// signature: the vote plus the round and authority set id it was cast in.
type FullVote struct {
	Stage Subround
	Vote  Vote
	Round uint64
	SetID uint64
}

// SignedPrecommit is a precommit vote signed by an authority.
type SignedPrecommit struct {
	Vote        Vote
	Signature   [64]byte
	AuthorityID ed25519.PublicKeyBytes
}

// Commit contains all the signed precommits for a given block.
type Commit struct {
	Hash       common.Hash
	Number     uint32
	Precommits []SignedPrecommit
}

// Justification is a GRANDPA finality justification for a block.
type Justification struct {
	Round  uint64
	Commit Commit
}
