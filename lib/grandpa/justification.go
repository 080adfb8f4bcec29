// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"fmt"

	"github.com/ChainSafe/avail-light-client/internal/log"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/lib/crypto/ed25519"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "grandpa"))

// JustificationVerifier checks GRANDPA finality justifications against a
// known authority set. It attests finality of single blocks; header chaining
// between the trusted head and the finalised block is the job of the
// succinct proof once that circuit lands.
type JustificationVerifier struct{}

// VerifyFinality decodes the justification and checks it finalises the block
// with the given hash and number under the given authority set and set id.
// A 2/3 supermajority of valid precommit signatures is required.
func (JustificationVerifier) VerifyFinality(hash common.Hash, number uint32,
	setID uint64, authorities []Authority, justification []byte) error {
	fj := Justification{}
	err := scale.Unmarshal(justification, &fj)
	if err != nil {
		return fmt.Errorf("decoding justification: %w", err)
	}

	if fj.Commit.Hash != hash || fj.Commit.Number != number {
		return fmt.Errorf("%w: committed %s number %d, expected %s number %d",
			ErrCommitTargetMismatch, fj.Commit.Hash, fj.Commit.Number, hash, number)
	}

	// threshold is two-thirds the number of authorities
	threshold := 2 * len(authorities) / 3

	if len(fj.Commit.Precommits) < threshold {
		return fmt.Errorf("%w: have %d precommits, need %d",
			ErrMinVotesNotMet, len(fj.Commit.Precommits), threshold)
	}

	logger.Debugf(
		"verifying justification: set id %d, round %d, hash %s, number %d, sig count %d",
		setID, fj.Round, fj.Commit.Hash, fj.Commit.Number, len(fj.Commit.Precommits))

	seen := make(map[ed25519.PublicKeyBytes]struct{}, len(fj.Commit.Precommits))
	var count int
	for _, just := range fj.Commit.Precommits {
		if _, ok := seen[just.AuthorityID]; ok {
			continue
		}
		seen[just.AuthorityID] = struct{}{}

		if just.Vote != (Vote{Hash: fj.Commit.Hash, Number: fj.Commit.Number}) {
			return fmt.Errorf("%w: precommit for %s number %d",
				ErrPrecommitTargetMismatch, just.Vote.Hash, just.Vote.Number)
		}

		if !isInAuthoritySet(just.AuthorityID, authorities) {
			return fmt.Errorf("%w: %s", ErrAuthorityNotInSet, just.AuthorityID)
		}

		pk, err := ed25519.NewPublicKey(just.AuthorityID[:])
		if err != nil {
			return fmt.Errorf("creating public key: %w", err)
		}

		msg, err := scale.Marshal(FullVote{
			Stage: precommit,
			Vote:  just.Vote,
			Round: fj.Round,
			SetID: setID,
		})
		if err != nil {
			return fmt.Errorf("encoding full vote: %w", err)
		}

		ok, err := pk.Verify(msg, just.Signature[:])
		if err != nil {
			return fmt.Errorf("verifying signature: %w", err)
		}

		if !ok {
			return fmt.Errorf("%w: from authority %s", ErrInvalidSignature, just.AuthorityID)
		}

		count++
	}

	if count < threshold {
		return fmt.Errorf("%w: have %d valid precommits, need %d",
			ErrMinVotesNotMet, count, threshold)
	}

	return nil
}

func isInAuthoritySet(key ed25519.PublicKeyBytes, authorities []Authority) bool {
	for _, authority := range authorities {
		if authority.Key == key {
			return true
		}
	}
	return false
}
