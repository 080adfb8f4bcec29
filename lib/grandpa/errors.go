// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"errors"
)

// ErrInvalidSignature is returned when a precommit signature does not verify
var ErrInvalidSignature = errors.New("signature is not valid")

// ErrMinVotesNotMet is returned when a justification carries fewer valid
// precommits than the 2/3 supermajority threshold
var ErrMinVotesNotMet = errors.New("minimum number of votes not met")

// ErrAuthorityNotInSet is returned when a precommit is signed by a key
// outside the expected authority set
var ErrAuthorityNotInSet = errors.New("authority is not in the authority set")

// ErrPrecommitTargetMismatch is returned when a precommit targets a
// different block than the justification's commit
var ErrPrecommitTargetMismatch = errors.New("precommit target does not match commit target")

// ErrCommitTargetMismatch is returned when a justification commits to a
// different block than the one being finalised
var ErrCommitTargetMismatch = errors.New("commit target does not match block")

// ErrNewAuthoritiesNotFound is returned when no NewAuthorities event can be
// located in an encoded event list
var ErrNewAuthoritiesNotFound = errors.New("NewAuthorities event not found in event list")

// ErrAuthorityListVersion is returned when a versioned authority list has an
// unsupported version byte
var ErrAuthorityListVersion = errors.New("unsupported authority list version")
