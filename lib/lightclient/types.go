// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package lightclient

import (
	"fmt"

	"github.com/ChainSafe/avail-light-client/lib/grandpa"
	"github.com/ChainSafe/gossamer/lib/common"
)

// NumAuthorities is the fixed size of an authority set.
const NumAuthorities = 10

// Header is the light client's view of one finalised remote block: its
// identity and the two commitments it carries.
type Header struct {
	Number    uint32
	Hash      common.Hash
	StateRoot common.Hash
	DataRoot  common.Hash
}

// String returns the Header as a string
func (h Header) String() string {
	return fmt.Sprintf("number=%d hash=%s stateRoot=%s dataRoot=%s",
		h.Number, h.Hash, h.StateRoot, h.DataRoot)
}

// AuthoritySetIDProof claims a specific authority set id is committed in
// some state root, with the trie proof nodes to open it.
type AuthoritySetIDProof struct {
	SetID uint64
	Proof [][]byte
}

// EventListProof claims a specific encoded System.Events value is committed
// in some state root, with the trie proof nodes to open it.
type EventListProof struct {
	EncodedEvents []byte
	Proof         [][]byte
}

// Step is a chain extension: a contiguous batch of finalised headers plus
// the proof that the batch was finalised by the active authority set.
// Justification is the opaque finality evidence handed to the FinalityEngine.
type Step struct {
	Headers             []Header
	AuthoritySetIDProof AuthoritySetIDProof
	Justification       []byte
}

// Rotate installs a new authority set, proven to be committed in state the
// light client already trusts. Step is optional and applied first when set.
type Rotate struct {
	Step                   *Step
	NewAuthoritySetIDProof AuthoritySetIDProof
	EventListProof         EventListProof
}

// Checkpoint is the trusted starting point the state is seeded from.
type Checkpoint struct {
	Header      Header
	SetID       uint64
	Authorities []grandpa.Authority
}

// HeadUpdate is emitted every time the head advances.
type HeadUpdate struct {
	Number uint32
	Hash   common.Hash
}

// AuthoritySetUpdate is emitted every time a new authority set is installed.
type AuthoritySetUpdate struct {
	SetID uint64
}
