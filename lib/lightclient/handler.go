// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package lightclient

// Handler applies the two light client state transitions, chain extension
// and authority rotation, to a State. Calls are serialized by the state's
// write lock; each call either fully commits or leaves the state untouched.
type Handler struct {
	state        *State
	verifier     ProofVerifier
	finality     FinalityEngine
	eventDecoder EventDecoder
}

// NewHandler returns a Handler operating on the given state with the given
// external collaborators.
func NewHandler(state *State, verifier ProofVerifier,
	finality FinalityEngine, eventDecoder EventDecoder) *Handler {
	return &Handler{
		state:        state,
		verifier:     verifier,
		finality:     finality,
		eventDecoder: eventDecoder,
	}
}
