// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package lightclient

import (
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// Rotate validates and installs a new authority set. When the rotation
// embeds a step, the step runs first with full Step semantics; the whole
// call commits in one batch, so a failure at any stage, including after a
// successful embedded step, leaves the state untouched.
func (h *Handler) Rotate(update *Rotate) error {
	if update == nil {
		return ErrNilUpdate
	}

	s := h.state
	s.lock.Lock()

	batch := s.db.NewBatch()
	headUpdate, setUpdate, err := h.stageRotate(batch, update)
	if err != nil {
		batch.Reset()
		s.lock.Unlock()
		rotateRejectedCounter.Inc()
		return err
	}

	err = batch.Flush()
	if err != nil {
		s.lock.Unlock()
		return fmt.Errorf("flushing rotate: %w", err)
	}
	s.lock.Unlock()

	logger.Infof("rotated to authority set %d", setUpdate.SetID)
	rotateAcceptedCounter.Inc()
	setIDGauge.Set(float64(setUpdate.SetID))

	if headUpdate != nil {
		stepAcceptedCounter.Inc()
		headGauge.Set(float64(headUpdate.Number))
		s.notifyHeadUpdated(*headUpdate)
	}
	s.notifyAuthorityUpdated(setUpdate)
	return nil
}

func (h *Handler) stageRotate(batch chaindb.Batch, update *Rotate) (
	headUpdate *HeadUpdate, setUpdate AuthoritySetUpdate, err error) {
	// The reference root for both rotation proofs is the state root at
	// head after the embedded step, if any, has been applied.
	var referenceRoot common.Hash
	if update.Step != nil {
		staged, err := h.stageStep(batch, update.Step)
		if err != nil {
			return nil, AuthoritySetUpdate{}, err
		}
		headUpdate = &staged
		referenceRoot = update.Step.Headers[len(update.Step.Headers)-1].StateRoot
	} else {
		head, err := h.state.head()
		if err != nil {
			return nil, AuthoritySetUpdate{}, err
		}
		referenceRoot, err = h.state.hashAt(stateRootKey(head))
		if err != nil {
			return nil, AuthoritySetUpdate{}, err
		}
	}

	newSetID := update.NewAuthoritySetIDProof.SetID
	encodedSetID, err := scale.Marshal(newSetID)
	if err != nil {
		return nil, AuthoritySetUpdate{}, fmt.Errorf("encoding set id: %w", err)
	}

	err = h.verifier.VerifyInclusion(referenceRoot,
		update.NewAuthoritySetIDProof.Proof, CurrentSetIDKey, encodedSetID)
	if err != nil {
		return nil, AuthoritySetUpdate{}, fmt.Errorf("%w: %s", ErrSetIDNotCommitted, err)
	}

	// Bind the caller supplied event list bytes to the on-chain commitment
	// before decoding anything out of them.
	err = h.verifier.VerifyInclusion(referenceRoot,
		update.EventListProof.Proof, SystemEventsKey, update.EventListProof.EncodedEvents)
	if err != nil {
		return nil, AuthoritySetUpdate{}, fmt.Errorf("%w: %s", ErrEventListNotCommitted, err)
	}

	authorities, err := h.eventDecoder.DecodeNewAuthorities(update.EventListProof.EncodedEvents)
	if err != nil {
		return nil, AuthoritySetUpdate{}, fmt.Errorf("decoding new authorities: %w", err)
	}

	if len(authorities) != NumAuthorities {
		return nil, AuthoritySetUpdate{}, fmt.Errorf("%w: have %d, expected %d",
			ErrAuthorityCount, len(authorities), NumAuthorities)
	}

	err = h.state.putAuthorities(batch, newSetID, authorities)
	if err != nil {
		return nil, AuthoritySetUpdate{}, err
	}

	err = h.state.putActiveSetID(batch, newSetID)
	if err != nil {
		return nil, AuthoritySetUpdate{}, err
	}

	return headUpdate, AuthoritySetUpdate{SetID: newSetID}, nil
}
