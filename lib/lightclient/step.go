// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package lightclient

import (
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// Step validates and applies an extension of the trusted header chain. The
// whole batch is applied atomically: every header's roots are recorded and
// the head advances to the batch's last block, or nothing changes.
func (h *Handler) Step(update *Step) error {
	s := h.state
	s.lock.Lock()

	batch := s.db.NewBatch()
	headUpdate, err := h.stageStep(batch, update)
	if err != nil {
		batch.Reset()
		s.lock.Unlock()
		stepRejectedCounter.Inc()
		return err
	}

	err = batch.Flush()
	if err != nil {
		s.lock.Unlock()
		return fmt.Errorf("flushing step: %w", err)
	}
	s.lock.Unlock()

	logger.Infof("head advanced to block %d (%s)", headUpdate.Number, headUpdate.Hash)
	stepAcceptedCounter.Inc()
	headGauge.Set(float64(headUpdate.Number))

	s.notifyHeadUpdated(headUpdate)
	return nil
}

// stageStep runs every check of a step and writes its effects into batch
// without flushing it. The caller owns the batch and the state write lock.
func (h *Handler) stageStep(batch chaindb.Batch, update *Step) (headUpdate HeadUpdate, err error) {
	if update == nil || len(update.Headers) == 0 {
		return HeadUpdate{}, ErrEmptyHeaderBatch
	}

	head, err := h.state.head()
	if err != nil {
		return HeadUpdate{}, err
	}

	for i, header := range update.Headers {
		if header.Number != head+1+uint32(i) {
			return HeadUpdate{}, fmt.Errorf("%w: header %d has number %d, expected %d",
				ErrNonConsecutiveHeaders, i, header.Number, head+1+uint32(i))
		}
	}

	activeSetID, err := h.state.activeSetID()
	if err != nil {
		return HeadUpdate{}, err
	}

	if update.AuthoritySetIDProof.SetID != activeSetID {
		return HeadUpdate{}, fmt.Errorf("%w: claimed set id %d, active set id %d",
			ErrAuthoritySetMismatch, update.AuthoritySetIDProof.SetID, activeSetID)
	}

	// The reference root authenticating the set id is the second to last
	// header's state root, so the batch vouches for the set that finalised
	// its own last block. A single-header batch falls back to the stored
	// root at head.
	var referenceRoot common.Hash
	if len(update.Headers) > 1 {
		referenceRoot = update.Headers[len(update.Headers)-2].StateRoot
	} else {
		referenceRoot, err = h.state.hashAt(stateRootKey(head))
		if err != nil {
			return HeadUpdate{}, err
		}
	}

	encodedSetID, err := scale.Marshal(update.AuthoritySetIDProof.SetID)
	if err != nil {
		return HeadUpdate{}, fmt.Errorf("encoding set id: %w", err)
	}

	err = h.verifier.VerifyInclusion(referenceRoot,
		update.AuthoritySetIDProof.Proof, CurrentSetIDKey, encodedSetID)
	if err != nil {
		return HeadUpdate{}, fmt.Errorf("%w: %s", ErrSetIDNotCommitted, err)
	}

	authorities, err := h.state.authorities(activeSetID)
	if err != nil {
		return HeadUpdate{}, err
	}

	last := update.Headers[len(update.Headers)-1]
	err = h.finality.VerifyFinality(last.Hash, last.Number, activeSetID,
		authorities, update.Justification)
	if err != nil {
		return HeadUpdate{}, fmt.Errorf("%w: %s", ErrFinalityNotProven, err)
	}

	for _, header := range update.Headers {
		err = h.state.putHeader(batch, header)
		if err != nil {
			return HeadUpdate{}, err
		}
	}

	err = h.state.putHead(batch, last.Number)
	if err != nil {
		return HeadUpdate{}, err
	}

	return HeadUpdate{Number: last.Number, Hash: last.Hash}, nil
}
