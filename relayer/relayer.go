// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relayer

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/avail-light-client/internal/log"
	"github.com/ChainSafe/avail-light-client/lib/grandpa"
	"github.com/ChainSafe/avail-light-client/lib/lightclient"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "relayer"))

// Service follows the remote chain's finalised headers and justifications
// and feeds the local light client with step and rotate updates.
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc

	chain   ChainClient
	handler UpdateHandler
	state   StateViewer

	// headers buffered by block number until a justification covers them
	headers map[uint32]FinalizedHeader
	// latest justification seen that is still ahead of the local head
	pending []byte
}

// NewService returns a relayer service feeding handler from chain, tracking
// progress against state.
func NewService(chain ChainClient, handler UpdateHandler, state StateViewer) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		ctx:     ctx,
		cancel:  cancel,
		chain:   chain,
		handler: handler,
		state:   state,
		headers: make(map[uint32]FinalizedHeader),
	}
}

// Start subscribes to the remote chain and runs the relay loop until Stop.
func (s *Service) Start() error {
	headers, unsubscribeHeaders, err := s.chain.SubscribeFinalizedHeaders()
	if err != nil {
		return err
	}

	justifications, unsubscribeJustifications, err := s.chain.SubscribeJustifications()
	if err != nil {
		unsubscribeHeaders()
		return err
	}

	go func() {
		defer unsubscribeHeaders()
		defer unsubscribeJustifications()
		s.run(headers, justifications)
	}()

	return nil
}

// Stop stops the relay loop.
func (s *Service) Stop() error {
	s.cancel()
	return nil
}

func (s *Service) run(headers <-chan FinalizedHeader, justifications <-chan []byte) {
	for {
		select {
		case <-s.ctx.Done():
			return
		case header, ok := <-headers:
			if !ok {
				return
			}
			logger.Debugf("buffering finalised header %d", header.Header.Number)
			s.headers[header.Header.Number] = header
		case justification, ok := <-justifications:
			if !ok {
				return
			}
			s.pending = justification
		}

		if s.pending == nil {
			continue
		}

		err := s.processPending()
		switch {
		case err == nil:
			s.pending = nil
		case isRetryable(err):
			// keep the justification until the missing headers arrive
		default:
			logger.Warnf("dropping justification: %s", err)
			s.pending = nil
		}
	}
}

func isRetryable(err error) bool {
	return errors.Is(err, ErrHeaderGap)
}

// processPending submits the pending justification's batch to the light
// client, as a rotation when the remote set id moved on, as a plain step
// otherwise.
func (s *Service) processPending() error {
	target, err := justificationTarget(s.pending)
	if err != nil {
		return fmt.Errorf("decoding justification: %w", err)
	}

	head, err := s.state.Head()
	if err != nil {
		return err
	}

	if target.Number <= head {
		return fmt.Errorf("justification target %d is not ahead of head %d",
			target.Number, head)
	}

	step, err := s.buildStep(head, target)
	if err != nil {
		return err
	}

	targetHeader := s.headers[target.Number]
	remoteSetID, err := s.chain.CurrentSetID(targetHeader.Header.Hash)
	if err != nil {
		return err
	}

	localSetID, err := s.state.ActiveSetID()
	if err != nil {
		return err
	}

	if remoteSetID != localSetID {
		err = s.submitRotate(step, targetHeader, remoteSetID)
	} else {
		logger.Infof("submitting step to block %d", target.Number)
		err = s.handler.Step(step)
	}
	if err != nil {
		return err
	}

	s.pruneHeaders(target.Number)
	return nil
}

// buildStep assembles the contiguous header batch (head, target] and the
// set id proof authenticating the active authority set.
func (s *Service) buildStep(head uint32, target grandpa.Vote) (*lightclient.Step, error) {
	batch := make([]lightclient.Header, 0, target.Number-head)
	previousHash, err := s.state.HeaderHash(head)
	if err != nil {
		return nil, err
	}

	for number := head + 1; number <= target.Number; number++ {
		header, ok := s.headers[number]
		if !ok {
			return nil, fmt.Errorf("%w: block %d", ErrHeaderGap, number)
		}
		if header.ParentHash != previousHash {
			return nil, fmt.Errorf("%w: block %d", ErrBrokenParentLink, number)
		}
		previousHash = header.Header.Hash
		batch = append(batch, header.Header)
	}

	last := batch[len(batch)-1]
	if last.Hash != target.Hash {
		return nil, fmt.Errorf("%w: justification targets %s, batch ends at %s",
			ErrBrokenParentLink, target.Hash, last.Hash)
	}

	// the proof must open against the second to last header's state root,
	// or against the current head for a single header batch
	var proofBlockHash common.Hash
	if len(batch) > 1 {
		proofBlockHash = batch[len(batch)-2].Hash
	} else {
		proofBlockHash, err = s.state.HeaderHash(head)
		if err != nil {
			return nil, err
		}
	}

	setID, err := s.state.ActiveSetID()
	if err != nil {
		return nil, err
	}

	proof, err := s.chain.ReadProof(proofBlockHash, lightclient.CurrentSetIDKey)
	if err != nil {
		return nil, err
	}

	return &lightclient.Step{
		Headers: batch,
		AuthoritySetIDProof: lightclient.AuthoritySetIDProof{
			SetID: setID,
			Proof: proof,
		},
		Justification: s.pending,
	}, nil
}

func (s *Service) submitRotate(step *lightclient.Step,
	target FinalizedHeader, newSetID uint64) error {
	targetHash := target.Header.Hash

	setIDProof, err := s.chain.ReadProof(targetHash, lightclient.CurrentSetIDKey)
	if err != nil {
		return err
	}

	encodedEvents, err := s.chain.StorageValue(targetHash, lightclient.SystemEventsKey)
	if err != nil {
		return err
	}

	eventsProof, err := s.chain.ReadProof(targetHash, lightclient.SystemEventsKey)
	if err != nil {
		return err
	}

	logger.Infof("submitting rotation to set %d at block %d",
		newSetID, target.Header.Number)
	return s.handler.Rotate(&lightclient.Rotate{
		Step: step,
		NewAuthoritySetIDProof: lightclient.AuthoritySetIDProof{
			SetID: newSetID,
			Proof: setIDProof,
		},
		EventListProof: lightclient.EventListProof{
			EncodedEvents: encodedEvents,
			Proof:         eventsProof,
		},
	})
}

func (s *Service) pruneHeaders(upTo uint32) {
	for number := range s.headers {
		if number <= upTo {
			delete(s.headers, number)
		}
	}
}

// justificationTarget decodes just enough of a justification to find the
// block it finalises.
func justificationTarget(justification []byte) (grandpa.Vote, error) {
	fj := grandpa.Justification{}
	err := scale.Unmarshal(justification, &fj)
	if err != nil {
		return grandpa.Vote{}, err
	}
	return grandpa.Vote{Hash: fj.Commit.Hash, Number: fj.Commit.Number}, nil
}
