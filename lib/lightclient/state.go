// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package lightclient

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/ChainSafe/avail-light-client/internal/log"
	"github.com/ChainSafe/avail-light-client/lib/grandpa"
	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "lightclient"))

const lightClientPrefix = "lightclient"

var (
	initialisedKey  = []byte("initialised")
	headKey         = []byte("head")
	currentSetIDKey = []byte("setid")

	headerHashPrefix  = []byte("hash")
	stateRootPrefix   = []byte("stateroot")
	dataRootPrefix    = []byte("dataroot")
	authoritiesPrefix = []byte("auth")
)

func headerHashKey(number uint32) []byte {
	return append(headerHashPrefix, encodeBlockNumber(number)...)
}

func stateRootKey(number uint32) []byte {
	return append(stateRootPrefix, encodeBlockNumber(number)...)
}

func dataRootKey(number uint32) []byte {
	return append(dataRootPrefix, encodeBlockNumber(number)...)
}

func authoritiesKey(setID uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, setID)
	return append(authoritiesPrefix, buf...)
}

func encodeBlockNumber(number uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, number)
	return buf
}

// State is the persistent light client state: the head pointer, the
// per-block root history and the authority set registry. All accepted
// transitions commit through a single batch flush, so a rejected call
// leaves the database untouched.
type State struct {
	db   chaindb.Database
	lock sync.RWMutex

	headUpdatedLock      sync.RWMutex
	headUpdated          map[chan HeadUpdate]struct{}
	authorityUpdatedLock sync.RWMutex
	authorityUpdated     map[chan AuthoritySetUpdate]struct{}
}

// NewState returns a State backed by the given database, with all keys
// under the light client table prefix.
func NewState(db chaindb.Database) *State {
	return &State{
		db:               chaindb.NewTable(db, lightClientPrefix),
		headUpdated:      make(map[chan HeadUpdate]struct{}),
		authorityUpdated: make(map[chan AuthoritySetUpdate]struct{}),
	}
}

// Initialize seeds the state from a trusted checkpoint. It establishes the
// head pointer, the checkpoint block's root history entries and the
// checkpoint authority set, and emits the same notifications as normal
// operations. It may only ever be called once per database.
func (s *State) Initialize(checkpoint *Checkpoint) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	initialised, err := s.isInitialised()
	if err != nil {
		return err
	}
	if initialised {
		return ErrAlreadyInitialised
	}

	if len(checkpoint.Authorities) != NumAuthorities {
		return fmt.Errorf("%w: have %d, expected %d",
			ErrAuthorityCount, len(checkpoint.Authorities), NumAuthorities)
	}

	batch := s.db.NewBatch()
	err = s.putHeader(batch, checkpoint.Header)
	if err != nil {
		return err
	}
	err = s.putHead(batch, checkpoint.Header.Number)
	if err != nil {
		return err
	}
	err = s.putAuthorities(batch, checkpoint.SetID, checkpoint.Authorities)
	if err != nil {
		return err
	}
	err = s.putActiveSetID(batch, checkpoint.SetID)
	if err != nil {
		return err
	}
	err = batch.Put(initialisedKey, []byte{1})
	if err != nil {
		return err
	}

	err = batch.Flush()
	if err != nil {
		return fmt.Errorf("flushing checkpoint: %w", err)
	}

	logger.Infof("initialised at checkpoint block %d with authority set %d",
		checkpoint.Header.Number, checkpoint.SetID)

	s.notifyHeadUpdated(HeadUpdate{
		Number: checkpoint.Header.Number,
		Hash:   checkpoint.Header.Hash,
	})
	s.notifyAuthorityUpdated(AuthoritySetUpdate{SetID: checkpoint.SetID})
	return nil
}

// Head returns the highest block number with an accepted finalised header.
func (s *State) Head() (uint32, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.head()
}

// ActiveSetID returns the id of the authority set currently trusted to
// finalise new headers.
func (s *State) ActiveSetID() (uint64, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.activeSetID()
}

// HeaderHash returns the stored header hash for the given block number.
func (s *State) HeaderHash(number uint32) (common.Hash, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.hashAt(headerHashKey(number))
}

// StateRoot returns the stored state root for the given block number.
func (s *State) StateRoot(number uint32) (common.Hash, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.hashAt(stateRootKey(number))
}

// DataRoot returns the stored data root for the given block number.
func (s *State) DataRoot(number uint32) (common.Hash, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.hashAt(dataRootKey(number))
}

// Authorities returns the authority set registered under the given set id.
func (s *State) Authorities(setID uint64) ([]grandpa.Authority, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.authorities(setID)
}

func (s *State) isInitialised() (bool, error) {
	has, err := s.db.Has(initialisedKey)
	if err != nil {
		return false, fmt.Errorf("checking initialised flag: %w", err)
	}
	return has, nil
}

func (s *State) head() (uint32, error) {
	initialised, err := s.isInitialised()
	if err != nil {
		return 0, err
	}
	if !initialised {
		return 0, ErrNotInitialised
	}

	enc, err := s.db.Get(headKey)
	if err != nil {
		return 0, fmt.Errorf("getting head: %w", err)
	}
	return binary.LittleEndian.Uint32(enc), nil
}

func (s *State) activeSetID() (uint64, error) {
	initialised, err := s.isInitialised()
	if err != nil {
		return 0, err
	}
	if !initialised {
		return 0, ErrNotInitialised
	}

	enc, err := s.db.Get(currentSetIDKey)
	if err != nil {
		return 0, fmt.Errorf("getting active set id: %w", err)
	}
	return binary.LittleEndian.Uint64(enc), nil
}

func (s *State) hashAt(key []byte) (common.Hash, error) {
	enc, err := s.db.Get(key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("getting hash: %w", err)
	}
	return common.NewHash(enc), nil
}

func (s *State) authorities(setID uint64) ([]grandpa.Authority, error) {
	enc, err := s.db.Get(authoritiesKey(setID))
	if err != nil {
		return nil, fmt.Errorf("getting authorities for set id %d: %w", setID, err)
	}

	var authorities []grandpa.Authority
	err = scale.Unmarshal(enc, &authorities)
	if err != nil {
		return nil, fmt.Errorf("decoding authorities for set id %d: %w", setID, err)
	}
	return authorities, nil
}

func (s *State) putHeader(batch chaindb.Batch, header Header) error {
	err := batch.Put(headerHashKey(header.Number), header.Hash.ToBytes())
	if err != nil {
		return err
	}
	err = batch.Put(stateRootKey(header.Number), header.StateRoot.ToBytes())
	if err != nil {
		return err
	}
	return batch.Put(dataRootKey(header.Number), header.DataRoot.ToBytes())
}

func (s *State) putHead(batch chaindb.Batch, number uint32) error {
	return batch.Put(headKey, encodeBlockNumber(number))
}

func (s *State) putActiveSetID(batch chaindb.Batch, setID uint64) error {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, setID)
	return batch.Put(currentSetIDKey, buf)
}

func (s *State) putAuthorities(batch chaindb.Batch, setID uint64,
	authorities []grandpa.Authority) error {
	enc, err := scale.Marshal(authorities)
	if err != nil {
		return fmt.Errorf("encoding authorities: %w", err)
	}
	return batch.Put(authoritiesKey(setID), enc)
}
