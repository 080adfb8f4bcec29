// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package lightclient

const defaultBufferSize = 128

// GetHeadUpdatedChannel returns a channel receiving a HeadUpdate for every
// accepted head advance.
func (s *State) GetHeadUpdatedChannel() chan HeadUpdate {
	s.headUpdatedLock.Lock()
	defer s.headUpdatedLock.Unlock()

	ch := make(chan HeadUpdate, defaultBufferSize)
	s.headUpdated[ch] = struct{}{}
	return ch
}

// FreeHeadUpdatedChannel unregisters a channel obtained from
// GetHeadUpdatedChannel.
func (s *State) FreeHeadUpdatedChannel(ch chan HeadUpdate) {
	s.headUpdatedLock.Lock()
	defer s.headUpdatedLock.Unlock()
	delete(s.headUpdated, ch)
}

// GetAuthorityUpdatedChannel returns a channel receiving an
// AuthoritySetUpdate for every installed authority set.
func (s *State) GetAuthorityUpdatedChannel() chan AuthoritySetUpdate {
	s.authorityUpdatedLock.Lock()
	defer s.authorityUpdatedLock.Unlock()

	ch := make(chan AuthoritySetUpdate, defaultBufferSize)
	s.authorityUpdated[ch] = struct{}{}
	return ch
}

// FreeAuthorityUpdatedChannel unregisters a channel obtained from
// GetAuthorityUpdatedChannel.
func (s *State) FreeAuthorityUpdatedChannel(ch chan AuthoritySetUpdate) {
	s.authorityUpdatedLock.Lock()
	defer s.authorityUpdatedLock.Unlock()
	delete(s.authorityUpdated, ch)
}

func (s *State) notifyHeadUpdated(update HeadUpdate) {
	s.headUpdatedLock.RLock()
	defer s.headUpdatedLock.RUnlock()

	if len(s.headUpdated) == 0 {
		return
	}

	logger.Tracef("notifying head updated channels of block %d...", update.Number)
	for ch := range s.headUpdated {
		go func(ch chan HeadUpdate) {
			select {
			case ch <- update:
			default:
			}
		}(ch)
	}
}

func (s *State) notifyAuthorityUpdated(update AuthoritySetUpdate) {
	s.authorityUpdatedLock.RLock()
	defer s.authorityUpdatedLock.RUnlock()

	if len(s.authorityUpdated) == 0 {
		return
	}

	logger.Tracef("notifying authority updated channels of set id %d...", update.SetID)
	for ch := range s.authorityUpdated {
		go func(ch chan AuthoritySetUpdate) {
			select {
			case ch <- update:
			default:
			}
		}(ch)
	}
}
