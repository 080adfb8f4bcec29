// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package lightclient

import (
	"errors"
)

// ErrAlreadyInitialised is returned when initialising a state that already
// holds a checkpoint
var ErrAlreadyInitialised = errors.New("light client state is already initialised")

// ErrNotInitialised is returned when operating on a state that has no
// checkpoint yet
var ErrNotInitialised = errors.New("light client state is not initialised")

// ErrNilUpdate is returned when a nil update is submitted
var ErrNilUpdate = errors.New("update is nil")

// ErrEmptyHeaderBatch is returned when a step carries no headers
var ErrEmptyHeaderBatch = errors.New("header batch is empty")

// ErrNonConsecutiveHeaders is returned when a step's headers do not form a
// run of consecutive block numbers continuing from the current head
var ErrNonConsecutiveHeaders = errors.New("header batch is not consecutive from head")

// ErrAuthoritySetMismatch is returned when a step claims an authority set id
// different from the active one
var ErrAuthoritySetMismatch = errors.New("authority set ids do not match")

// ErrSetIDNotCommitted is returned when the authority set id proof does not
// verify against the reference state root
var ErrSetIDNotCommitted = errors.New("authority set id is not committed to state root")

// ErrEventListNotCommitted is returned when the event list proof does not
// verify against the head's state root
var ErrEventListNotCommitted = errors.New("event list is not committed to head's state root")

// ErrFinalityNotProven is returned when the finality engine rejects a
// header batch
var ErrFinalityNotProven = errors.New("finality is not proven")

// ErrAuthorityCount is returned when a decoded authority list does not have
// exactly NumAuthorities entries
var ErrAuthorityCount = errors.New("unexpected number of authorities")
