// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relayer

import (
	"errors"
)

// ErrStorageValueNotFound is returned when a storage key has no value at
// the queried block
var ErrStorageValueNotFound = errors.New("storage value not found")

// ErrHeaderGap is returned when the buffered headers do not cover the whole
// range between the local head and a justification's target
var ErrHeaderGap = errors.New("missing headers between head and justification target")

// ErrBrokenParentLink is returned when buffered headers do not link by
// parent hash
var ErrBrokenParentLink = errors.New("buffered headers do not link by parent hash")
