// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relayer

import (
	"github.com/ChainSafe/avail-light-client/lib/lightclient"
	"github.com/ChainSafe/gossamer/lib/common"
)

// FinalizedHeader is a finalised remote header together with its parent
// hash, which the light client core does not track but the relayer uses to
// sanity check batches before submitting them.
type FinalizedHeader struct {
	Header     lightclient.Header
	ParentHash common.Hash
}

// ChainClient is the remote chain RPC surface the relayer depends on.
type ChainClient interface {
	// SubscribeFinalizedHeaders streams finalised headers. The returned
	// function cancels the subscription and closes the channel.
	SubscribeFinalizedHeaders() (headers <-chan FinalizedHeader, unsubscribe func(), err error)
	// SubscribeJustifications streams raw SCALE encoded GRANDPA
	// justifications.
	SubscribeJustifications() (justifications <-chan []byte, unsubscribe func(), err error)
	// ReadProof fetches the trie inclusion proof for key in the state of
	// the block with the given hash.
	ReadProof(blockHash common.Hash, key []byte) ([][]byte, error)
	// StorageValue fetches the raw storage value under key in the state of
	// the block with the given hash.
	StorageValue(blockHash common.Hash, key []byte) ([]byte, error)
	// CurrentSetID fetches the grandpa authority set id active in the
	// state of the block with the given hash.
	CurrentSetID(blockHash common.Hash) (uint64, error)
}

// UpdateHandler consumes the updates the relayer assembles.
type UpdateHandler interface {
	Step(update *lightclient.Step) error
	Rotate(update *lightclient.Rotate) error
}

// StateViewer is the read-only view of the local light client state the
// relayer tracks its progress against.
type StateViewer interface {
	Head() (uint32, error)
	ActiveSetID() (uint64, error)
	HeaderHash(number uint32) (common.Hash, error)
}
