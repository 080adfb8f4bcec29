// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relayer

import (
	"context"
	"fmt"

	"github.com/ChainSafe/avail-light-client/lib/lightclient"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	ctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

// SubstrateChain is a ChainClient over a substrate node's websocket RPC
// interface.
type SubstrateChain struct {
	api *gsrpc.SubstrateAPI
}

// NewSubstrateChain connects to the node at the given websocket url.
func NewSubstrateChain(url string) (*SubstrateChain, error) {
	api, err := gsrpc.NewSubstrateAPI(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", url, err)
	}
	return &SubstrateChain{api: api}, nil
}

// SubscribeFinalizedHeaders streams finalised headers from the
// chain_subscribeFinalizedHeads subscription.
func (c *SubstrateChain) SubscribeFinalizedHeaders() (<-chan FinalizedHeader, func(), error) {
	sub, err := c.api.RPC.Chain.SubscribeFinalizedHeads()
	if err != nil {
		return nil, nil, fmt.Errorf("subscribing to finalised heads: %w", err)
	}

	ch := make(chan FinalizedHeader)
	go func() {
		defer close(ch)
		for header := range sub.Chan() {
			converted, err := convertHeader(header)
			if err != nil {
				logger.Errorf("cannot convert finalised header: %s", err)
				continue
			}
			ch <- converted
		}
	}()

	return ch, sub.Unsubscribe, nil
}

// SubscribeJustifications streams raw justifications from the
// grandpa_subscribeJustifications subscription.
func (c *SubstrateChain) SubscribeJustifications() (<-chan []byte, func(), error) {
	rawCh := make(chan string)
	sub, err := c.api.Client.Subscribe(context.Background(), "grandpa",
		"subscribeJustifications", "unsubscribeJustifications", "justifications", rawCh)
	if err != nil {
		return nil, nil, fmt.Errorf("subscribing to justifications: %w", err)
	}

	ch := make(chan []byte)
	go func() {
		defer close(ch)
		for raw := range rawCh {
			justification, err := common.HexToBytes(raw)
			if err != nil {
				logger.Errorf("cannot decode justification hex: %s", err)
				continue
			}
			ch <- justification
		}
	}()

	return ch, sub.Unsubscribe, nil
}

// ReadProof fetches a state_getReadProof trie inclusion proof for key at
// the given block.
func (c *SubstrateChain) ReadProof(blockHash common.Hash, key []byte) ([][]byte, error) {
	var result struct {
		At    string   `json:"at"`
		Proof []string `json:"proof"`
	}

	err := c.api.Client.Call(&result, "state_getReadProof",
		[]string{common.BytesToHex(key)}, blockHash.String())
	if err != nil {
		return nil, fmt.Errorf("calling state_getReadProof: %w", err)
	}

	proofNodes := make([][]byte, len(result.Proof))
	for i, encoded := range result.Proof {
		proofNodes[i], err = common.HexToBytes(encoded)
		if err != nil {
			return nil, fmt.Errorf("decoding proof node %d: %w", i, err)
		}
	}
	return proofNodes, nil
}

// StorageValue fetches the raw storage value under key at the given block.
func (c *SubstrateChain) StorageValue(blockHash common.Hash, key []byte) ([]byte, error) {
	raw, err := c.api.RPC.State.GetStorageRaw(ctypes.StorageKey(key), ctypes.Hash(blockHash))
	if err != nil {
		return nil, fmt.Errorf("getting storage: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: at key 0x%x", ErrStorageValueNotFound, key)
	}
	return *raw, nil
}

// CurrentSetID fetches and decodes the grandpa current set id at the given
// block.
func (c *SubstrateChain) CurrentSetID(blockHash common.Hash) (uint64, error) {
	value, err := c.StorageValue(blockHash, lightclient.CurrentSetIDKey)
	if err != nil {
		return 0, err
	}

	var setID uint64
	err = scale.Unmarshal(value, &setID)
	if err != nil {
		return 0, fmt.Errorf("decoding set id: %w", err)
	}
	return setID, nil
}

// convertHeader maps a substrate header to the light client's view of it.
// The header hash is the blake2b digest of the SCALE encoded header; the
// data root commitment is carried in the extrinsics root field.
func convertHeader(header ctypes.Header) (FinalizedHeader, error) {
	encoded, err := codec.Encode(header)
	if err != nil {
		return FinalizedHeader{}, fmt.Errorf("encoding header: %w", err)
	}

	hash, err := common.Blake2bHash(encoded)
	if err != nil {
		return FinalizedHeader{}, fmt.Errorf("hashing header: %w", err)
	}

	return FinalizedHeader{
		Header: lightclient.Header{
			Number:    uint32(header.Number),
			Hash:      hash,
			StateRoot: common.Hash(header.StateRoot),
			DataRoot:  common.Hash(header.ExtrinsicsRoot),
		},
		ParentHash: common.Hash(header.ParentHash),
	}, nil
}
