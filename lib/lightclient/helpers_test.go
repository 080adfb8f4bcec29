// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package lightclient

import (
	"testing"

	"github.com/ChainSafe/avail-light-client/lib/grandpa"
	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/lib/crypto/ed25519"
	"github.com/stretchr/testify/require"
)

// NewInMemoryDB creates a new in-memory database
func NewInMemoryDB(t *testing.T) chaindb.Database {
	t.Helper()

	db, err := chaindb.NewBadgerDB(&chaindb.Config{
		DataDir:  t.TempDir(),
		InMemory: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func testAuthorities(t *testing.T, seed byte) []grandpa.Authority {
	t.Helper()

	authorities := make([]grandpa.Authority, NumAuthorities)
	for i := range authorities {
		var key ed25519.PublicKeyBytes
		key[0] = seed
		key[31] = byte(i + 1)
		authorities[i] = grandpa.Authority{Key: key, Weight: 1}
	}
	return authorities
}

func testHash(b byte) common.Hash {
	var hash common.Hash
	hash[0] = b
	hash[31] = b
	return hash
}

func testHeader(number uint32) Header {
	return Header{
		Number:    number,
		Hash:      testHash(byte(number)),
		StateRoot: testHash(byte(number) + 0x40),
		DataRoot:  testHash(byte(number) + 0x80),
	}
}

func testHeaders(from, to uint32) []Header {
	headers := make([]Header, 0, to-from+1)
	for number := from; number <= to; number++ {
		headers = append(headers, testHeader(number))
	}
	return headers
}

const testCheckpointNumber uint32 = 100

func testCheckpoint(t *testing.T) *Checkpoint {
	t.Helper()

	return &Checkpoint{
		Header:      testHeader(testCheckpointNumber),
		SetID:       1,
		Authorities: testAuthorities(t, 0xaa),
	}
}

func newTestState(t *testing.T) *State {
	t.Helper()

	state := NewState(NewInMemoryDB(t))
	err := state.Initialize(testCheckpoint(t))
	require.NoError(t, err)
	return state
}

// requireStateUnchanged asserts the state still matches the checkpoint
// seeded by newTestState: head at the checkpoint block, set id 1 and no
// entries past the checkpoint.
func requireStateUnchanged(t *testing.T, state *State) {
	t.Helper()

	head, err := state.Head()
	require.NoError(t, err)
	require.Equal(t, testCheckpointNumber, head)

	setID, err := state.ActiveSetID()
	require.NoError(t, err)
	require.Equal(t, uint64(1), setID)

	_, err = state.HeaderHash(testCheckpointNumber + 1)
	require.Error(t, err)
}
