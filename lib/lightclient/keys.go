// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package lightclient

import (
	"github.com/ChainSafe/gossamer/lib/common"
)

var (
	// CurrentSetIDKey is the storage key of the grandpa pallet's
	// CurrentSetId item: twox128("Grandpa") ++ twox128("CurrentSetId").
	CurrentSetIDKey = common.MustHexToBytes(
		"0x5f9cc45b7a00c5899361e1c6099678dc8a2d09463effcc78a22d75b9cb87dffc")

	// SystemEventsKey is the storage key of the system pallet's Events
	// item: twox128("System") ++ twox128("Events").
	SystemEventsKey = common.MustHexToBytes(
		"0x26aa394eea5630e07c48ae0c9558cef780d41e5e16056765bc8461851072c9d7")
)
