// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package lightclient

//go:generate mockgen -destination=mock_interfaces_test.go -package $GOPACKAGE -source=interfaces.go
