// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"fmt"

	"github.com/ChainSafe/gossamer/pkg/scale"
)

const (
	// GrandpaPalletIndex is the index of the grandpa pallet in the Avail runtime.
	GrandpaPalletIndex byte = 17
	// NewAuthoritiesEventIndex is the variant index of the grandpa
	// NewAuthorities event within the pallet's event enum.
	NewAuthoritiesEventIndex byte = 0

	// authorityListVersion is the only supported version of the
	// VersionedAuthorityList stored under the :grandpa_authorities key.
	authorityListVersion byte = 1
)

// EventDecoder extracts grandpa events from a SCALE encoded System.Events
// storage value.
type EventDecoder struct{}

// DecodeNewAuthorities locates the grandpa NewAuthorities event inside the
// encoded event list and returns its authority list.
//
// A light client has no runtime metadata, so the full Vec<EventRecord> is
// not generically decodable: event payload shapes of other pallets are
// unknown. The pallet and variant indices are fixed runtime constants, so
// the event is located by scanning for its two index bytes and decoding the
// authority list that must follow them. A decode that yields an implausible
// list (empty, or zero-weight entries) is treated as a marker collision and
// the scan continues.
func (EventDecoder) DecodeNewAuthorities(encodedEvents []byte) ([]Authority, error) {
	for i := 0; i+2 < len(encodedEvents); i++ {
		if encodedEvents[i] != GrandpaPalletIndex ||
			encodedEvents[i+1] != NewAuthoritiesEventIndex {
			continue
		}

		var authorities []Authority
		err := scale.Unmarshal(encodedEvents[i+2:], &authorities)
		if err != nil {
			continue
		}

		if !plausibleAuthorityList(authorities) {
			continue
		}

		return authorities, nil
	}

	return nil, fmt.Errorf("%w: in %d encoded bytes",
		ErrNewAuthoritiesNotFound, len(encodedEvents))
}

func plausibleAuthorityList(authorities []Authority) bool {
	if len(authorities) == 0 {
		return false
	}
	for _, authority := range authorities {
		if authority.Weight == 0 {
			return false
		}
	}
	return true
}

// DecodeVersionedAuthorityList decodes the value stored under the
// :grandpa_authorities well-known key: a version byte followed by the
// SCALE encoded authority list.
func DecodeVersionedAuthorityList(encoded []byte) ([]Authority, error) {
	if len(encoded) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrAuthorityListVersion)
	}

	if encoded[0] != authorityListVersion {
		return nil, fmt.Errorf("%w: %d", ErrAuthorityListVersion, encoded[0])
	}

	var authorities []Authority
	err := scale.Unmarshal(encoded[1:], &authorities)
	if err != nil {
		return nil, fmt.Errorf("decoding authority list: %w", err)
	}

	return authorities, nil
}
