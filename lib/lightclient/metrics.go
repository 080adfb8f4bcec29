// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package lightclient

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	headGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "avail_lightclient",
		Name:      "head_block_number",
		Help:      "highest block number with an accepted finalised header",
	})
	setIDGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "avail_lightclient",
		Name:      "active_authority_set_id",
		Help:      "id of the authority set currently trusted to finalise headers",
	})
	stepAcceptedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "avail_lightclient",
		Name:      "step_accepted_total",
		Help:      "total number of accepted chain extensions",
	})
	stepRejectedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "avail_lightclient",
		Name:      "step_rejected_total",
		Help:      "total number of rejected chain extensions",
	})
	rotateAcceptedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "avail_lightclient",
		Name:      "rotate_accepted_total",
		Help:      "total number of accepted authority rotations",
	})
	rotateRejectedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "avail_lightclient",
		Name:      "rotate_rejected_total",
		Help:      "total number of rejected authority rotations",
	})
)
