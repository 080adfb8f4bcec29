// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package metrics exposes the prometheus metrics over HTTP.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ChainSafe/avail-light-client/internal/log"
)

const shutdownTimeout = 3 * time.Second

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

// Server is a metrics http server
type Server struct {
	server *http.Server
	done   chan struct{}
}

// NewServer is a constructor for metrics server
func NewServer(address string) *Server {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.Handler())
	return &Server{
		server: &http.Server{
			Addr:              address,
			Handler:           m,
			ReadHeaderTimeout: time.Minute,
		},
	}
}

// Start will start a dedicated metrics server at the configured address.
func (s *Server) Start() error {
	logger.Infof("starting metrics server at http://%s/metrics", s.server.Addr)
	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("metrics server: %s", err)
		}
	}()
	return nil
}

// Stop will stop the metrics server
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := s.server.Shutdown(ctx)
	if s.done != nil {
		<-s.done
	}
	return err
}
