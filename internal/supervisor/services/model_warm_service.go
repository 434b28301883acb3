// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

package services

import (
	"context"
	"time"

	"github.com/tomtom215/postmap/internal/logging"
)

const (
	defaultWarmRetry = 5 * time.Second
	maxWarmRetry     = 2 * time.Minute
)

// Warmer loads an embedding model. Satisfied by *nlp.Model.
type Warmer interface {
	Warm(ctx context.Context) error
	Ready() bool
}

// ModelWarmService warms the embedding model, retrying with doubling
// delay until it succeeds, then idles until shutdown. Readiness probes
// fail until the first success.
type ModelWarmService struct {
	model Warmer
	retry time.Duration
}

// NewModelWarmService creates the service. A non-positive retry means 5s.
func NewModelWarmService(model Warmer, retry time.Duration) *ModelWarmService {
	if retry <= 0 {
		retry = defaultWarmRetry
	}
	return &ModelWarmService{model: model, retry: retry}
}

// Serve implements suture.Service.
func (s *ModelWarmService) Serve(ctx context.Context) error {
	log := logging.WithComponent(s.String())
	delay := s.retry
	for !s.model.Ready() {
		err := s.model.Warm(ctx)
		if err == nil {
			log.Info().Msg("Embedding model warmed")
			break
		}
		log.Warn().Err(err).Dur("retry_in", delay).Msg("Embedding model not ready")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay = min(delay*2, maxWarmRetry)
	}

	<-ctx.Done()
	return ctx.Err()
}

func (s *ModelWarmService) String() string {
	return "model-warm"
}
