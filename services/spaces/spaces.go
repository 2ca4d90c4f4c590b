// Package spaces serves the space catalogue, fronting the remote API with a
// short-lived Redis cache so the listing pages stay warm.
package spaces

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"studyspace/api"
	"studyspace/models"
)

const listCacheKey = "spaces:all"

// SpaceService exposes the space catalogue to the page handlers.
type SpaceService interface {
	List(ctx context.Context) ([]models.Space, error)
	Get(ctx context.Context, id int) (*models.Space, error)
	Refresh(ctx context.Context) error
	Invalidate(ctx context.Context)
}

// DefaultSpaceService reads through the Redis cache for listings and always
// hits the remote API for single-space detail (the booking dialog needs
// fresh operating hours).
type DefaultSpaceService struct {
	API    *api.Client
	Cache  *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func (s *DefaultSpaceService) List(ctx context.Context) ([]models.Space, error) {
	if data, err := s.Cache.Get(ctx, listCacheKey).Result(); err == nil {
		var spaces []models.Space
		if json.Unmarshal([]byte(data), &spaces) == nil {
			return spaces, nil
		}
		// Corrupt cache entry; fall through to the API.
		s.Cache.Del(ctx, listCacheKey)
	}

	spaces, err := s.API.ListSpaces(ctx)
	if err != nil {
		return nil, err
	}
	s.prime(ctx, spaces)
	return spaces, nil
}

func (s *DefaultSpaceService) Get(ctx context.Context, id int) (*models.Space, error) {
	return s.API.GetSpace(ctx, id)
}

// Refresh re-primes the listing cache from the remote API. Called by the
// background refresher and after admin space mutations.
func (s *DefaultSpaceService) Refresh(ctx context.Context) error {
	spaces, err := s.API.ListSpaces(ctx)
	if err != nil {
		return err
	}
	s.prime(ctx, spaces)
	return nil
}

// Invalidate drops the listing cache so the next read refetches.
func (s *DefaultSpaceService) Invalidate(ctx context.Context) {
	if err := s.Cache.Del(ctx, listCacheKey).Err(); err != nil {
		s.Logger.Warn("failed to invalidate spaces cache", zap.Error(err))
	}
}

func (s *DefaultSpaceService) prime(ctx context.Context, spaces []models.Space) {
	data, err := json.Marshal(spaces)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, listCacheKey, data, s.TTL).Err(); err != nil {
		s.Logger.Warn("failed to prime spaces cache", zap.Error(err))
	}
}
