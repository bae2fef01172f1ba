package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"leadpath/internal/cache"
	"leadpath/internal/domain"
	"leadpath/internal/logger"
	"leadpath/internal/monitoring"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const catalogLoadTimeout = 15 * time.Second

// CatalogService serves the validated catalog. Returned values are shared
// and must be treated as read-only.
type CatalogService interface {
	Catalog(ctx context.Context) (*domain.Catalog, error)
	Path(ctx context.Context, id int64) (*domain.LearningPath, error)
	Paths(ctx context.Context, filter domain.PathFilter) ([]domain.LearningPath, error)
	Roles(ctx context.Context) ([]domain.Role, error)
	Goals(ctx context.Context) ([]string, error)
	Invalidate(ctx context.Context) error
}

type catalogService struct {
	repo  domain.CatalogRepository
	cache domain.Cache
	ttl   time.Duration
	group singleflight.Group
}

// NewCatalogService creates a CatalogService. cache may be nil, in which
// case every call loads from repo.
func NewCatalogService(repo domain.CatalogRepository, cache domain.Cache, ttl time.Duration) CatalogService {
	return &catalogService{repo: repo, cache: cache, ttl: ttl}
}

func (s *catalogService) Catalog(ctx context.Context) (*domain.Catalog, error) {
	if c, ok := s.fromCache(ctx); ok {
		monitoring.CatalogLoads.WithLabelValues("cache").Inc()
		return c, nil
	}

	// The shared load outlives any single caller; each caller only stops
	// waiting when its own context ends.
	ch := s.group.DoChan(cache.CatalogSnapshotKey(), func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), catalogLoadTimeout)
		defer cancel()
		return s.load(loadCtx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			logger.Get().Debug("Catalog load shared with concurrent caller")
		}
		return res.Val.(*domain.Catalog), nil
	}
}

func (s *catalogService) load(ctx context.Context) (*domain.Catalog, error) {
	c, err := s.repo.LoadCatalog(ctx)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		logger.Get().Error("Failed to load catalog", zap.Error(err))
		return nil, domain.NewInternalError("failed to load catalog", err)
	}
	if err := c.Validate(); err != nil {
		logger.Get().Error("Catalog source failed validation", zap.Error(err))
		return nil, err
	}
	monitoring.CatalogLoads.WithLabelValues("source").Inc()

	s.toCache(ctx, c)
	return c, nil
}

func (s *catalogService) fromCache(ctx context.Context) (*domain.Catalog, bool) {
	if s.cache == nil {
		return nil, false
	}
	key := cache.CatalogSnapshotKey()
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Catalog cache read failed, loading from source", zap.Error(err), zap.String("key", key))
		}
		return nil, false
	}

	var c domain.Catalog
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		logger.Get().Warn("Discarding undecodable catalog snapshot", zap.Error(err), zap.String("key", key))
		return nil, false
	}
	return &c, true
}

func (s *catalogService) toCache(ctx context.Context, c *domain.Catalog) {
	if s.cache == nil {
		return
	}
	key := cache.CatalogSnapshotKey()
	data, err := json.Marshal(c)
	if err != nil {
		logger.Get().Warn("Failed to encode catalog snapshot", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Warn("Failed to cache catalog snapshot", zap.Error(err), zap.String("key", key))
		return
	}
	logger.Get().Debug("Cached catalog snapshot", zap.String("key", key), zap.Duration("ttl", s.ttl))
}

func (s *catalogService) Path(ctx context.Context, id int64) (*domain.LearningPath, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := c.PathByID(id)
	if !ok {
		return nil, domain.NewPathNotFoundError(id)
	}
	return &p, nil
}

func (s *catalogService) Paths(ctx context.Context, filter domain.PathFilter) ([]domain.LearningPath, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Filter(filter), nil
}

func (s *catalogService) Roles(ctx context.Context) ([]domain.Role, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Roles, nil
}

func (s *catalogService) Goals(ctx context.Context) ([]string, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return c.Goals, nil
}

// Invalidate drops the cached snapshot so the next call reloads the source.
func (s *catalogService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	err := s.cache.Delete(ctx, cache.CatalogSnapshotKey())
	if err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		return domain.NewInternalError("failed to invalidate catalog cache", err)
	}
	return nil
}

// ReloadOnChange returns a callback for source change notifications. It drops
// the cached snapshot and loads the new catalog right away, so a source that
// fails validation is reported when it changes rather than on the next request.
func ReloadOnChange(svc CatalogService) func(ctx context.Context) {
	return func(ctx context.Context) {
		if err := svc.Invalidate(ctx); err != nil {
			logger.Get().Error("Failed to invalidate catalog snapshot", zap.Error(err))
			return
		}
		c, err := svc.Catalog(ctx)
		if err != nil {
			logger.Get().Error("Reloaded catalog is unusable", zap.Error(err))
			return
		}
		logger.Get().Info("Catalog reloaded", zap.Int("paths", len(c.Paths)), zap.Int("roles", len(c.Roles)))
	}
}
