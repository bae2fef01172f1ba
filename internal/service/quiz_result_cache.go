package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"leadpath/internal/cache"
	"leadpath/internal/domain"
	"leadpath/internal/dto"
	"leadpath/internal/logger"

	"go.uber.org/zap"
)

// QuizResultCacheService keeps scored quiz results until the results screen
// is dismissed or the TTL runs out.
type QuizResultCacheService interface {
	Put(ctx context.Context, resultID string, result *dto.QuizResultResponse) error
	Get(ctx context.Context, resultID string) (*dto.QuizResultResponse, error)
	Delete(ctx context.Context, resultID string) error
	Enabled() bool
}

type quizResultCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewQuizResultCacheService creates a new instance of quizResultCacheServiceImpl.
func NewQuizResultCacheService(cache domain.Cache, ttl time.Duration) QuizResultCacheService {
	if cache == nil {
		logger.Get().Warn("QuizResultCacheService initialized with nil cache. Results will not be retrievable.")
		return &noopQuizResultCacheService{}
	}
	return &quizResultCacheServiceImpl{
		cache: cache,
		ttl:   ttl,
	}
}

func (s *quizResultCacheServiceImpl) Enabled() bool { return true }

// Put stores a scored result.
func (s *quizResultCacheServiceImpl) Put(ctx context.Context, resultID string, result *dto.QuizResultResponse) error {
	if result == nil {
		return domain.NewInvalidInputError("cannot cache nil result")
	}

	key := cache.QuizResultKey(resultID)
	dataBytes, err := json.Marshal(result)
	if err != nil {
		logger.Get().Error("Failed to marshal quiz result for caching", zap.Error(err), zap.String("resultID", resultID))
		return domain.NewInternalError("failed to marshal result for caching", err)
	}

	if err := s.cache.Set(ctx, key, string(dataBytes), s.ttl); err != nil {
		logger.Get().Error("Failed to cache quiz result", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to set quiz result to cache for key %s", key), err)
	}
	logger.Get().Debug("Successfully cached quiz result", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

// Get retrieves a scored result.
func (s *quizResultCacheServiceImpl) Get(ctx context.Context, resultID string) (*dto.QuizResultResponse, error) {
	key := cache.QuizResultKey(resultID)
	dataString, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Quiz result cache miss", zap.String("key", key))
			return nil, domain.NewResultNotFoundError(resultID)
		}
		logger.Get().Error("Failed to get quiz result from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get quiz result from cache for key %s", key), err)
	}
	if dataString == "" {
		return nil, domain.NewResultNotFoundError(resultID)
	}

	var result dto.QuizResultResponse
	if err := json.Unmarshal([]byte(dataString), &result); err != nil {
		logger.Get().Error("Failed to unmarshal quiz result from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal result from cache for key %s", key), err)
	}
	return &result, nil
}

// Delete drops a scored result.
func (s *quizResultCacheServiceImpl) Delete(ctx context.Context, resultID string) error {
	key := cache.QuizResultKey(resultID)
	if err := s.cache.Delete(ctx, key); err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return domain.NewResultNotFoundError(resultID)
		}
		logger.Get().Error("Failed to delete quiz result from cache", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to delete quiz result for key %s", key), err)
	}
	return nil
}

// noopQuizResultCacheService is used when no cache is configured.
type noopQuizResultCacheService struct{}

func (s *noopQuizResultCacheService) Enabled() bool { return false }

func (s *noopQuizResultCacheService) Put(ctx context.Context, resultID string, result *dto.QuizResultResponse) error {
	return nil
}

func (s *noopQuizResultCacheService) Get(ctx context.Context, resultID string) (*dto.QuizResultResponse, error) {
	return nil, domain.NewResultNotFoundError(resultID)
}

func (s *noopQuizResultCacheService) Delete(ctx context.Context, resultID string) error {
	return domain.NewResultNotFoundError(resultID)
}
