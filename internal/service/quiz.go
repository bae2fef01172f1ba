package service

import (
	"context"

	"leadpath/internal/domain"
	"leadpath/internal/dto"
	"leadpath/internal/logger"
	"leadpath/internal/monitoring"
	"leadpath/internal/util"

	"go.uber.org/zap"
)

// QuizService scores finished chapter quizzes.
type QuizService interface {
	Score(ctx context.Context, attempt domain.QuizAttempt) (*dto.QuizResultResponse, error)
	Result(ctx context.Context, resultID string) (*dto.QuizResultResponse, error)
	Dismiss(ctx context.Context, resultID string) error
}

type quizService struct {
	results QuizResultCacheService
}

func NewQuizService(results QuizResultCacheService) QuizService {
	return &quizService{results: results}
}

// Score computes the outcome. When results are cached the response carries
// a resultId that can be fetched until dismissed. A failure to cache is
// logged and the outcome is still returned without an id.
func (s *quizService) Score(ctx context.Context, attempt domain.QuizAttempt) (*dto.QuizResultResponse, error) {
	outcome, err := domain.Score(attempt)
	if err != nil {
		monitoring.QuizOutcomes.WithLabelValues("rejected").Inc()
		return nil, err
	}
	if outcome.Passed {
		monitoring.QuizOutcomes.WithLabelValues("passed").Inc()
	} else {
		monitoring.QuizOutcomes.WithLabelValues("failed").Inc()
	}

	if !s.results.Enabled() {
		return dto.NewQuizResultResponse("", outcome), nil
	}

	resp := dto.NewQuizResultResponse(util.NewULID(), outcome)
	if err := s.results.Put(ctx, resp.ResultID, resp); err != nil {
		logger.Get().Warn("Returning quiz result without a result id", zap.Error(err))
		resp.ResultID = ""
	}
	return resp, nil
}

func (s *quizService) Result(ctx context.Context, resultID string) (*dto.QuizResultResponse, error) {
	if !util.IsULID(resultID) {
		return nil, domain.NewResultNotFoundError(resultID)
	}
	return s.results.Get(ctx, resultID)
}

func (s *quizService) Dismiss(ctx context.Context, resultID string) error {
	if !util.IsULID(resultID) {
		return domain.NewResultNotFoundError(resultID)
	}
	return s.results.Delete(ctx, resultID)
}
