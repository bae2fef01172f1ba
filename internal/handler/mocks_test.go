package handler

import (
	"context"

	"leadpath/internal/domain"
	"leadpath/internal/dto"

	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Catalog(ctx context.Context) (*domain.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Catalog), args.Error(1)
}

func (m *MockCatalogService) Path(ctx context.Context, id int64) (*domain.LearningPath, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LearningPath), args.Error(1)
}

func (m *MockCatalogService) Paths(ctx context.Context, filter domain.PathFilter) ([]domain.LearningPath, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LearningPath), args.Error(1)
}

func (m *MockCatalogService) Roles(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Role), args.Error(1)
}

func (m *MockCatalogService) Goals(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Recommend(ctx context.Context, query domain.RecommendationQuery) ([]domain.ScoredPath, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScoredPath), args.Error(1)
}

type MockOnboardingService struct {
	mock.Mock
}

func (m *MockOnboardingService) Complete(ctx context.Context, sub domain.OnboardingSubmission) (*domain.LeaderProfile, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaderProfile), args.Error(1)
}

func (m *MockOnboardingService) PasswordStrength(password string) domain.PasswordStrength {
	return m.Called(password).Get(0).(domain.PasswordStrength)
}

func (m *MockOnboardingService) TimeCommitments() []domain.TimeCommitment {
	return m.Called().Get(0).([]domain.TimeCommitment)
}

type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) Score(ctx context.Context, attempt domain.QuizAttempt) (*dto.QuizResultResponse, error) {
	args := m.Called(ctx, attempt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizResultResponse), args.Error(1)
}

func (m *MockQuizService) Result(ctx context.Context, resultID string) (*dto.QuizResultResponse, error) {
	args := m.Called(ctx, resultID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizResultResponse), args.Error(1)
}

func (m *MockQuizService) Dismiss(ctx context.Context, resultID string) error {
	return m.Called(ctx, resultID).Error(0)
}
