package service

import (
	"context"
	"time"

	"leadpath/internal/domain"
	"leadpath/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockCatalogRepository ---
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Catalog), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockCatalogService ---
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
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockRecommendationService ---
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

// --- MockQuizResultCacheService ---
type MockQuizResultCacheService struct {
	mock.Mock
}

func (m *MockQuizResultCacheService) Put(ctx context.Context, resultID string, result *dto.QuizResultResponse) error {
	args := m.Called(ctx, resultID, result)
	return args.Error(0)
}

func (m *MockQuizResultCacheService) Get(ctx context.Context, resultID string) (*dto.QuizResultResponse, error) {
	args := m.Called(ctx, resultID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizResultResponse), args.Error(1)
}

func (m *MockQuizResultCacheService) Delete(ctx context.Context, resultID string) error {
	args := m.Called(ctx, resultID)
	return args.Error(0)
}

func (m *MockQuizResultCacheService) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

// testCatalog is a small valid catalog shared by the service tests.
func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Roles: []domain.Role{
			{ID: "senior-pastor", Name: "Senior Pastor"},
			{ID: "tech-team", Name: "Tech Team"},
		},
		Goals: []string{"Lead with Confidence", "Create Team Unity", "Speak with Clarity"},
		Paths: []domain.LearningPath{
			{ID: 1, Title: "Leadership Fundamentals", Difficulty: domain.DifficultyBeginner, Lessons: 12,
				Matches: []string{"Lead with Confidence"}, Roles: []string{"senior-pastor", "tech-team"}},
			{ID: 4, Title: "Communication Excellence", Difficulty: domain.DifficultyBeginner, Lessons: 6,
				Matches: []string{"Speak with Clarity", "Lead with Confidence"}, Roles: []string{"senior-pastor"}},
			{ID: 6, Title: "Worship Leadership Excellence", Difficulty: domain.DifficultyIntermediate, Lessons: 12,
				Matches: []string{"Lead with Confidence", "Create Team Unity"}, Roles: []string{"tech-team"}},
		},
	}
}
