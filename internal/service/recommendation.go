package service

import (
	"context"

	"leadpath/internal/domain"
	"leadpath/internal/logger"
	"leadpath/internal/monitoring"

	"go.uber.org/zap"
)

// RecommendationService ranks learning paths for a role and goal set.
type RecommendationService interface {
	Recommend(ctx context.Context, query domain.RecommendationQuery) ([]domain.ScoredPath, error)
}

type recommendationService struct {
	catalog CatalogService
	strict  bool
}

// NewRecommendationService creates a RecommendationService. In strict mode
// roles and goals outside the catalog vocabulary are rejected; otherwise an
// unknown role yields no paths and unknown goals score zero.
func NewRecommendationService(catalog CatalogService, strict bool) RecommendationService {
	return &recommendationService{catalog: catalog, strict: strict}
}

func (s *recommendationService) Recommend(ctx context.Context, query domain.RecommendationQuery) ([]domain.ScoredPath, error) {
	c, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	if s.strict {
		if !c.KnowsRole(query.Role) {
			return nil, domain.NewInvalidRoleError(query.Role)
		}
		for _, g := range query.Goals {
			if !c.KnowsGoal(g) {
				return nil, domain.NewInvalidGoalTagError(g)
			}
		}
	}

	result := domain.Recommend(query.Role, query.Goals, c.Paths)

	monitoring.RecommendationsServed.WithLabelValues(query.Role).Inc()
	monitoring.RecommendationResultSize.Observe(float64(len(result)))
	logger.Get().Debug("Recommendations computed",
		zap.String("role", query.Role),
		zap.Int("goals", len(query.Goals)),
		zap.Int("results", len(result)))
	return result, nil
}
