package service

import (
	"context"

	"leadpath/internal/domain"
	"leadpath/internal/logger"

	"go.uber.org/zap"
)

// OnboardingService finishes the onboarding flow.
type OnboardingService interface {
	Complete(ctx context.Context, sub domain.OnboardingSubmission) (*domain.LeaderProfile, error)
	PasswordStrength(password string) domain.PasswordStrength
	TimeCommitments() []domain.TimeCommitment
}

type onboardingService struct {
	recommender RecommendationService
}

func NewOnboardingService(recommender RecommendationService) OnboardingService {
	return &onboardingService{recommender: recommender}
}

// Complete recomputes the recommendations for the submitted role and goals
// so a selected path can be checked against what the leader was shown.
func (s *onboardingService) Complete(ctx context.Context, sub domain.OnboardingSubmission) (*domain.LeaderProfile, error) {
	recommended, err := s.recommender.Recommend(ctx, domain.RecommendationQuery{Role: sub.Role, Goals: sub.Goals})
	if err != nil {
		return nil, err
	}

	profile, err := domain.BuildProfile(sub, recommended)
	if err != nil {
		logger.Get().Info("Rejected onboarding submission", zap.String("role", sub.Role), zap.Error(err))
		return nil, err
	}
	logger.Get().Info("Onboarding completed",
		zap.String("username", profile.Username),
		zap.String("role", profile.Role),
		zap.Int("dailyMinutes", profile.DailyTimeCommitment))
	return profile, nil
}

func (s *onboardingService) PasswordStrength(password string) domain.PasswordStrength {
	return domain.EvaluatePassword(password)
}

func (s *onboardingService) TimeCommitments() []domain.TimeCommitment {
	return domain.TimeCommitments()
}
