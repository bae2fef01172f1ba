package dto

import "leadpath/internal/domain"

// RoleResponse represents a leader role in the API response
// @Description Ministry role offered during onboarding
type RoleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GoalsResponse lists the goal tags a leader can pick
type GoalsResponse struct {
	Goals []string `json:"goals"`
}

// LearningPathResponse represents a learning path in the API response
// @Description Learning path information
type LearningPathResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Matches       []string `json:"matches"`
	Roles         []string `json:"roles"`
	Difficulty    string   `json:"difficulty"`
	Lessons       int      `json:"lessons"`
	DurationLabel string   `json:"durationLabel"`
}

// RecommendationRequest represents the role and goals picked during onboarding
// @Description Request body for ranking learning paths
type RecommendationRequest struct {
	Role  string   `json:"role"`
	Goals []string `json:"goals"`
}

// RecommendedPathResponse is one ranked path
type RecommendedPathResponse struct {
	LearningPathResponse
	RelevanceScore int `json:"relevanceScore"`
}

// RecommendationResponse wraps the ranked paths
type RecommendationResponse struct {
	Role            string                    `json:"role"`
	Recommendations []RecommendedPathResponse `json:"recommendations"`
}

func NewRoleResponses(roles []domain.Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleResponse{ID: r.ID, Name: r.Name, Description: r.Description})
	}
	return out
}

func NewLearningPathResponse(p domain.LearningPath) LearningPathResponse {
	return LearningPathResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Matches:       nonNil(p.Matches),
		Roles:         nonNil(p.Roles),
		Difficulty:    string(p.Difficulty),
		Lessons:       p.Lessons,
		DurationLabel: p.DurationLabel,
	}
}

func NewLearningPathResponses(paths []domain.LearningPath) []LearningPathResponse {
	out := make([]LearningPathResponse, 0, len(paths))
	for _, p := range paths {
		out = append(out, NewLearningPathResponse(p))
	}
	return out
}

func NewRecommendationResponse(role string, scored []domain.ScoredPath) RecommendationResponse {
	out := RecommendationResponse{
		Role:            role,
		Recommendations: make([]RecommendedPathResponse, 0, len(scored)),
	}
	for _, s := range scored {
		out.Recommendations = append(out.Recommendations, RecommendedPathResponse{
			LearningPathResponse: NewLearningPathResponse(s.Path),
			RelevanceScore:       s.RelevanceScore,
		})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
