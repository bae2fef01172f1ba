package domain

import "sort"

// MaxRecommendations caps the length of a recommendation result.
const MaxRecommendations = 4

// RecommendationQuery is what the onboarding flow submits.
type RecommendationQuery struct {
	Role  string
	Goals []string
}

// ScoredPath pairs a path with the number of the user's goals it matches.
type ScoredPath struct {
	Path           LearningPath `json:"path"`
	RelevanceScore int          `json:"relevanceScore"`
}

// Recommend ranks the paths open to role by how many of goals each one
// matches. Ties keep catalog order and the result holds at most
// MaxRecommendations entries. An unknown role yields an empty result.
func Recommend(role string, goals []string, paths []LearningPath) []ScoredPath {
	goalSet := make(map[string]struct{}, len(goals))
	for _, g := range goals {
		goalSet[g] = struct{}{}
	}

	scored := make([]ScoredPath, 0, len(paths))
	for _, p := range paths {
		if !p.OpenTo(role) {
			continue
		}
		scored = append(scored, ScoredPath{Path: p, RelevanceScore: relevance(p, goalSet)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})

	if len(scored) > MaxRecommendations {
		scored = scored[:MaxRecommendations]
	}
	return scored
}

func relevance(p LearningPath, goals map[string]struct{}) int {
	n := 0
	for _, m := range p.Matches {
		if _, ok := goals[m]; ok {
			n++
		}
	}
	return n
}
