// Package catalog provides the in-process and file-backed catalog sources.
package catalog

import (
	"context"

	"leadpath/internal/domain"
)

// Goal tags offered during onboarding.
const (
	GoalLeadWithConfidence = "Lead with Confidence"
	GoalSpeakWithClarity   = "Speak with Clarity"
	GoalCreateTeamUnity    = "Create Team Unity"
	GoalResolveConflicts   = "Resolve Conflicts Fast"
	GoalDevelopYourPeople  = "Develop Your People"
)

// Role identifiers.
const (
	RoleSeniorPastor    = "senior-pastor"
	RoleYouthMinister   = "youth-minister"
	RoleWorshipLeader   = "worship-leader"
	RoleAdminTeam       = "admin-team"
	RoleVolunteerLeader = "volunteer-leader"
	RoleTechTeam        = "tech-team"
)

// Builtin returns a fresh copy of the default catalog.
func Builtin() *domain.Catalog {
	return &domain.Catalog{
		Roles: []domain.Role{
			{ID: RoleSeniorPastor, Name: "Senior Pastor", Description: "Leading congregation and spiritual guidance"},
			{ID: RoleYouthMinister, Name: "Youth Minister", Description: "Mentoring and guiding young people"},
			{ID: RoleWorshipLeader, Name: "Worship Leader", Description: "Leading musical worship and praise"},
			{ID: RoleAdminTeam, Name: "Admin Team", Description: "Managing church operations and administration"},
			{ID: RoleVolunteerLeader, Name: "Volunteer Leader", Description: "Coordinating and leading volunteers"},
			{ID: RoleTechTeam, Name: "Tech Team", Description: "Supporting technology and media needs"},
		},
		Goals: []string{
			GoalLeadWithConfidence,
			GoalSpeakWithClarity,
			GoalCreateTeamUnity,
			GoalResolveConflicts,
			GoalDevelopYourPeople,
		},
		Paths: []domain.LearningPath{
			{
				ID:            1,
				Title:         "Leadership Fundamentals",
				Description:   "Master the basics of Christian leadership with biblical foundations",
				Lessons:       12,
				DurationLabel: "4 weeks",
				Difficulty:    domain.DifficultyBeginner,
				Matches:       []string{GoalLeadWithConfidence, GoalDevelopYourPeople},
				Roles:         []string{RoleSeniorPastor, RoleYouthMinister, RoleWorshipLeader, RoleAdminTeam, RoleVolunteerLeader, RoleTechTeam},
			},
			{
				ID:            2,
				Title:         "Conflict Resolution Mastery",
				Description:   "Advanced techniques for resolving conflicts with grace and wisdom",
				Lessons:       8,
				DurationLabel: "3 weeks",
				Difficulty:    domain.DifficultyIntermediate,
				Matches:       []string{GoalResolveConflicts, GoalSpeakWithClarity},
				Roles:         []string{RoleSeniorPastor, RoleYouthMinister, RoleAdminTeam, RoleVolunteerLeader},
			},
			{
				ID:            3,
				Title:         "Building Strong Communities",
				Description:   "Create lasting connections and foster unity in your ministry",
				Lessons:       10,
				DurationLabel: "3 weeks",
				Difficulty:    domain.DifficultyBeginner,
				Matches:       []string{GoalCreateTeamUnity, GoalDevelopYourPeople},
				Roles:         []string{RoleSeniorPastor, RoleYouthMinister, RoleWorshipLeader, RoleVolunteerLeader},
			},
			{
				ID:            4,
				Title:         "Communication Excellence",
				Description:   "Develop powerful communication skills for ministry impact",
				Lessons:       6,
				DurationLabel: "2 weeks",
				Difficulty:    domain.DifficultyBeginner,
				Matches:       []string{GoalSpeakWithClarity, GoalLeadWithConfidence},
				Roles:         []string{RoleSeniorPastor, RoleWorshipLeader, RoleAdminTeam, RoleVolunteerLeader},
			},
			{
				ID:            5,
				Title:         "Youth Ministry Leadership",
				Description:   "Specialized training for effective youth ministry leadership",
				Lessons:       15,
				DurationLabel: "5 weeks",
				Difficulty:    domain.DifficultyIntermediate,
				Matches:       []string{GoalCreateTeamUnity, GoalDevelopYourPeople},
				Roles:         []string{RoleYouthMinister, RoleVolunteerLeader},
			},
			{
				ID:            6,
				Title:         "Worship Leadership Excellence",
				Description:   "Lead worship teams with confidence and spiritual depth",
				Lessons:       12,
				DurationLabel: "4 weeks",
				Difficulty:    domain.DifficultyIntermediate,
				Matches:       []string{GoalLeadWithConfidence, GoalCreateTeamUnity},
				Roles:         []string{RoleWorshipLeader, RoleTechTeam},
			},
		},
	}
}

type builtinRepository struct{}

// NewBuiltinRepository serves the compiled-in catalog.
func NewBuiltinRepository() domain.CatalogRepository {
	return builtinRepository{}
}

func (builtinRepository) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	return Builtin(), nil
}
