package repository

import (
	"context"
	"fmt"

	"leadpath/internal/domain"
	"leadpath/internal/repository/models"
	"leadpath/internal/util"

	"github.com/jmoiron/sqlx"
)

const (
	selectLearningPathsQuery = `SELECT ID, TITLE, DESCRIPTION, MATCHES, ROLES, DIFFICULTY, LESSONS, DURATION_LABEL, SORT_ORDER
FROM LEARNING_PATHS ORDER BY SORT_ORDER, ID`
	selectLeaderRolesQuery = `SELECT ID, NAME, DESCRIPTION, SORT_ORDER FROM LEADER_ROLES ORDER BY SORT_ORDER, ID`
	selectGoalTagsQuery    = `SELECT NAME, SORT_ORDER FROM GOAL_TAGS ORDER BY SORT_ORDER, NAME`
)

// CatalogDatabaseAdapter reads the catalog from the LEARNING_PATHS,
// LEADER_ROLES and GOAL_TAGS tables.
type CatalogDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCatalogDatabaseAdapter creates a new instance of CatalogDatabaseAdapter
func NewCatalogDatabaseAdapter(db *sqlx.DB) domain.CatalogRepository {
	return &CatalogDatabaseAdapter{db: db}
}

// LoadCatalog returns every path, role and goal tag in display order.
func (r *CatalogDatabaseAdapter) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	var paths []models.LearningPath
	if err := r.db.SelectContext(ctx, &paths, selectLearningPathsQuery); err != nil {
		return nil, fmt.Errorf("failed to select learning paths: %w", err)
	}

	var roles []models.LeaderRole
	if err := r.db.SelectContext(ctx, &roles, selectLeaderRolesQuery); err != nil {
		return nil, fmt.Errorf("failed to select leader roles: %w", err)
	}

	var goals []models.GoalTag
	if err := r.db.SelectContext(ctx, &goals, selectGoalTagsQuery); err != nil {
		return nil, fmt.Errorf("failed to select goal tags: %w", err)
	}

	c := &domain.Catalog{
		Paths: make([]domain.LearningPath, 0, len(paths)),
		Roles: make([]domain.Role, 0, len(roles)),
		Goals: make([]string, 0, len(goals)),
	}
	for i := range paths {
		p, err := toDomainPath(&paths[i])
		if err != nil {
			return nil, err
		}
		c.Paths = append(c.Paths, p)
	}
	for _, role := range roles {
		c.Roles = append(c.Roles, domain.Role{
			ID:          role.ID,
			Name:        role.Name,
			Description: util.NullStringToString(role.Description),
		})
	}
	for _, g := range goals {
		c.Goals = append(c.Goals, g.Name)
	}
	return c, nil
}

func toDomainPath(m *models.LearningPath) (domain.LearningPath, error) {
	difficulty, err := domain.ParseDifficulty(m.Difficulty)
	if err != nil {
		return domain.LearningPath{}, fmt.Errorf("learning path %d: %w", m.ID, err)
	}
	return domain.LearningPath{
		ID:            m.ID,
		Title:         m.Title,
		Description:   util.NullStringToString(m.Description),
		Matches:       []string(m.Matches),
		Roles:         []string(m.Roles),
		Difficulty:    difficulty,
		Lessons:       m.Lessons,
		DurationLabel: util.NullStringToString(m.DurationLabel),
	}, nil
}
