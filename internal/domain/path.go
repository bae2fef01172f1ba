package domain

import (
	"fmt"
	"strings"
)

// Difficulty is the declared level of a learning path.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ParseDifficulty accepts any casing of the three known levels.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return DifficultyBeginner, nil
	case "intermediate":
		return DifficultyIntermediate, nil
	case "advanced":
		return DifficultyAdvanced, nil
	default:
		return "", fmt.Errorf("unknown difficulty: %q", s)
	}
}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// LearningPath is a catalog entry: a multi-chapter course open to a set of roles.
type LearningPath struct {
	ID            int64      `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	Description   string     `json:"description" yaml:"description"`
	Matches       []string   `json:"matches" yaml:"matches"`
	Roles         []string   `json:"roles" yaml:"roles"`
	Difficulty    Difficulty `json:"difficulty" yaml:"difficulty"`
	Lessons       int        `json:"lessons" yaml:"lessons"`
	DurationLabel string     `json:"durationLabel" yaml:"duration"`
}

// Validate validates the learning path
func (p *LearningPath) Validate() error {
	if p.ID <= 0 {
		return NewInvalidCatalogError(fmt.Sprintf("path %q: id must be positive", p.Title))
	}
	if strings.TrimSpace(p.Title) == "" {
		return NewInvalidCatalogError(fmt.Sprintf("path %d: title is required", p.ID))
	}
	if len(p.Roles) == 0 {
		return NewInvalidCatalogError(fmt.Sprintf("path %d: at least one role is required", p.ID))
	}
	if !p.Difficulty.Valid() {
		return NewInvalidCatalogError(fmt.Sprintf("path %d: unknown difficulty %q", p.ID, p.Difficulty))
	}
	if dup, ok := firstDuplicate(p.Matches); ok {
		return NewInvalidCatalogError(fmt.Sprintf("path %d: duplicate goal tag %q", p.ID, dup))
	}
	if dup, ok := firstDuplicate(p.Roles); ok {
		return NewInvalidCatalogError(fmt.Sprintf("path %d: duplicate role %q", p.ID, dup))
	}
	return nil
}

// OpenTo reports whether the role may take this path.
func (p *LearningPath) OpenTo(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role is a ministry job function that gates which paths are visible.
type Role struct {
	ID          string `json:"id" yaml:"id" db:"ID"`
	Name        string `json:"name" yaml:"name" db:"NAME"`
	Description string `json:"description" yaml:"description" db:"DESCRIPTION"`
}

// Catalog is the reference data the recommender and browser work over.
type Catalog struct {
	Paths []LearningPath `json:"paths" yaml:"paths"`
	Roles []Role         `json:"roles" yaml:"roles"`
	Goals []string       `json:"goals" yaml:"goals"`
}

// Validate checks every path and that path ids are unique.
func (c *Catalog) Validate() error {
	seen := make(map[int64]struct{}, len(c.Paths))
	for i := range c.Paths {
		p := &c.Paths[i]
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.ID]; ok {
			return NewInvalidCatalogError(fmt.Sprintf("duplicate path id %d", p.ID))
		}
		seen[p.ID] = struct{}{}
	}
	roleIDs := make([]string, 0, len(c.Roles))
	for _, r := range c.Roles {
		if strings.TrimSpace(r.ID) == "" {
			return NewInvalidCatalogError("role id is required")
		}
		roleIDs = append(roleIDs, r.ID)
	}
	if dup, ok := firstDuplicate(roleIDs); ok {
		return NewInvalidCatalogError(fmt.Sprintf("duplicate role id %q", dup))
	}
	if dup, ok := firstDuplicate(c.Goals); ok {
		return NewInvalidCatalogError(fmt.Sprintf("duplicate goal %q", dup))
	}
	return nil
}

// PathByID returns the path with the given id.
func (c *Catalog) PathByID(id int64) (LearningPath, bool) {
	for _, p := range c.Paths {
		if p.ID == id {
			return p, true
		}
	}
	return LearningPath{}, false
}

// KnowsRole reports whether the role is declared in the role list or on any path.
func (c *Catalog) KnowsRole(role string) bool {
	for _, r := range c.Roles {
		if r.ID == role {
			return true
		}
	}
	for i := range c.Paths {
		if c.Paths[i].OpenTo(role) {
			return true
		}
	}
	return false
}

// KnowsGoal reports whether the goal is declared in the goal list or on any path.
func (c *Catalog) KnowsGoal(goal string) bool {
	for _, g := range c.Goals {
		if g == goal {
			return true
		}
	}
	for _, p := range c.Paths {
		for _, m := range p.Matches {
			if m == goal {
				return true
			}
		}
	}
	return false
}

// PathFilter narrows a catalog listing. Zero values match everything.
type PathFilter struct {
	Role       string
	Difficulty Difficulty
}

// Filter returns the paths matching f in catalog order.
func (c *Catalog) Filter(f PathFilter) []LearningPath {
	out := make([]LearningPath, 0, len(c.Paths))
	for i := range c.Paths {
		p := c.Paths[i]
		if f.Role != "" && !p.OpenTo(f.Role) {
			continue
		}
		if f.Difficulty != "" && p.Difficulty != f.Difficulty {
			continue
		}
		out = append(out, p)
	}
	return out
}

func firstDuplicate(values []string) (string, bool) {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	return "", false
}
