package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringSlice stores a list of strings as a JSON array in a text column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// LearningPath maps a row of LEARNING_PATHS.
type LearningPath struct {
	ID            int64          `db:"ID"`
	Title         string         `db:"TITLE"`
	Description   sql.NullString `db:"DESCRIPTION"`
	Matches       StringSlice    `db:"MATCHES"`
	Roles         StringSlice    `db:"ROLES"`
	Difficulty    string         `db:"DIFFICULTY"`
	Lessons       int            `db:"LESSONS"`
	DurationLabel sql.NullString `db:"DURATION_LABEL"`
	SortOrder     int            `db:"SORT_ORDER"`
}

// LeaderRole maps a row of LEADER_ROLES.
type LeaderRole struct {
	ID          string         `db:"ID"`
	Name        string         `db:"NAME"`
	Description sql.NullString `db:"DESCRIPTION"`
	SortOrder   int            `db:"SORT_ORDER"`
}

// GoalTag maps a row of GOAL_TAGS.
type GoalTag struct {
	Name      string `db:"NAME"`
	SortOrder int    `db:"SORT_ORDER"`
}
