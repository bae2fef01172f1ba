package validation

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"leadpath/internal/domain"
	"leadpath/internal/dto"
)

const (
	maxGoals           = 20
	maxNameLength      = 100
	maxRetakeQuestions = 500
	maxRoleLength      = 64
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,30}$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRecommendationRequest validates the role and goal list
func (v *Validator) ValidateRecommendationRequest(req dto.RecommendationRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.validateRole("role", req.Role)...)
	errors = append(errors, v.validateGoals(req.Goals)...)

	return errors
}

// ValidateQuizResultRequest checks request shape only. Count consistency is
// a scoring rule and is reported as INVALID_ATTEMPT by the quiz service.
func (v *Validator) ValidateQuizResultRequest(req dto.QuizResultRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(req.WrongQuestionIDs) > maxRetakeQuestions {
		errors = append(errors, domain.NewOutOfRangeError("wrongQuestionIds", len(req.WrongQuestionIDs), 0, maxRetakeQuestions))
	}
	for i, id := range req.WrongQuestionIDs {
		if strings.TrimSpace(id) == "" {
			errors = append(errors, domain.NewMissingFieldError("wrongQuestionIds["+strconv.Itoa(i)+"]"))
		}
	}

	return errors
}

// ValidateOnboardingRequest validates the account and ministry fields
func (v *Validator) ValidateOnboardingRequest(req dto.OnboardingRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.validateName("firstName", req.FirstName)...)
	errors = append(errors, v.validateName("lastName", req.LastName)...)

	if strings.TrimSpace(req.Username) == "" {
		errors = append(errors, domain.NewMissingFieldError("username"))
	} else if !usernamePattern.MatchString(req.Username) {
		errors = append(errors, domain.NewInvalidFormatError("username", req.Username))
	}

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !emailPattern.MatchString(req.Email) {
		errors = append(errors, domain.NewInvalidFormatError("email", req.Email))
	}

	// The password value is never echoed back.
	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	}

	errors = append(errors, v.validateRole("role", req.Role)...)
	errors = append(errors, v.validateGoals(req.Goals)...)

	if req.TimeCommitmentID != 0 {
		if _, ok := domain.TimeCommitmentByID(req.TimeCommitmentID); !ok {
			errors = append(errors, domain.NewInvalidFormatError("timeCommitment", req.TimeCommitmentID))
		}
	}

	if req.Website != "" && !isValidWebsite(req.Website) {
		errors = append(errors, domain.NewInvalidFormatError("website", req.Website))
	}

	if req.SelectedPath != nil && *req.SelectedPath <= 0 {
		errors = append(errors, domain.NewInvalidFormatError("selectedPath", *req.SelectedPath))
	}

	return errors
}

// ValidatePathID parses a path id route parameter
func (v *Validator) ValidatePathID(raw string) (int64, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("id", raw)}
	}
	return id, nil
}

// ValidatePathFilter parses the role and difficulty query parameters. A role
// missing from the catalog is not an error; it filters to nothing.
func (v *Validator) ValidatePathFilter(role, difficulty string) (domain.PathFilter, domain.ValidationErrors) {
	var (
		filter domain.PathFilter
		errors domain.ValidationErrors
	)

	if role != "" {
		errors = append(errors, v.validateRole("role", role)...)
		filter.Role = role
	}
	if difficulty != "" {
		d, err := domain.ParseDifficulty(difficulty)
		if err != nil {
			errors = append(errors, domain.NewInvalidFormatError("difficulty", difficulty))
		}
		filter.Difficulty = d
	}
	return filter, errors
}

func (v *Validator) validateName(field, name string) domain.ValidationErrors {
	if strings.TrimSpace(name) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if len(name) > maxNameLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError(field, len(name), 1, maxNameLength)}
	}
	return nil
}

// validateRole checks presence and length only. Role ids come from the
// catalog, and vocabulary checks belong to strict recommendation mode.
func (v *Validator) validateRole(field, role string) domain.ValidationErrors {
	if strings.TrimSpace(role) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if n := len([]rune(role)); n > maxRoleLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError(field, n, 1, maxRoleLength)}
	}
	return nil
}

func (v *Validator) validateGoals(goals []string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if len(goals) > maxGoals {
		errors = append(errors, domain.NewOutOfRangeError("goals", len(goals), 0, maxGoals))
	}
	for i, g := range goals {
		if strings.TrimSpace(g) == "" {
			errors = append(errors, domain.NewMissingFieldError("goals["+strconv.Itoa(i)+"]"))
		}
	}
	return errors
}

func isValidWebsite(s string) bool {
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && strings.Contains(u.Host, ".")
}
