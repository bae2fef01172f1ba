package dto

import "leadpath/internal/domain"

// OnboardingRequest represents everything collected by the onboarding flow
// @Description Request body for completing onboarding
type OnboardingRequest struct {
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	Username         string   `json:"username"`
	Email            string   `json:"email"`
	Password         string   `json:"password"`
	Role             string   `json:"role"`
	Goals            []string `json:"goals"`
	TimeCommitmentID int      `json:"timeCommitment"`
	Country          string   `json:"country"`
	ChurchName       string   `json:"churchName"`
	ChurchSize       string   `json:"churchSize"`
	Website          string   `json:"website"`
	SelectedPath     *int64   `json:"selectedPath"`
}

func (r OnboardingRequest) ToSubmission() domain.OnboardingSubmission {
	return domain.OnboardingSubmission{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Username:         r.Username,
		Email:            r.Email,
		Password:         r.Password,
		Role:             r.Role,
		Goals:            r.Goals,
		TimeCommitmentID: r.TimeCommitmentID,
		Country:          r.Country,
		ChurchName:       r.ChurchName,
		ChurchSize:       r.ChurchSize,
		Website:          r.Website,
		SelectedPathID:   r.SelectedPath,
	}
}

// PasswordStrengthRequest carries a candidate password
type PasswordStrengthRequest struct {
	Password string `json:"password"`
}

// TimeCommitmentsResponse lists the daily commitment options
type TimeCommitmentsResponse struct {
	Options []domain.TimeCommitment `json:"options"`
	Default int                     `json:"defaultMinutes"`
}

// HealthResponse reports dependency status
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
