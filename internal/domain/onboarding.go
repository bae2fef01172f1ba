package domain

import (
	"strings"
	"unicode/utf16"
)

// TimeCommitment is a daily study option offered during onboarding.
type TimeCommitment struct {
	ID              int    `json:"id"`
	Label           string `json:"label"`
	Minutes         int    `json:"minutes"`
	DailyPointsGoal int    `json:"dailyPointsGoal"`
	Description     string `json:"description"`
}

// Used when no commitment is chosen.
const (
	DefaultDailyMinutes    = 15
	DefaultDailyPointsGoal = 150
)

var timeCommitments = []TimeCommitment{
	{ID: 1, Label: "5 mins", Minutes: 5, DailyPointsGoal: 50, Description: "Quick daily practice"},
	{ID: 2, Label: "15 mins", Minutes: 15, DailyPointsGoal: 150, Description: "Steady progress"},
	{ID: 3, Label: "30+ mins", Minutes: 30, DailyPointsGoal: 300, Description: "Deep learning"},
}

// TimeCommitments returns the selectable commitment options.
func TimeCommitments() []TimeCommitment {
	return append([]TimeCommitment(nil), timeCommitments...)
}

// TimeCommitmentByID looks up a commitment option.
func TimeCommitmentByID(id int) (TimeCommitment, bool) {
	for _, tc := range timeCommitments {
		if tc.ID == id {
			return tc, true
		}
	}
	return TimeCommitment{}, false
}

// PasswordChecks lists the individual strength rules.
type PasswordChecks struct {
	Length    bool `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Number    bool `json:"number"`
	Special   bool `json:"special"`
}

func (c PasswordChecks) passed() int {
	n := 0
	for _, ok := range []bool{c.Length, c.Uppercase, c.Lowercase, c.Number, c.Special} {
		if ok {
			n++
		}
	}
	return n
}

// PasswordStrength is the meter shown while a leader picks a password.
type PasswordStrength struct {
	Score      int            `json:"score"`
	Label      string         `json:"label"`
	Percentage int            `json:"percentage"`
	Checks     PasswordChecks `json:"checks"`
}

// minPasswordLength is counted in UTF-16 code units, the unit browsers use
// for string length, so the API and the sign-up form agree on every input.
const minPasswordLength = 8

// EvaluatePassword scores a password against five rules.
func EvaluatePassword(password string) PasswordStrength {
	if password == "" {
		return PasswordStrength{}
	}

	checks := PasswordChecks{Length: len(utf16.Encode([]rune(password))) >= minPasswordLength}
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			checks.Uppercase = true
		case r >= 'a' && r <= 'z':
			checks.Lowercase = true
		case r >= '0' && r <= '9':
			checks.Number = true
		default:
			checks.Special = true
		}
	}

	score := checks.passed()
	strength := PasswordStrength{Score: score, Checks: checks}
	switch {
	case score <= 1:
		strength.Label, strength.Percentage = "Weak", 20
	case score == 2:
		strength.Label, strength.Percentage = "Fair", 40
	case score == 3:
		strength.Label, strength.Percentage = "Good", 60
	case score == 4:
		strength.Label, strength.Percentage = "Strong", 80
	default:
		strength.Label, strength.Percentage = "Very Strong", 100
	}
	return strength
}

// OnboardingSubmission is everything the onboarding flow collects.
type OnboardingSubmission struct {
	FirstName        string
	LastName         string
	Username         string
	Email            string
	Password         string
	Role             string
	Goals            []string
	TimeCommitmentID int
	Country          string
	ChurchName       string
	ChurchSize       string
	Website          string
	SelectedPathID   *int64
}

// LeaderProfile is the record handed to account creation once onboarding ends.
type LeaderProfile struct {
	Name                string           `json:"name"`
	FirstName           string           `json:"firstName"`
	LastName            string           `json:"lastName"`
	Username            string           `json:"username"`
	Email               string           `json:"email"`
	Role                string           `json:"role"`
	Goals               []string         `json:"goals"`
	DailyTimeCommitment int              `json:"dailyTimeCommitment"`
	DailyPointsGoal     int              `json:"dailyPointsGoal"`
	Country             string           `json:"country"`
	ChurchName          string           `json:"churchName"`
	ChurchSize          string           `json:"churchSize"`
	Website             string           `json:"website"`
	SelectedPath        *int64           `json:"selectedPath"`
	PasswordStrength    PasswordStrength `json:"passwordStrength"`
}

// BuildProfile assembles the profile. The selected path, when present, must
// be one of recommended.
func BuildProfile(sub OnboardingSubmission, recommended []ScoredPath) (*LeaderProfile, error) {
	if sub.SelectedPathID != nil {
		found := false
		for _, r := range recommended {
			if r.Path.ID == *sub.SelectedPathID {
				found = true
				break
			}
		}
		if !found {
			return nil, NewInvalidSelectionError(*sub.SelectedPathID)
		}
	}

	minutes, pointsGoal := DefaultDailyMinutes, DefaultDailyPointsGoal
	if tc, ok := TimeCommitmentByID(sub.TimeCommitmentID); ok {
		minutes, pointsGoal = tc.Minutes, tc.DailyPointsGoal
	}

	goals := append([]string{}, sub.Goals...)
	return &LeaderProfile{
		Name:                strings.TrimSpace(sub.FirstName + " " + sub.LastName),
		FirstName:           sub.FirstName,
		LastName:            sub.LastName,
		Username:            sub.Username,
		Email:               sub.Email,
		Role:                sub.Role,
		Goals:               goals,
		DailyTimeCommitment: minutes,
		DailyPointsGoal:     pointsGoal,
		Country:             sub.Country,
		ChurchName:          sub.ChurchName,
		ChurchSize:          sub.ChurchSize,
		Website:             sub.Website,
		SelectedPath:        sub.SelectedPathID,
		PasswordStrength:    EvaluatePassword(sub.Password),
	}, nil
}
