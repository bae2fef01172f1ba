package domain

import "fmt"

const (
	// DefaultPassThreshold is the percentage needed to pass a chapter quiz.
	DefaultPassThreshold = 70
	// ChapterCompletionBonus is awarded for passing a chapter quiz.
	ChapterCompletionBonus = 50
	// PathCompletionBonus is awarded for passing the last chapter of a path.
	PathCompletionBonus = 100
)

// Star bands are fixed and do not follow PassThreshold.
const (
	threeStarPercentage = 90
	twoStarPercentage   = 70
)

// QuizAttempt is a finished chapter quiz as reported by the quiz session.
type QuizAttempt struct {
	RawScore         int
	TotalQuestions   int
	QuestionsCorrect int
	QuestionsWrong   int
	PassThreshold    int
	IsLastChapter    bool
	WrongQuestionIDs []string
}

// NewQuizAttempt creates an attempt with the default pass threshold.
func NewQuizAttempt(rawScore, total, correct, wrong int, isLastChapter bool) QuizAttempt {
	return QuizAttempt{
		RawScore:         rawScore,
		TotalQuestions:   total,
		QuestionsCorrect: correct,
		QuestionsWrong:   wrong,
		PassThreshold:    DefaultPassThreshold,
		IsLastChapter:    isLastChapter,
	}
}

// Validate validates the attempt. Unanswered questions are allowed, so
// correct + wrong may be less than total but never more.
func (a QuizAttempt) Validate() error {
	if a.TotalQuestions == 0 {
		return ErrDivisionUndefined
	}
	if a.TotalQuestions < 0 {
		return NewInvalidAttemptError("total questions cannot be negative")
	}
	if a.QuestionsCorrect < 0 || a.QuestionsWrong < 0 {
		return NewInvalidAttemptError("question counts cannot be negative")
	}
	if a.QuestionsCorrect+a.QuestionsWrong > a.TotalQuestions {
		return NewInvalidAttemptError(fmt.Sprintf(
			"answered questions (%d correct + %d wrong) exceed total questions %d",
			a.QuestionsCorrect, a.QuestionsWrong, a.TotalQuestions,
		))
	}
	if a.PassThreshold < 0 || a.PassThreshold > 100 {
		return NewInvalidAttemptError(fmt.Sprintf("pass threshold must be within 0-100, got %d", a.PassThreshold))
	}
	if a.RawScore < 0 {
		return NewInvalidAttemptError("raw score cannot be negative")
	}
	return nil
}

// PerformanceTier classifies a percentage for the results screen.
type PerformanceTier string

const (
	TierOutstanding    PerformanceTier = "outstanding"
	TierGreat          PerformanceTier = "great"
	TierGoodEffort     PerformanceTier = "good_effort"
	TierKeepPracticing PerformanceTier = "keep_practicing"
)

// TierFor maps a percentage to its performance tier.
func TierFor(percentage int) PerformanceTier {
	switch {
	case percentage >= 90:
		return TierOutstanding
	case percentage >= 70:
		return TierGreat
	case percentage >= 50:
		return TierGoodEffort
	default:
		return TierKeepPracticing
	}
}

// QuizOutcome is derived once per attempt and never mutated.
type QuizOutcome struct {
	Percentage        int             `json:"percentage"`
	Passed            bool            `json:"passed"`
	Stars             int             `json:"stars"`
	ChapterBonus      int             `json:"chapterBonus"`
	PathBonus         int             `json:"pathBonus"`
	TotalScore        int             `json:"totalScore"`
	PerformanceTier   PerformanceTier `json:"performanceTier"`
	RetakeQuestionIDs []string        `json:"retakeQuestionIds"`
}

// Score computes the outcome of a quiz attempt. It returns
// ErrDivisionUndefined when the attempt has no questions.
func Score(a QuizAttempt) (*QuizOutcome, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	percentage := Percentage(a.QuestionsCorrect, a.TotalQuestions)
	passed := percentage >= a.PassThreshold

	out := &QuizOutcome{
		Percentage:        percentage,
		Passed:            passed,
		Stars:             StarsFor(percentage),
		PerformanceTier:   TierFor(percentage),
		RetakeQuestionIDs: append([]string{}, a.WrongQuestionIDs...),
	}
	if passed {
		out.ChapterBonus = ChapterCompletionBonus
		if a.IsLastChapter {
			out.PathBonus = PathCompletionBonus
		}
	}
	out.TotalScore = a.RawScore + out.ChapterBonus + out.PathBonus
	return out, nil
}

// Percentage returns round(100*correct/total) with halves rounded up.
// total must be positive.
func Percentage(correct, total int) int {
	return (200*correct + total) / (2 * total)
}

// StarsFor returns the 1-3 star rating for a percentage.
func StarsFor(percentage int) int {
	switch {
	case percentage >= threeStarPercentage:
		return 3
	case percentage >= twoStarPercentage:
		return 2
	default:
		return 1
	}
}
