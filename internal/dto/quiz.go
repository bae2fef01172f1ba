package dto

import "leadpath/internal/domain"

// QuizResultRequest represents a finished chapter quiz
// @Description Request body for scoring a chapter quiz
type QuizResultRequest struct {
	RawScore         int      `json:"rawScore"`
	TotalQuestions   int      `json:"totalQuestions"`
	QuestionsCorrect int      `json:"questionsCorrect"`
	QuestionsWrong   int      `json:"questionsWrong"`
	PassThreshold    *int     `json:"passThreshold,omitempty"`
	IsLastChapter    bool     `json:"isLastChapter"`
	WrongQuestionIDs []string `json:"wrongQuestionIds,omitempty"`
}

// ToAttempt converts the request, filling in defaultThreshold when no
// threshold was sent.
func (r QuizResultRequest) ToAttempt(defaultThreshold int) domain.QuizAttempt {
	threshold := defaultThreshold
	if r.PassThreshold != nil {
		threshold = *r.PassThreshold
	}
	return domain.QuizAttempt{
		RawScore:         r.RawScore,
		TotalQuestions:   r.TotalQuestions,
		QuestionsCorrect: r.QuestionsCorrect,
		QuestionsWrong:   r.QuestionsWrong,
		PassThreshold:    threshold,
		IsLastChapter:    r.IsLastChapter,
		WrongQuestionIDs: r.WrongQuestionIDs,
	}
}

// QuizResultResponse represents a scored quiz in the API response
// @Description Outcome of a chapter quiz
type QuizResultResponse struct {
	ResultID          string   `json:"resultId,omitempty"`
	Percentage        int      `json:"percentage"`
	Passed            bool     `json:"passed"`
	Stars             int      `json:"stars"`
	ChapterBonus      int      `json:"chapterBonus"`
	PathBonus         int      `json:"pathBonus"`
	TotalScore        int      `json:"totalScore"`
	PerformanceTier   string   `json:"performanceTier"`
	Message           string   `json:"message"`
	RetakeQuestionIDs []string `json:"retakeQuestionIds"`
}

var tierMessages = map[domain.PerformanceTier]string{
	domain.TierOutstanding:    "Outstanding work! You've mastered this chapter.",
	domain.TierGreat:          "Great job! You're making excellent progress.",
	domain.TierGoodEffort:     "Good effort! Review the missed questions to strengthen your understanding.",
	domain.TierKeepPracticing: "Keep practicing! Learning takes time and repetition.",
}

// TierMessage is the results-screen headline for a tier. It follows the
// percentage band only, so a failed attempt can still read "Great job".
func TierMessage(t domain.PerformanceTier) string {
	return tierMessages[t]
}

func NewQuizResultResponse(resultID string, o *domain.QuizOutcome) *QuizResultResponse {
	return &QuizResultResponse{
		ResultID:          resultID,
		Percentage:        o.Percentage,
		Passed:            o.Passed,
		Stars:             o.Stars,
		ChapterBonus:      o.ChapterBonus,
		PathBonus:         o.PathBonus,
		TotalScore:        o.TotalScore,
		PerformanceTier:   string(o.PerformanceTier),
		Message:           TierMessage(o.PerformanceTier),
		RetakeQuestionIDs: nonNil(o.RetakeQuestionIDs),
	}
}
