package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadpath/internal/domain"
	"leadpath/internal/dto"
	"leadpath/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestCatalogHandler(t *testing.T) {
	svc := new(MockCatalogService)
	h := NewCatalogHandler(svc)
	vm := middleware.NewValidationMiddleware()

	app := newApp()
	app.Get("/api/roles", h.GetRoles)
	app.Get("/api/goals", h.GetGoals)
	app.Get("/api/paths", vm.ValidatePathFilter(), h.GetPaths)
	app.Get("/api/paths/:id", vm.ValidatePathID(), h.GetPath)

	svc.On("Roles", mock.Anything).Return([]domain.Role{{ID: "tech-team", Name: "Tech Team"}}, nil)
	svc.On("Goals", mock.Anything).Return([]string{"Create Team Unity"}, nil)
	svc.On("Paths", mock.Anything, domain.PathFilter{Role: "tech-team", Difficulty: domain.DifficultyIntermediate}).
		Return([]domain.LearningPath{{ID: 6, Title: "Worship Leadership Excellence", Difficulty: domain.DifficultyIntermediate}}, nil)
	svc.On("Path", mock.Anything, int64(6)).
		Return(&domain.LearningPath{ID: 6, Title: "Worship Leadership Excellence", Difficulty: domain.DifficultyIntermediate}, nil)
	svc.On("Path", mock.Anything, int64(99)).Return(nil, domain.NewPathNotFoundError(99))

	t.Run("roles", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "GET", "/api/roles", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		var roles []dto.RoleResponse
		decode(t, resp, &roles)
		assert.Equal(t, "tech-team", roles[0].ID)
	})

	t.Run("goals", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "GET", "/api/goals", nil))
		require.NoError(t, err)
		var goals dto.GoalsResponse
		decode(t, resp, &goals)
		assert.Equal(t, []string{"Create Team Unity"}, goals.Goals)
	})

	t.Run("filtered paths", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "GET", "/api/paths?role=tech-team&difficulty=Intermediate", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		var paths []dto.LearningPathResponse
		decode(t, resp, &paths)
		require.Len(t, paths, 1)
		assert.Equal(t, "Intermediate", paths[0].Difficulty)
	})

	t.Run("path by id", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "GET", "/api/paths/6", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("path not found", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "GET", "/api/paths/99", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		var body middleware.ErrorResponse
		decode(t, resp, &body)
		assert.Equal(t, "PATH_NOT_FOUND", body.Code)
	})

	t.Run("bad path id", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "GET", "/api/paths/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	svc.AssertExpectations(t)
}

func TestRecommendationHandler(t *testing.T) {
	svc := new(MockRecommendationService)
	app := newApp()
	app.Post("/api/recommendations", NewRecommendationHandler(svc).Recommend)

	query := domain.RecommendationQuery{Role: "worship-leader", Goals: []string{"Lead with Confidence", "Create Team Unity"}}
	svc.On("Recommend", mock.Anything, query).Return([]domain.ScoredPath{
		{Path: domain.LearningPath{ID: 6, Title: "Worship Leadership Excellence", Difficulty: domain.DifficultyIntermediate}, RelevanceScore: 2},
		{Path: domain.LearningPath{ID: 1, Title: "Leadership Fundamentals", Difficulty: domain.DifficultyBeginner}, RelevanceScore: 1},
	}, nil)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/recommendations", dto.RecommendationRequest{Role: query.Role, Goals: query.Goals}))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body dto.RecommendationResponse
	decode(t, resp, &body)
	assert.Equal(t, "worship-leader", body.Role)
	require.Len(t, body.Recommendations, 2)
	assert.Equal(t, int64(6), body.Recommendations[0].ID)
	assert.Equal(t, 2, body.Recommendations[0].RelevanceScore)

	t.Run("missing role", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/recommendations", dto.RecommendationRequest{}))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/recommendations", "{"))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("strict rejection", func(t *testing.T) {
		strict := new(MockRecommendationService)
		strict.On("Recommend", mock.Anything, mock.Anything).Return(nil, domain.NewInvalidRoleError("choir"))
		app := newApp()
		app.Post("/api/recommendations", NewRecommendationHandler(strict).Recommend)

		resp, err := app.Test(jsonRequest(t, "POST", "/api/recommendations", dto.RecommendationRequest{Role: "choir"}))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		var body middleware.ErrorResponse
		decode(t, resp, &body)
		assert.Equal(t, "INVALID_ROLE", body.Code)
	})
}

func TestOnboardingHandler(t *testing.T) {
	svc := new(MockOnboardingService)
	h := NewOnboardingHandler(svc)
	app := newApp()
	app.Post("/api/onboarding/complete", h.Complete)
	app.Post("/api/onboarding/password-strength", h.PasswordStrength)
	app.Get("/api/onboarding/time-commitments", h.TimeCommitments)

	selected := int64(6)
	req := dto.OnboardingRequest{
		FirstName: "Grace", LastName: "Kim", Username: "gkim", Email: "grace@example.org",
		Password: "Str0ng!pass", Role: "tech-team", Goals: []string{"Create Team Unity"},
		TimeCommitmentID: 2, SelectedPath: &selected,
	}
	svc.On("Complete", mock.Anything, req.ToSubmission()).
		Return(&domain.LeaderProfile{Name: "Grace Kim", Role: "tech-team", DailyTimeCommitment: 15, SelectedPath: &selected}, nil)
	svc.On("PasswordStrength", "abc").Return(domain.EvaluatePassword("abc"))
	svc.On("TimeCommitments").Return(domain.TimeCommitments())

	t.Run("complete", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/onboarding/complete", req))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
		var profile domain.LeaderProfile
		decode(t, resp, &profile)
		assert.Equal(t, "Grace Kim", profile.Name)
		assert.Equal(t, 15, profile.DailyTimeCommitment)
	})

	t.Run("validation failure", func(t *testing.T) {
		bad := req
		bad.Email = "nope"
		resp, err := app.Test(jsonRequest(t, "POST", "/api/onboarding/complete", bad))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		var body middleware.ValidationErrorResponse
		decode(t, resp, &body)
		assert.Equal(t, "email", body.Errors[0].Field)
	})

	t.Run("password strength", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/onboarding/password-strength", dto.PasswordStrengthRequest{Password: "abc"}))
		require.NoError(t, err)
		var strength domain.PasswordStrength
		decode(t, resp, &strength)
		assert.Equal(t, "Weak", strength.Label)
		assert.Equal(t, 20, strength.Percentage)
	})

	t.Run("time commitments", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, "GET", "/api/onboarding/time-commitments", nil))
		require.NoError(t, err)
		var body dto.TimeCommitmentsResponse
		decode(t, resp, &body)
		assert.Len(t, body.Options, 3)
		assert.Equal(t, 15, body.Default)
	})
}

func TestQuizHandler(t *testing.T) {
	svc := new(MockQuizService)
	h := NewQuizHandler(svc, 70)
	app := newApp()
	app.Post("/api/quiz/results", h.SubmitResult)
	app.Get("/api/quiz/results/:id", h.GetResult)
	app.Delete("/api/quiz/results/:id", h.DismissResult)

	id := "01HZX3Q8J7G9W2B4N6M8P0R2T4"
	stored := &dto.QuizResultResponse{ResultID: id, Percentage: 90, Passed: true, Stars: 3, ChapterBonus: 50, TotalScore: 95}

	t.Run("submit uses default threshold", func(t *testing.T) {
		svc.On("Score", mock.Anything, mock.MatchedBy(func(a domain.QuizAttempt) bool {
			return a.PassThreshold == 70 && a.TotalQuestions == 10
		})).Return(stored, nil).Once()

		resp, err := app.Test(jsonRequest(t, "POST", "/api/quiz/results", dto.QuizResultRequest{
			RawScore: 40, TotalQuestions: 10, QuestionsCorrect: 9, QuestionsWrong: 1,
		}))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
		assert.Equal(t, "/api/quiz/results/"+id, resp.Header.Get("Location"))
		var body dto.QuizResultResponse
		decode(t, resp, &body)
		assert.Equal(t, 95, body.TotalScore)
	})

	t.Run("submit empty quiz", func(t *testing.T) {
		svc.On("Score", mock.Anything, mock.MatchedBy(func(a domain.QuizAttempt) bool {
			return a.TotalQuestions == 0
		})).Return(nil, domain.ErrDivisionUndefined).Once()

		resp, err := app.Test(jsonRequest(t, "POST", "/api/quiz/results", dto.QuizResultRequest{}))
		require.NoError(t, err)
		assert.Equal(t, 422, resp.StatusCode)
		var body middleware.ErrorResponse
		decode(t, resp, &body)
		assert.Equal(t, "DIVISION_UNDEFINED", body.Code)
		assert.Equal(t, "cannot score an empty quiz", body.Message)
	})

	t.Run("get", func(t *testing.T) {
		svc.On("Result", mock.Anything, id).Return(stored, nil).Once()
		resp, err := app.Test(jsonRequest(t, "GET", "/api/quiz/results/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("dismiss", func(t *testing.T) {
		svc.On("Dismiss", mock.Anything, id).Return(nil).Once()
		resp, err := app.Test(jsonRequest(t, "DELETE", "/api/quiz/results/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, 204, resp.StatusCode)
	})

	t.Run("dismiss missing", func(t *testing.T) {
		svc.On("Dismiss", mock.Anything, id).Return(domain.NewResultNotFoundError(id)).Once()
		resp, err := app.Test(jsonRequest(t, "DELETE", "/api/quiz/results/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	svc.AssertExpectations(t)
}

func TestHealthHandler(t *testing.T) {
	healthy := NewHealthHandler(map[string]Pinger{
		"cache": PingFunc(func(ctx context.Context) error { return nil }),
		"db":    nil,
	})
	app := newApp()
	app.Get("/health", healthy.Health)

	resp, err := app.Test(jsonRequest(t, "GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	var body dto.HealthResponse
	decode(t, resp, &body)
	assert.Equal(t, map[string]string{"cache": "ok"}, body.Checks)

	degraded := NewHealthHandler(map[string]Pinger{
		"cache": PingFunc(func(ctx context.Context) error { return errors.New("connection refused") }),
	})
	app = newApp()
	app.Get("/health", degraded.Health)

	resp, err = app.Test(jsonRequest(t, "GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}
