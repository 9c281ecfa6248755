package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/wevote/internal/adapters/cache/viewcache"
	"github.com/vncsmyrnk/wevote/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
	"github.com/vncsmyrnk/wevote/internal/core/services"
)

type MockModerator struct {
	mock.Mock
}

func (m *MockModerator) Moderate(ctx context.Context, text string) (domain.ModerationVerdict, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(domain.ModerationVerdict), args.Error(1)
}

type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Summarize(ctx context.Context, thread string, wordLimit int) (string, error) {
	args := m.Called(ctx, thread, wordLimit)
	return args.String(0), args.Error(1)
}

type MockBadgeGenerator struct {
	mock.Mock
}

func (m *MockBadgeGenerator) GenerateBadge(ctx context.Context, req ports.BadgeRequest) (ports.GeneratedBadge, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.GeneratedBadge), args.Error(1)
}

type testApp struct {
	server     *httptest.Server
	client     *http.Client
	moderator  *MockModerator
	summarizer *MockSummarizer
	badges     *MockBadgeGenerator
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	store := memory.NewStore()
	views := viewcache.New(time.Minute)
	electionRepo := memory.NewElectionRepository(store)
	userRepo := memory.NewUserRepository(store)

	app := &testApp{
		moderator:  new(MockModerator),
		summarizer: new(MockSummarizer),
		badges:     new(MockBadgeGenerator),
	}

	authService := services.NewAuthService(userRepo, "test-secret", time.Hour)
	userService := services.NewUserService(userRepo)

	router := NewHandler(Handlers{
		Elections: NewElectionHandler(services.NewElectionService(electionRepo, views), userService),
		Votes:     NewVoteHandler(services.NewVoteService(userRepo, electionRepo, memory.NewVoteRepository(store), views)),
		Forum:     NewForumHandler(services.NewForumService(electionRepo, memory.NewForumRepository(store), app.moderator, views)),
		Summaries: NewSummaryHandler(services.NewSummaryService(electionRepo, memory.NewForumRepository(store), memory.NewSummaryRepository(store), app.summarizer)),
		Badges:    NewBadgeHandler(services.NewBadgeService(electionRepo, app.badges), userService),
		Auth:      NewAuthHandler(authService, authService.SessionTTL(), "", false),
		Users:     NewUserHandler(userService),
	}, authService, []string{"*"})

	app.server = httptest.NewServer(router)
	app.client = app.server.Client()
	t.Cleanup(app.server.Close)
	return app
}

func (app *testApp) do(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, app.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}

	resp, err := app.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err == nil {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func (app *testApp) session(t *testing.T, email, name string) string {
	t.Helper()
	resp, body := app.do(t, http.MethodPost, "/auth/session", "", map[string]string{"email": email, "name": name})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "access_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, body["access_token"], cookie.Value)
	return cookie.Value
}

type electionPayload struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Candidates []struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"candidates"`
}

func (app *testApp) createElection(t *testing.T, start, end time.Time, voters string) electionPayload {
	t.Helper()
	raw, err := json.Marshal(map[string]string{
		"title":           "Board Vote 2025",
		"description":     "Annual board election",
		"candidate_names": "Ann, Bob",
		"voter_emails":    voters,
		"start_date":      start.Format(time.RFC3339),
		"end_date":        end.Format(time.RFC3339),
	})
	require.NoError(t, err)

	resp, err := app.client.Post(app.server.URL+"/api/elections", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Success  bool            `json:"success"`
		Election electionPayload `json:"election"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.True(t, created.Success)
	return created.Election
}

func TestHealth(t *testing.T) {
	app := setupTestApp(t)
	resp, body := app.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestElectionEndpoints(t *testing.T) {
	app := setupTestApp(t)
	now := time.Now()

	election := app.createElection(t, now.Add(time.Hour), now.Add(2*time.Hour), "")
	assert.Equal(t, "upcoming", election.Status)
	require.Len(t, election.Candidates, 2)
	assert.Equal(t, "Details for Ann", election.Candidates[0].Description)

	t.Run("get", func(t *testing.T) {
		resp, body := app.do(t, http.MethodGet, "/api/elections/"+election.ID, "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, election.ID, body["id"])
	})

	t.Run("list", func(t *testing.T) {
		resp, err := app.client.Get(app.server.URL + "/api/elections")
		require.NoError(t, err)
		defer resp.Body.Close()
		var list []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
	})

	t.Run("not found and bad id", func(t *testing.T) {
		resp, body := app.do(t, http.MethodGet, "/api/elections/"+uuid.NewString(), "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Election not found", body["error"])

		resp, _ = app.do(t, http.MethodGet, "/api/elections/bad", "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("validation error", func(t *testing.T) {
		resp, body := app.do(t, http.MethodPost, "/api/elections", "", map[string]string{
			"title":           "Vote",
			"description":     "Annual board election",
			"candidate_names": "Ann",
			"start_date":      "2030-01-01",
			"end_date":        "2030-01-02",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Election title must be at least 5 characters long", body["error"])
	})

	t.Run("malformed date", func(t *testing.T) {
		resp, body := app.do(t, http.MethodPost, "/api/elections", "", map[string]string{
			"title":           "Board Vote 2025",
			"description":     "Annual board election",
			"candidate_names": "Ann, Bob",
			"start_date":      "tomorrow",
			"end_date":        "2030-01-02",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Start and end dates are required", body["error"])
	})

	t.Run("field errors come before date errors", func(t *testing.T) {
		resp, body := app.do(t, http.MethodPost, "/api/elections", "", map[string]string{
			"title":           "Vote",
			"description":     "Annual board election",
			"candidate_names": "Ann",
			"start_date":      "tomorrow",
			"end_date":        "2030-01-02",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Election title must be at least 5 characters long", body["error"])
	})
}

func TestVoteEndpoints(t *testing.T) {
	app := setupTestApp(t)
	now := time.Now()
	election := app.createElection(t, now.Add(-time.Hour), now.Add(time.Hour), "")
	token := app.session(t, "ann@example.com", "Ann")
	votePath := fmt.Sprintf("/api/elections/%s/votes", election.ID)
	myVotePath := fmt.Sprintf("/api/elections/%s/my-vote", election.ID)

	resp, _ := app.do(t, http.MethodPost, votePath, "", map[string]string{"candidate_id": election.Candidates[0].ID})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := app.do(t, http.MethodGet, myVotePath, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["has_voted"])

	resp, body = app.do(t, http.MethodPost, votePath, token, map[string]string{"candidate_id": election.Candidates[0].ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = app.do(t, http.MethodPost, votePath, token, map[string]string{"candidate_id": election.Candidates[1].ID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, true, body["already_voted"])
	assert.Equal(t, "User has already voted in this election", body["error"])

	resp, body = app.do(t, http.MethodPost, votePath, token, map[string]string{"candidate_id": uuid.NewString()})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, true, body["already_voted"])

	resp, body = app.do(t, http.MethodGet, myVotePath, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["has_voted"])

	resp, body = app.do(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{election.ID}, body["voted_elections"])

	t.Run("claimed user mismatch", func(t *testing.T) {
		other := app.session(t, "bob@example.com", "Bob")
		resp, body := app.do(t, http.MethodPost, votePath, other, map[string]string{
			"candidate_id": election.Candidates[0].ID,
			"user_id":      uuid.NewString(),
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "User authentication failed or mismatch", body["error"])
	})

	t.Run("bearer header is accepted", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, app.server.URL+myVotePath, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestVoteRestrictions(t *testing.T) {
	app := setupTestApp(t)
	now := time.Now()
	restricted := app.createElection(t, now.Add(-time.Hour), now.Add(time.Hour), "a@x.io")
	upcoming := app.createElection(t, now.Add(time.Hour), now.Add(2*time.Hour), "")
	token := app.session(t, "c@z.io", "Cee")

	resp, body := app.do(t, http.MethodPost, "/api/elections/"+restricted.ID+"/votes", token, map[string]string{"candidate_id": restricted.Candidates[0].ID})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "User is not authorized to vote in this election", body["error"])

	resp, body = app.do(t, http.MethodPost, "/api/elections/"+upcoming.ID+"/votes", token, map[string]string{"candidate_id": upcoming.Candidates[0].ID})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "This election is not currently ongoing", body["error"])

	resp, _ = app.do(t, http.MethodPost, "/api/elections/"+upcoming.ID+"/votes", token, map[string]string{"candidate_id": "nope"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestElectionViewHidesAllowList(t *testing.T) {
	app := setupTestApp(t)
	now := time.Now()
	restricted := app.createElection(t, now.Add(-time.Hour), now.Add(time.Hour), "secret.voter@corp.io, boss@corp.io")
	electionPath := "/api/elections/" + restricted.ID

	resp, body := app.do(t, http.MethodGet, electionPath, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, "allowed_voters")
	assert.NotContains(t, body, "can_vote")
	assert.Equal(t, true, body["restricted"])

	resp, err := app.client.Get(app.server.URL + "/api/elections")
	require.NoError(t, err)
	defer resp.Body.Close()
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.NotContains(t, list[0], "allowed_voters")

	outsider := app.session(t, "c@z.io", "Cee")
	_, body = app.do(t, http.MethodGet, electionPath, outsider, nil)
	assert.Equal(t, false, body["can_vote"])

	voter := app.session(t, "boss@corp.io", "Boss")
	_, body = app.do(t, http.MethodGet, electionPath, voter, nil)
	assert.Equal(t, true, body["can_vote"])

	resp, _ = app.do(t, http.MethodPost, electionPath+"/votes", voter, map[string]string{"candidate_id": restricted.Candidates[0].ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_, body = app.do(t, http.MethodGet, electionPath, voter, nil)
	assert.Equal(t, false, body["can_vote"])

	_, body = app.do(t, http.MethodGet, electionPath, "not-a-token", nil)
	assert.NotContains(t, body, "can_vote")
}

func TestForumEndpoints(t *testing.T) {
	app := setupTestApp(t)
	now := time.Now()
	election := app.createElection(t, now.Add(-time.Hour), now.Add(time.Hour), "")
	postsPath := "/api/elections/" + election.ID + "/posts"

	app.moderator.On("Moderate", mock.Anything, "Buy cheap pills at spam.example").Return(domain.ModerationVerdict{Flagged: true, Reason: "spam"}, nil)
	app.moderator.On("Moderate", mock.Anything, "I support Ann for the board.").Return(domain.ModerationVerdict{}, nil)
	app.moderator.On("Moderate", mock.Anything, "This one breaks the model.").Return(domain.ModerationVerdict{}, errors.New("boom"))

	resp, body := app.do(t, http.MethodPost, postsPath, "", map[string]string{"content": "Buy cheap pills at spam.example"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["flagged"])
	assert.Equal(t, "spam", body["reason"])

	resp, body = app.do(t, http.MethodPost, postsPath, "", map[string]string{"content": "I support Ann for the board."})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, false, body["flagged"])
	assert.NotContains(t, body, "reason")

	resp, body = app.do(t, http.MethodPost, postsPath, "", map[string]string{"content": "short"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Post content must be at least 10 characters long", body["error"])

	resp, body = app.do(t, http.MethodPost, postsPath, "", map[string]string{"content": "This one breaks the model."})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "An unexpected error occurred during moderation or post creation", body["error"])

	listResp, err := app.client.Get(app.server.URL + postsPath)
	require.NoError(t, err)
	defer listResp.Body.Close()
	var posts []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "Anonymous", posts[0]["author"])

	t.Run("summary", func(t *testing.T) {
		summaryPath := "/api/elections/" + election.ID + "/discussion-summary"

		resp, _ := app.do(t, http.MethodGet, summaryPath, "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		app.summarizer.On("Summarize", mock.Anything, mock.Anything, 40).Return("Support for Ann.", nil)
		resp, body := app.do(t, http.MethodPost, summaryPath, "", map[string]int{"word_limit": 40})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		summary := body["summary"].(map[string]any)
		assert.Equal(t, "Support for Ann.", summary["summary"])
		assert.Equal(t, float64(1), summary["post_count"])

		resp, body = app.do(t, http.MethodGet, summaryPath, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Support for Ann.", body["summary"])
	})
}

func TestBadgeEndpoint(t *testing.T) {
	app := setupTestApp(t)
	now := time.Now()
	election := app.createElection(t, now.Add(-time.Hour), now.Add(time.Hour), "")
	token := app.session(t, "ann@example.com", "Ann")
	badgePath := "/api/elections/" + election.ID + "/badge"

	resp, _ := app.do(t, http.MethodPost, badgePath, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	app.badges.On("GenerateBadge", mock.Anything, ports.BadgeRequest{ElectionTitle: "Board Vote 2025", UserName: "Ann"}).
		Return(ports.GeneratedBadge{}, errors.New("no quota"))

	resp, body := app.do(t, http.MethodPost, badgePath, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	badge := body["badge"].(map[string]any)
	assert.Equal(t, "https://placehold.co/300x200.png?text=Error+Generating+Badge", badge["badge_image_url"])
	assert.Equal(t, true, badge["fallback"])
}

func TestLogoutExpiresCookie(t *testing.T) {
	app := setupTestApp(t)
	resp, _ := app.do(t, http.MethodPost, "/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var expired bool
	for _, c := range resp.Cookies() {
		if c.Name == "access_token" && c.MaxAge < 0 {
			expired = true
		}
	}
	assert.True(t, expired)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrTitleTooShort, http.StatusBadRequest},
		{domain.ErrAuthentication, http.StatusUnauthorized},
		{domain.ErrNotAllowedToVote, http.StatusForbidden},
		{fmt.Errorf("wrapped: %w", domain.ErrElectionNotFound), http.StatusNotFound},
		{domain.ErrAlreadyVoted, http.StatusConflict},
		{domain.ErrSummarization, http.StatusBadGateway},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, _ := statusFor(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
	}

	_, message := statusFor(errors.New("pq: connection refused"))
	assert.Equal(t, unexpectedErrorMessage, message)
}

func TestParseDate(t *testing.T) {
	for _, value := range []string{"2030-01-02T15:04:05Z", "2030-01-02T15:04", "2030-01-02"} {
		assert.Equal(t, 2030, parseDate(value).Year(), value)
	}
	assert.True(t, parseDate("  ").IsZero())
	assert.True(t, parseDate("01/02/2030").IsZero())
}
