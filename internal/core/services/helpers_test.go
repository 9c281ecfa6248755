package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

var testNow = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{now: testNow} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

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

func validElectionInput() ports.CreateElectionInput {
	return ports.CreateElectionInput{
		Title:          "Board Vote 2025",
		Description:    "Annual board election",
		CandidateNames: "Ann, Bob",
		StartDate:      testNow.Add(24 * time.Hour),
		EndDate:        testNow.Add(48 * time.Hour),
	}
}
