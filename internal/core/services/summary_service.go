package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

const DefaultSummaryWordLimit = 100

type summaryService struct {
	electionRepo ports.ElectionRepository
	forumRepo    ports.ForumRepository
	summaryRepo  ports.SummaryRepository
	summarizer   ports.Summarizer
	clock        ports.Clock
	logger       *slog.Logger
	aiTimeout    time.Duration
}

func NewSummaryService(electionRepo ports.ElectionRepository, forumRepo ports.ForumRepository, summaryRepo ports.SummaryRepository, summarizer ports.Summarizer, opts ...Option) ports.SummaryService {
	o := buildOptions(opts)
	return &summaryService{
		electionRepo: electionRepo,
		forumRepo:    forumRepo,
		summaryRepo:  summaryRepo,
		summarizer:   summarizer,
		clock:        o.clock,
		logger:       o.logger,
		aiTimeout:    o.aiTimeout,
	}
}

func (s *summaryService) Summarize(ctx context.Context, electionID string, wordLimit int) (*domain.DiscussionSummary, error) {
	id, err := uuid.Parse(strings.TrimSpace(electionID))
	if err != nil {
		return nil, domain.ErrInvalidElectionID
	}
	if _, err := s.electionRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.summarize(ctx, id, wordLimit)
}

func (s *summaryService) Latest(ctx context.Context, electionID string) (*domain.DiscussionSummary, error) {
	id, err := uuid.Parse(strings.TrimSpace(electionID))
	if err != nil {
		return nil, domain.ErrInvalidElectionID
	}
	return s.summaryRepo.GetSummary(ctx, id)
}

// SummarizeAll refreshes the summary of every election that has discussion.
func (s *summaryService) SummarizeAll(ctx context.Context) error {
	elections, err := s.electionRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch all elections: %w", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(elections))

	for _, election := range elections {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := s.summarize(ctx, id, DefaultSummaryWordLimit)
			if err != nil && !errors.Is(err, domain.ErrNoDiscussion) {
				errChan <- fmt.Errorf("failed to summarize election %s: %w", id, err)
			}
		}(election.ID)
	}

	wg.Wait()
	close(errChan)

	var errs []error
	for err := range errChan {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *summaryService) summarize(ctx context.Context, electionID uuid.UUID, wordLimit int) (*domain.DiscussionSummary, error) {
	if wordLimit <= 0 {
		wordLimit = DefaultSummaryWordLimit
	}

	posts, err := s.forumRepo.ListByElection(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	thread, count := discussionThread(posts)
	if count == 0 {
		return nil, domain.ErrNoDiscussion
	}

	text, err := s.callSummarizer(ctx, thread, wordLimit)
	if err != nil {
		s.logger.Error("discussion summarization failed", "election_id", electionID, "error", err)
		return nil, domain.ErrSummarization
	}

	summary := &domain.DiscussionSummary{
		ElectionID:  electionID,
		Summary:     strings.TrimSpace(text),
		WordLimit:   wordLimit,
		PostCount:   count,
		GeneratedAt: s.clock.Now(),
	}
	if err := s.summaryRepo.SaveSummary(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to save summary: %w", err)
	}

	s.logger.Info("discussion summarized", "election_id", electionID, "posts", count)
	return summary, nil
}

func (s *summaryService) callSummarizer(ctx context.Context, thread string, wordLimit int) (string, error) {
	if s.summarizer == nil {
		return "", domain.ErrAIUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()
	return s.summarizer.Summarize(ctx, thread, wordLimit)
}

// discussionThread renders unflagged posts oldest first. posts arrive newest
// first from the repository.
func discussionThread(posts []*domain.ForumPost) (string, int) {
	var b strings.Builder
	count := 0
	for i := len(posts) - 1; i >= 0; i-- {
		post := posts[i]
		if post.IsFlagged {
			continue
		}
		fmt.Fprintf(&b, "[%s] %s: %s\n", post.CreatedAt.UTC().Format(time.RFC3339), post.Author, strings.TrimSpace(post.Content))
		count++
	}
	return b.String(), count
}
