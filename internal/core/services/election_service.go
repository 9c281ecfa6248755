package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

const (
	minTitleLength       = 5
	minDescriptionLength = 10
)

var (
	listSeparator = regexp.MustCompile(`[\n,]+`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

type electionService struct {
	repo   ports.ElectionRepository
	views  ports.ViewCache
	clock  ports.Clock
	logger *slog.Logger
}

func NewElectionService(repo ports.ElectionRepository, views ports.ViewCache, opts ...Option) ports.ElectionService {
	o := buildOptions(opts)
	return &electionService{
		repo:   repo,
		views:  resolveViews(views),
		clock:  o.clock,
		logger: o.logger,
	}
}

func (s *electionService) Create(ctx context.Context, input ports.CreateElectionInput) (*domain.Election, error) {
	now := s.clock.Now()

	title := strings.TrimSpace(input.Title)
	if utf8.RuneCountInString(title) < minTitleLength {
		return nil, domain.ErrTitleTooShort
	}
	description := strings.TrimSpace(input.Description)
	if utf8.RuneCountInString(description) < minDescriptionLength {
		return nil, domain.ErrDescriptionTooShort
	}
	if strings.TrimSpace(input.CandidateNames) == "" {
		return nil, domain.ErrCandidateNamesRequired
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, domain.ErrDatesRequired
	}
	if !input.StartDate.Before(input.EndDate) {
		return nil, domain.ErrStartNotBeforeEnd
	}
	if !input.EndDate.After(now) {
		return nil, domain.ErrEndInPast
	}

	names := splitCandidateNames(input.CandidateNames)
	if len(names) == 0 {
		return nil, domain.ErrNoValidCandidates
	}
	descriptions := splitCandidateDescriptions(input.CandidateDescriptions)
	if len(descriptions) != len(names) && slices.ContainsFunc(descriptions, func(d string) bool { return d != "" }) {
		return nil, domain.ErrDescriptionMismatch
	}

	electionID := uuid.New()
	election := &domain.Election{
		ID:            electionID,
		Title:         title,
		Description:   description,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		AllowedVoters: parseVoterEmails(input.VoterEmails),
		ImageURL:      "https://placehold.co/600x300.png?text=" + url.PathEscape(title),
		CreatedAt:     now,
	}
	for i, name := range names {
		desc := ""
		if i < len(descriptions) {
			desc = descriptions[i]
		}
		if desc == "" {
			desc = "Details for " + name
		}
		election.Candidates = append(election.Candidates, domain.Candidate{
			ID:          uuid.New(),
			ElectionID:  electionID,
			Name:        name,
			Description: desc,
			ImageURL:    candidateImageURL(name),
		})
	}
	election.Status = election.StatusAt(now)

	if err := s.repo.Save(ctx, election); err != nil {
		return nil, fmt.Errorf("failed to save election: %w", err)
	}
	s.views.Invalidate(electionsViewKey)

	s.logger.Info("election created",
		"election_id", election.ID,
		"candidates", len(election.Candidates),
		"restricted", election.Restricted(),
		"status", election.Status,
	)
	return election, nil
}

func (s *electionService) GetElection(ctx context.Context, id string) (*domain.Election, error) {
	electionID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidElectionID
	}

	cached, err := s.views.Fetch(ctx, electionViewKey(electionID), func(ctx context.Context) (any, error) {
		return s.repo.GetByID(ctx, electionID)
	})
	if err != nil {
		return nil, err
	}

	election := cached.(*domain.Election).At(s.clock.Now())
	return &election, nil
}

func (s *electionService) ListElections(ctx context.Context) ([]*domain.Election, error) {
	cached, err := s.views.Fetch(ctx, electionsViewKey, func(ctx context.Context) (any, error) {
		return s.repo.GetAll(ctx)
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	stored := cached.([]*domain.Election)
	elections := make([]*domain.Election, 0, len(stored))
	for _, e := range stored {
		election := e.At(now)
		elections = append(elections, &election)
	}
	return elections, nil
}

func splitCandidateNames(raw string) []string {
	var names []string
	for _, name := range listSeparator.Split(raw, -1) {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// splitCandidateDescriptions splits on newlines only: descriptions may
// contain commas. Blank lines are kept so positions line up with names.
func splitCandidateDescriptions(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// parseVoterEmails drops anything that does not look like an address.
func parseVoterEmails(raw string) []string {
	var emails []string
	for _, email := range listSeparator.Split(raw, -1) {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" || !emailPattern.MatchString(email) || slices.Contains(emails, email) {
			continue
		}
		emails = append(emails, email)
	}
	return emails
}

func candidateImageURL(name string) string {
	first, _ := utf8.DecodeRuneInString(name)
	return "https://placehold.co/300x300.png?text=" + url.PathEscape(string(first))
}
