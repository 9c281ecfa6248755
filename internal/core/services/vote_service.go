package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

type voteService struct {
	userRepo     ports.UserRepository
	electionRepo ports.ElectionRepository
	voteRepo     ports.VoteRepository
	views        ports.ViewCache
	clock        ports.Clock
	logger       *slog.Logger
}

func NewVoteService(userRepo ports.UserRepository, electionRepo ports.ElectionRepository, voteRepo ports.VoteRepository, views ports.ViewCache, opts ...Option) ports.VoteService {
	o := buildOptions(opts)
	return &voteService{
		userRepo:     userRepo,
		electionRepo: electionRepo,
		voteRepo:     voteRepo,
		views:        resolveViews(views),
		clock:        o.clock,
		logger:       o.logger,
	}
}

// Vote runs the eligibility checks in order and records the vote. The HasVoted
// read only reports an earlier vote ahead of candidate validation; the
// single-vote guarantee comes from the repository's atomic insert.
func (s *voteService) Vote(ctx context.Context, input ports.VoteInput) (*domain.VoteRecord, error) {
	if input.ActorID == uuid.Nil {
		return nil, domain.ErrAuthentication
	}
	if input.UserID != uuid.Nil && input.UserID != input.ActorID {
		return nil, domain.ErrAuthentication
	}

	user, err := s.userRepo.GetByID(ctx, input.ActorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrAuthentication
	}

	election, err := s.electionRepo.GetByID(ctx, input.ElectionID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if election.StatusAt(now) != domain.StatusOngoing {
		return nil, domain.ErrElectionNotOngoing
	}
	if !election.AllowsVoter(user.Email) {
		return nil, domain.ErrNotAllowedToVote
	}
	voted, err := s.voteRepo.HasVoted(ctx, user.ID, election.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check vote: %w", err)
	}
	if voted {
		return nil, domain.ErrAlreadyVoted
	}
	if !election.HasCandidate(input.CandidateID) {
		return nil, domain.ErrInvalidCandidate
	}

	vote := &domain.VoteRecord{
		ID:          uuid.New(),
		UserID:      user.ID,
		ElectionID:  election.ID,
		CandidateID: input.CandidateID,
		CreatedAt:   now,
	}
	if err := s.voteRepo.RecordVote(ctx, vote); err != nil {
		if errors.Is(err, domain.ErrAlreadyVoted) {
			return nil, domain.ErrAlreadyVoted
		}
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}

	s.views.Invalidate(electionViewKey(election.ID), electionsViewKey)

	s.logger.Info("vote recorded", "election_id", election.ID, "user_id", user.ID)
	return vote, nil
}

func (s *voteService) HasVoted(ctx context.Context, userID, electionID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, domain.ErrAuthentication
	}
	return s.voteRepo.HasVoted(ctx, userID, electionID)
}
