package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

type voteKey struct {
	userID     uuid.UUID
	electionID uuid.UUID
}

// Store keeps every entity in process memory behind one lock. It backs the
// memory repositories below and is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	elections    map[uuid.UUID]domain.Election
	users        map[uuid.UUID]domain.User
	usersByEmail map[string]uuid.UUID
	votes        map[voteKey]domain.VoteRecord
	posts        []domain.ForumPost
	summaries    map[uuid.UUID]domain.DiscussionSummary
}

func NewStore() *Store {
	return &Store{
		elections:    make(map[uuid.UUID]domain.Election),
		users:        make(map[uuid.UUID]domain.User),
		usersByEmail: make(map[string]uuid.UUID),
		votes:        make(map[voteKey]domain.VoteRecord),
		summaries:    make(map[uuid.UUID]domain.DiscussionSummary),
	}
}

type electionRepository struct{ store *Store }

func NewElectionRepository(store *Store) ports.ElectionRepository {
	return &electionRepository{store: store}
}

func (r *electionRepository) Save(_ context.Context, election *domain.Election) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elections[election.ID] = cloneElection(*election)
	return nil
}

func (r *electionRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Election, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	election, ok := s.elections[id]
	if !ok {
		return nil, domain.ErrElectionNotFound
	}
	out := cloneElection(election)
	return &out, nil
}

func (r *electionRepository) GetAll(_ context.Context) ([]*domain.Election, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	elections := make([]*domain.Election, 0, len(s.elections))
	for _, election := range s.elections {
		out := cloneElection(election)
		elections = append(elections, &out)
	}
	slices.SortFunc(elections, func(a, b *domain.Election) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Title, b.Title)
	})
	return elections, nil
}

type voteRepository struct{ store *Store }

func NewVoteRepository(store *Store) ports.VoteRepository {
	return &voteRepository{store: store}
}

// RecordVote checks and inserts under the write lock, so two concurrent
// votes for the same pair cannot both succeed.
func (r *voteRepository) RecordVote(_ context.Context, vote *domain.VoteRecord) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := voteKey{userID: vote.UserID, electionID: vote.ElectionID}
	if _, exists := s.votes[key]; exists {
		return domain.ErrAlreadyVoted
	}
	s.votes[key] = *vote

	if user, ok := s.users[vote.UserID]; ok && !user.HasVotedIn(vote.ElectionID) {
		user.VotedElections = append(slices.Clone(user.VotedElections), vote.ElectionID)
		s.users[vote.UserID] = user
	}
	return nil
}

func (r *voteRepository) HasVoted(_ context.Context, userID, electionID uuid.UUID) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.votes[voteKey{userID: userID, electionID: electionID}]
	return exists, nil
}

// CountVotes is used by tests to assert the single-vote invariant.
func (s *Store) CountVotes(userID, electionID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for key := range s.votes {
		if key.userID == userID && key.electionID == electionID {
			n++
		}
	}
	return n
}

type forumRepository struct{ store *Store }

func NewForumRepository(store *Store) ports.ForumRepository {
	return &forumRepository{store: store}
}

func (r *forumRepository) SavePost(_ context.Context, post *domain.ForumPost) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, *post)
	return nil
}

func (r *forumRepository) ListByElection(_ context.Context, electionID uuid.UUID) ([]*domain.ForumPost, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Walk backwards so posts sharing a timestamp keep newest-inserted first.
	var posts []*domain.ForumPost
	for i := len(s.posts) - 1; i >= 0; i-- {
		if s.posts[i].ElectionID != electionID {
			continue
		}
		post := s.posts[i]
		posts = append(posts, &post)
	}
	slices.SortStableFunc(posts, func(a, b *domain.ForumPost) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return posts, nil
}

type summaryRepository struct{ store *Store }

func NewSummaryRepository(store *Store) ports.SummaryRepository {
	return &summaryRepository{store: store}
}

func (r *summaryRepository) SaveSummary(_ context.Context, summary *domain.DiscussionSummary) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[summary.ElectionID] = *summary
	return nil
}

func (r *summaryRepository) GetSummary(_ context.Context, electionID uuid.UUID) (*domain.DiscussionSummary, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary, ok := s.summaries[electionID]
	if !ok {
		return nil, domain.ErrSummaryNotFound
	}
	return &summary, nil
}

type userRepository struct{ store *Store }

func NewUserRepository(store *Store) ports.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usersByEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, nil
	}
	user := cloneUser(s.users[id])
	return &user, nil
}

func (r *userRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	out := cloneUser(user)
	return &out, nil
}

func (r *userRepository) Create(_ context.Context, user *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	email := strings.ToLower(strings.TrimSpace(user.Email))
	if existing, ok := s.usersByEmail[email]; ok {
		user.ID = existing
		*user = cloneUser(s.users[existing])
		return nil
	}
	user.Email = email
	s.users[user.ID] = cloneUser(*user)
	s.usersByEmail[email] = user.ID
	return nil
}

func cloneElection(e domain.Election) domain.Election {
	e.Candidates = slices.Clone(e.Candidates)
	e.AllowedVoters = slices.Clone(e.AllowedVoters)
	return e
}

func cloneUser(u domain.User) domain.User {
	u.VotedElections = slices.Clone(u.VotedElections)
	if u.VotedElections == nil {
		u.VotedElections = []uuid.UUID{}
	}
	return u
}
