package domain

import "errors"

var (
	ErrElectionNotFound   = errors.New("Election not found")
	ErrInvalidElectionID  = errors.New("invalid election id")
	ErrUserNotFound       = errors.New("user not found")
	ErrAuthentication     = errors.New("User authentication failed or mismatch")
	ErrElectionNotOngoing = errors.New("This election is not currently ongoing")
	ErrNotAllowedToVote   = errors.New("User is not authorized to vote in this election")
	ErrInvalidCandidate   = errors.New("Invalid candidate for this election")
	ErrAlreadyVoted       = errors.New("User has already voted in this election")
	ErrNoDiscussion       = errors.New("No discussion to summarize")
	ErrSummaryNotFound    = errors.New("No discussion summary has been generated yet")
	ErrModeration         = errors.New("An unexpected error occurred during moderation or post creation")
	ErrSummarization      = errors.New("An unexpected error occurred while summarizing the discussion")
	ErrAIUnavailable      = errors.New("AI capability is not configured")
	ErrInternal           = errors.New("internal server error")
)

// Validation errors: bad input shape, reported to the caller as-is.
var (
	ErrTitleTooShort          = errors.New("Election title must be at least 5 characters long")
	ErrDescriptionTooShort    = errors.New("Election description must be at least 10 characters long")
	ErrCandidateNamesRequired = errors.New("Please provide at least one candidate name")
	ErrDatesRequired          = errors.New("Start and end dates are required")
	ErrStartNotBeforeEnd      = errors.New("Start date must be before end date")
	ErrEndInPast              = errors.New("End date must be in the future")
	ErrNoValidCandidates      = errors.New("At least one valid candidate name is required")
	ErrDescriptionMismatch    = errors.New("Number of candidate names and descriptions must match, or descriptions can be left empty")
	ErrElectionIDRequired     = errors.New("Election ID is required to create a post")
	ErrPostTooShort           = errors.New("Post content must be at least 10 characters long")
	ErrPostTooLong            = errors.New("Post content must be at most 1000 characters long")
	ErrInvalidEmail           = errors.New("A valid email address is required")
)

var validationErrors = []error{
	ErrTitleTooShort,
	ErrDescriptionTooShort,
	ErrCandidateNamesRequired,
	ErrDatesRequired,
	ErrStartNotBeforeEnd,
	ErrEndInPast,
	ErrNoValidCandidates,
	ErrDescriptionMismatch,
	ErrElectionIDRequired,
	ErrPostTooShort,
	ErrPostTooLong,
	ErrInvalidEmail,
	ErrInvalidElectionID,
}

func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
