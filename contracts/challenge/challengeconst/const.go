package challengeconst

const (
	// NotFoundError is returned if the requested challenge is missing.
	NotFoundError = "challenge does not exist"
	// InactiveError is returned on attempt to join a challenge that is
	// deactivated or has never been created.
	InactiveError = "challenge is not active"
	// AlreadyParticipatedError is returned on repeated participation of the
	// same identity in the same challenge.
	AlreadyParticipatedError = "already participating in this challenge"
	// WinnerLimitError is returned when a selection would push the number of
	// winners past the limit fixed at challenge creation.
	WinnerLimitError = "winner limit reached"
	// NotWinnerError is returned on reward claim by an identity that has not
	// been selected as a winner.
	NotWinnerError = "not a winner of this challenge"
	// AlreadyClaimedError is returned on repeated reward claim by the same
	// winner.
	AlreadyClaimedError = "reward has already been claimed"
	// TransferFailedError is returned when the GAS contract refuses to move
	// the reward share to the winner.
	TransferFailedError = "failed to transfer reward, aborting"

	// ErrInvalidOwner is thrown when owner has invalid format.
	ErrInvalidOwner = "invalid owner"
	// ErrInvalidParticipant is thrown when participant has invalid format.
	ErrInvalidParticipant = "invalid participant"
	// ErrInvalidWinner is thrown when winner has invalid format.
	ErrInvalidWinner = "invalid winner"
	// ErrInvalidWinnerLimit is thrown when the winner limit is not a positive
	// number.
	ErrInvalidWinnerLimit = "invalid winner limit"
	// ErrInvalidReward is thrown when the reward amount is negative.
	ErrInvalidReward = "invalid reward amount"
)
