package advance

import "errors"

var (
	ErrAdvanceRequestNotFound = errors.New("Advance request not found")
	ErrNotRequestOwner        = errors.New("You do not have access to this advance request")
)
