package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("Leave request not found")
	ErrNotRequestOwner      = errors.New("You do not have access to this leave request")
)
