package attendance

import "errors"

var (
	ErrInvalidDate  = errors.New("Invalid date, expected YYYY-MM-DD")
	ErrInvalidMonth = errors.New("Invalid month, expected YYYY-MM")
)
