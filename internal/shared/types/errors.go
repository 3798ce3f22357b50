package types

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange      = errors.New("start date must not be after end date")
)
