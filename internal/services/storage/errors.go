package storage

import "errors"

var (
	// ErrStaging is returned when the upload to object storage fails.
	// The local file is left in place in that case.
	ErrStaging = errors.New("staging failed")
)
