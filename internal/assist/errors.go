package assist

import "errors"

var (
	// ErrGenerationFailed wraps any error returned by the Generator.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrMalformedOutput marks generator output that could not be parsed as a tag array.
	ErrMalformedOutput = errors.New("malformed generation output")
	// ErrPersistenceFailed wraps any error returned by the JobStore on save.
	ErrPersistenceFailed = errors.New("saving draft failed")

	ErrGenerationInProgress = errors.New("generation already in progress")
	ErrSaveInProgress       = errors.New("save already in progress")
	ErrSessionClosed        = errors.New("edit session closed")
	ErrSessionNotFound      = errors.New("edit session not found")
	ErrWrongSessionKind     = errors.New("edit session is of a different kind")
	ErrTagIndex             = errors.New("tag index out of range")
	ErrEmptyDescription     = errors.New("description must not be empty")
	ErrNothingToCopy        = errors.New("no suggestion to copy")
)
