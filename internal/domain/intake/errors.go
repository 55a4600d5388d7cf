package intake

import "errors"

var (
	// ErrValidation accompanies a non-empty field-error map.
	ErrValidation = errors.New("draft validation failed")
	// ErrBusy means a network operation for this session is already in
	// flight; the triggering action must stay disabled until it settles.
	ErrBusy = errors.New("another operation is in progress")
	// ErrInvalidState rejects an action the current wizard step does not
	// offer.
	ErrInvalidState = errors.New("action not available in current state")
	// ErrFileTooLarge rejects an attachment at selection time.
	ErrFileTooLarge = errors.New("file exceeds the 20 MB limit")
	// ErrSchemeLimit rejects a sixth pool-scheme file.
	ErrSchemeLimit = errors.New("no more than 5 pool scheme files")
	// ErrNoSuchAttachment rejects removal of an attachment that is not in
	// the draft.
	ErrNoSuchAttachment = errors.New("attachment not found")
	// ErrMissingRequestID is a defect guard: step 2 must never be
	// reachable without a request ID from step 1.
	ErrMissingRequestID = errors.New("no request id for step 2 submission")
)
