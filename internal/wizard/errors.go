package wizard

import "errors"

var (
	// ErrNotInReview is returned when Confirm is called outside review
	// mode or after a completed submission.
	ErrNotInReview = errors.New("wizard is not in review mode")

	// ErrSubmitPending refuses a confirm while one is already in flight,
	// so a double click cannot create duplicate submissions.
	ErrSubmitPending = errors.New("a submission is already in flight")
)
