package squadeval

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrNoQuestions indicates no question in the dataset had a
	// corresponding prediction, so no mean score is defined.
	ErrNoQuestions = errors.New("squadeval: no scored questions")

	// ErrNoAnswerable indicates a precision-recall analysis was requested
	// for a dataset without answerable questions; the curve is undefined.
	ErrNoAnswerable = errors.New("squadeval: no answerable questions")
)
