package store

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicateAttempt is returned when a second attempt is created for
	// a (learner, stage) pair that already has one. Under concurrent
	// starts exactly one creator wins; the rest get this error.
	ErrDuplicateAttempt = errors.New("store: attempt already exists")

	// ErrDuplicateAssessment is the pre-assessment flavor of the above.
	ErrDuplicateAssessment = errors.New("store: pre-assessment already exists")

	// ErrAlreadyFinished is returned when finalizing a run that has
	// already been finalized. The first finalize wins; the recorded score
	// never changes after that.
	ErrAlreadyFinished = errors.New("store: run already finished")
)
