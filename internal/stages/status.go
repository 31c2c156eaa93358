package stages

// Status is a stage's state for one learner.
type Status string

const (
	// StatusLocked means the predecessor has not been passed.
	StatusLocked Status = "locked"

	// StatusUnlocked means the stage can be started but has no attempt.
	StatusUnlocked Status = "unlocked"

	// StatusInProgress means an attempt exists and is not finalized.
	StatusInProgress Status = "in_progress"

	// StatusPassed means the attempt finished with a passing score.
	StatusPassed Status = "passed"

	// StatusFailed means the single attempt finished below PassScore.
	// The stage can never be retried; later stages stay locked.
	StatusFailed Status = "failed"
)

// Playable reports whether the learner can enter the stage right now.
func (s Status) Playable() bool {
	return s == StatusUnlocked || s == StatusInProgress
}
