// Package grader checks learner answers against generated questions.
package grader

import (
	"math"
	"strings"

	"github.com/abhisek/shapewise/internal/problemgen"
	"github.com/abhisek/shapewise/internal/units"
)

// PointsPerQuestion is the fixed value of a correct answer. Ten questions
// per run makes the run score a percentage.
const PointsPerQuestion = 10

// relTolerance is the relative tolerance for numeric comparison. Tight
// enough to reject rounding to fewer decimals than the answer carries,
// loose enough to forgive float formatting.
const relTolerance = 1e-6

// MissingUnitMessage is shown when a numeric answer omits its unit.
const MissingUnitMessage = "Please include units (e.g. 24 cm²)."

// Reason classifies a grading outcome.
type Reason string

const (
	ReasonOK          Reason = "ok"
	ReasonMissingUnit Reason = "missing_unit"
	ReasonBadUnit     Reason = "bad_unit"
	ReasonNotANumber  Reason = "not_a_number"
	ReasonWrongValue  Reason = "wrong_value"
	ReasonWrongChoice Reason = "wrong_choice"
)

// Result is the outcome of grading one answer.
type Result struct {
	Correct bool
	Reason  Reason
	Points  int

	// Message is learner-facing feedback for rejected input, empty when
	// the answer was graded on its value.
	Message string

	// Value is the canonical cm² value the answer parsed to, when it
	// parsed at all.
	Value float64
}

// Grade checks raw learner input against the question. Grading is pure:
// the same question and input always produce the same Result.
func Grade(q problemgen.Question, raw string) Result {
	if q.Format == problemgen.FormatMultipleChoice {
		return gradeChoice(q, raw)
	}
	return gradeNumeric(q, raw)
}

func gradeNumeric(q problemgen.Question, raw string) Result {
	p, err := units.Parse(raw)
	switch err {
	case nil:
	case units.ErrNotANumber:
		return Result{Reason: ReasonNotANumber, Message: "Please enter a number, like 24 cm²."}
	case units.ErrUnrecognizedUnit:
		return Result{Reason: ReasonBadUnit, Message: "I don't know that unit. Try cm² or m²."}
	default:
		return Result{Reason: ReasonNotANumber, Message: err.Error()}
	}

	if !p.UnitPresent {
		return Result{Reason: ReasonMissingUnit, Message: MissingUnitMessage}
	}
	if !p.Unit.IsArea() {
		return Result{Reason: ReasonBadUnit, Message: "Area needs a square unit, like cm² or m²."}
	}

	value, err := units.ToCanonical(p)
	if err != nil {
		return Result{Reason: ReasonBadUnit, Message: err.Error()}
	}
	if !closeEnough(value, q.Answer) {
		return Result{Reason: ReasonWrongValue, Value: value}
	}
	return Result{Correct: true, Reason: ReasonOK, Points: PointsPerQuestion, Value: value}
}

func gradeChoice(q problemgen.Question, raw string) Result {
	picked := strings.ToLower(strings.TrimSpace(raw))
	if picked == strings.ToLower(q.Correct) {
		return Result{Correct: true, Reason: ReasonOK, Points: PointsPerQuestion}
	}
	return Result{Reason: ReasonWrongChoice}
}

// closeEnough mirrors a relative-tolerance comparison with no absolute
// floor, so zero only matches zero exactly.
func closeEnough(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= relTolerance*math.Max(math.Abs(a), math.Abs(b))
}
