// Package problemgen generates area questions for the ten stages and the
// pre-assessment.
package problemgen

// ShapeKind identifies the family of shape a question is about.
type ShapeKind string

const (
	// KindIdentify is the stage-one "name this shape" drill. It is the only
	// kind answered by multiple choice rather than a numeric area.
	KindIdentify      ShapeKind = "shape-basics"
	KindRectangle     ShapeKind = "rectangle"
	KindSquare        ShapeKind = "square"
	KindTriangle      ShapeKind = "triangle"
	KindCircle        ShapeKind = "circle"
	KindEllipse       ShapeKind = "ellipse"
	KindParallelogram ShapeKind = "parallelogram"
	KindRhombus       ShapeKind = "rhombus"
	KindTrapezium     ShapeKind = "trapezium"
	// KindMixed is not itself generated; a mixed request draws uniformly
	// from the concrete kinds above.
	KindMixed ShapeKind = "mixed"
)

// Difficulty is the tier a run is generated at. It controls dimension
// ranges, not which formulas appear.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Difficulties lists the tiers in ascending order.
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced}

// Valid reports whether d is one of the three known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// AnswerFormat describes how the learner provides their answer.
type AnswerFormat string

const (
	// FormatNumeric means the learner types a value with an area unit.
	FormatNumeric AnswerFormat = "numeric"

	// FormatMultipleChoice means the learner picks from 4 choices.
	FormatMultipleChoice AnswerFormat = "multiple_choice"
)

// Question is a single generated question ready for display.
type Question struct {
	// Prompt is the question text, e.g.
	// "A rectangle is 6 cm long and 4 cm wide. What is its area?"
	Prompt string

	// Answer is the correct area in cm². Dimensions given in metres are
	// already converted, so grading never re-reads the prompt.
	// Unused for multiple choice.
	Answer float64

	Kind       ShapeKind
	Difficulty Difficulty
	Format     AnswerFormat

	// Choices is populated only when Format is FormatMultipleChoice.
	// Contains exactly 4 options.
	Choices []string

	// Correct is the text of the right choice when Format is
	// FormatMultipleChoice.
	Correct string
}

// dimensionRange returns the inclusive integer range dimensions are drawn
// from at each tier.
func dimensionRange(d Difficulty) (lo, hi int) {
	switch d {
	case Intermediate:
		return 5, 20
	case Advanced:
		return 10, 50
	default:
		return 2, 10
	}
}
