// Package stages implements the sequential ten-stage progression.
package stages

import (
	"errors"

	"github.com/abhisek/shapewise/internal/problemgen"
)

// QuestionsPerRun is the fixed length of every stage run.
const QuestionsPerRun = 10

// PassScore is the minimum score (out of 100) that unlocks the next stage.
const PassScore = 60

// ErrOutOfRange is returned for a stage number outside 1..10.
var ErrOutOfRange = errors.New("stages: stage number out of range")

// ErrStageLocked is returned when starting a stage whose predecessor has
// not been passed.
var ErrStageLocked = errors.New("stages: stage locked")

// ErrAlreadyAttempted is returned when starting a stage whose single
// attempt has already been used.
var ErrAlreadyAttempted = errors.New("stages: stage already attempted")

// Definition describes one of the ten stages.
type Definition struct {
	Number int
	Title  string
	Kind   problemgen.ShapeKind

	// DefaultDifficulty is offered preselected at stage start; the
	// learner may pick another tier.
	DefaultDifficulty problemgen.Difficulty

	// Blurb is a one-line description shown on the stage grid.
	Blurb string
}

var definitions = []Definition{
	{1, "Shape basics", problemgen.KindIdentify, problemgen.Beginner, "Name the shapes before you measure them"},
	{2, "Rectangles", problemgen.KindRectangle, problemgen.Beginner, "Area of a rectangle: length times width"},
	{3, "Squares", problemgen.KindSquare, problemgen.Beginner, "A special rectangle: side squared"},
	{4, "Triangles", problemgen.KindTriangle, problemgen.Intermediate, "Half of base times height"},
	{5, "Circles", problemgen.KindCircle, problemgen.Intermediate, "Pi times radius squared"},
	{6, "Ellipses", problemgen.KindEllipse, problemgen.Intermediate, "Pi times both semi-axes"},
	{7, "Parallelograms", problemgen.KindParallelogram, problemgen.Intermediate, "Base times perpendicular height"},
	{8, "Rhombi", problemgen.KindRhombus, problemgen.Advanced, "Half the product of the diagonals"},
	{9, "Trapezia", problemgen.KindTrapezium, problemgen.Advanced, "Average the parallel sides, times height"},
	{10, "Mixed review", problemgen.KindMixed, problemgen.Advanced, "Every shape, in any order"},
}

// Count is the number of stages.
const Count = 10

// Definitions returns all stages in order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// ByNumber returns the definition for stage n.
func ByNumber(n int) (Definition, error) {
	if n < 1 || n > Count {
		return Definition{}, ErrOutOfRange
	}
	return definitions[n-1], nil
}
