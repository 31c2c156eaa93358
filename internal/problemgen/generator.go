package problemgen

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator produces questions deterministically from its random source.
// Seeding two generators identically yields identical question sequences,
// which the tests rely on.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator backed by the given source. Pass rand.NewSource
// with a fixed seed for reproducible runs.
func New(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// mixedUnitChance is how often a numeric question states its dimensions in
// metres instead of centimetres. The answer is still expected in cm².
const mixedUnitChance = 0.3

// dimension draws one side length for the tier, together with the unit it
// is displayed in and its value in cm.
type dimension struct {
	display float64 // as shown in the prompt
	unit    string  // "cm" or "m"
	cm      float64 // converted for area math
}

func (g *Generator) dim(d Difficulty, metres bool) dimension {
	lo, hi := dimensionRange(d)
	n := float64(lo + g.rng.Intn(hi-lo+1))
	if metres {
		return dimension{display: n, unit: "m", cm: n * 100}
	}
	return dimension{display: n, unit: "cm", cm: n}
}

func (g *Generator) useMetres() bool {
	return g.rng.Float64() < mixedUnitChance
}

// concreteKinds is the pool a mixed request draws from. Identify questions
// never appear in mixed runs; they belong to stage one only.
var concreteKinds = []ShapeKind{
	KindRectangle, KindSquare, KindTriangle, KindCircle,
	KindEllipse, KindParallelogram, KindRhombus, KindTrapezium,
}

type shapeFunc func(g *Generator, d Difficulty) Question

var shapeFuncs = map[ShapeKind]shapeFunc{
	KindIdentify:      (*Generator).identify,
	KindRectangle:     (*Generator).rectangle,
	KindSquare:        (*Generator).square,
	KindTriangle:      (*Generator).triangle,
	KindCircle:        (*Generator).circle,
	KindEllipse:       (*Generator).ellipse,
	KindParallelogram: (*Generator).parallelogram,
	KindRhombus:       (*Generator).rhombus,
	KindTrapezium:     (*Generator).trapezium,
}

// Generate produces one question of the given kind and tier. KindMixed
// picks a concrete kind uniformly.
func (g *Generator) Generate(kind ShapeKind, d Difficulty) (Question, error) {
	if !d.Valid() {
		return Question{}, fmt.Errorf("problemgen: unknown difficulty %q", d)
	}
	if kind == KindMixed {
		kind = concreteKinds[g.rng.Intn(len(concreteKinds))]
	}
	fn, ok := shapeFuncs[kind]
	if !ok {
		return Question{}, fmt.Errorf("problemgen: unknown shape kind %q", kind)
	}
	return fn(g, d), nil
}

// GenerateRun produces a full run of n questions for one stage kind.
func (g *Generator) GenerateRun(kind ShapeKind, d Difficulty, n int) ([]Question, error) {
	qs := make([]Question, 0, n)
	for i := 0; i < n; i++ {
		q, err := g.Generate(kind, d)
		if err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}
	return qs, nil
}

func (g *Generator) rectangle(d Difficulty) Question {
	metres := g.useMetres()
	l := g.dim(d, metres)
	w := g.dim(d, metres)
	return Question{
		Prompt: fmt.Sprintf("A rectangle is %g %s long and %g %s wide. What is its area?",
			l.display, l.unit, w.display, w.unit),
		Answer:     l.cm * w.cm,
		Kind:       KindRectangle,
		Difficulty: d,
		Format:     FormatNumeric,
	}
}

func (g *Generator) square(d Difficulty) Question {
	metres := g.useMetres()
	s := g.dim(d, metres)
	return Question{
		Prompt: fmt.Sprintf("A square has sides of %g %s. What is its area?",
			s.display, s.unit),
		Answer:     s.cm * s.cm,
		Kind:       KindSquare,
		Difficulty: d,
		Format:     FormatNumeric,
	}
}

func (g *Generator) triangle(d Difficulty) Question {
	metres := g.useMetres()
	b := g.dim(d, metres)
	h := g.dim(d, metres)
	return Question{
		Prompt: fmt.Sprintf("A triangle has a base of %g %s and a height of %g %s. What is its area?",
			b.display, b.unit, h.display, h.unit),
		Answer:     0.5 * b.cm * h.cm,
		Kind:       KindTriangle,
		Difficulty: d,
		Format:     FormatNumeric,
	}
}

func (g *Generator) circle(d Difficulty) Question {
	metres := g.useMetres()
	r := g.dim(d, metres)
	return Question{
		Prompt: fmt.Sprintf("A circle has a radius of %g %s. What is its area?",
			r.display, r.unit),
		Answer:     math.Pi * r.cm * r.cm,
		Kind:       KindCircle,
		Difficulty: d,
		Format:     FormatNumeric,
	}
}

func (g *Generator) ellipse(d Difficulty) Question {
	metres := g.useMetres()
	a := g.dim(d, metres)
	b := g.dim(d, metres)
	return Question{
		Prompt: fmt.Sprintf("An ellipse has a semi-major axis of %g %s and a semi-minor axis of %g %s. What is its area?",
			a.display, a.unit, b.display, b.unit),
		Answer:     math.Pi * a.cm * b.cm,
		Kind:       KindEllipse,
		Difficulty: d,
		Format:     FormatNumeric,
	}
}

func (g *Generator) parallelogram(d Difficulty) Question {
	metres := g.useMetres()
	b := g.dim(d, metres)
	h := g.dim(d, metres)
	return Question{
		Prompt: fmt.Sprintf("A parallelogram has a base of %g %s and a height of %g %s. What is its area?",
			b.display, b.unit, h.display, h.unit),
		Answer:     b.cm * h.cm,
		Kind:       KindParallelogram,
		Difficulty: d,
		Format:     FormatNumeric,
	}
}

func (g *Generator) rhombus(d Difficulty) Question {
	metres := g.useMetres()
	p := g.dim(d, metres)
	q := g.dim(d, metres)
	return Question{
		Prompt: fmt.Sprintf("A rhombus has diagonals of %g %s and %g %s. What is its area?",
			p.display, p.unit, q.display, q.unit),
		Answer:     0.5 * p.cm * q.cm,
		Kind:       KindRhombus,
		Difficulty: d,
		Format:     FormatNumeric,
	}
}

func (g *Generator) trapezium(d Difficulty) Question {
	metres := g.useMetres()
	a := g.dim(d, metres)
	b := g.dim(d, metres)
	h := g.dim(d, metres)
	return Question{
		Prompt: fmt.Sprintf("A trapezium has parallel sides of %g %s and %g %s, and a height of %g %s. What is its area?",
			a.display, a.unit, b.display, b.unit, h.display, h.unit),
		Answer:     0.5 * (a.cm + b.cm) * h.cm,
		Kind:       KindTrapezium,
		Difficulty: d,
		Format:     FormatNumeric,
	}
}
