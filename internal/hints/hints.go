// Package hints resolves the help text shown when a learner asks for a
// hint. Lookups are by hint name with a built-in fallback, so a missing
// or partial ontology never leaves a learner without help.
package hints

import "github.com/abhisek/shapewise/internal/problemgen"

// Hint names. The ontology may override any of these; unknown names fall
// back to the caller-supplied default.
const (
	HintUnits         = "units"
	HintIdentify      = "identify"
	HintRectangle     = "area_rectangle"
	HintSquare        = "area_square"
	HintTriangle      = "area_triangle"
	HintCircle        = "area_circle"
	HintEllipse       = "area_ellipse"
	HintParallelogram = "area_parallelogram"
	HintRhombus       = "area_rhombus"
	HintTrapezium     = "area_trapezium"
)

// defaults are the built-in hint texts.
var defaults = map[string]string{
	HintUnits:         "Remember to include units in your answer, e.g. 24 cm².",
	HintIdentify:      "Count the sides and look for right angles and parallel pairs.",
	HintRectangle:     "Area of a rectangle = length × width.",
	HintSquare:        "A square is a rectangle with equal sides: area = side × side.",
	HintTriangle:      "Area of a triangle = ½ × base × height.",
	HintCircle:        "Area of a circle = π × radius². Use the radius, not the diameter.",
	HintEllipse:       "Area of an ellipse = π × a × b, where a and b are the semi-axes.",
	HintParallelogram: "Area of a parallelogram = base × perpendicular height, not the slanted side.",
	HintRhombus:       "Area of a rhombus = ½ × d₁ × d₂, the product of the diagonals.",
	HintTrapezium:     "Area of a trapezium = ½ × (a + b) × height, averaging the parallel sides.",
}

// kindToName maps each question kind to its formula hint.
var kindToName = map[problemgen.ShapeKind]string{
	problemgen.KindIdentify:      HintIdentify,
	problemgen.KindRectangle:     HintRectangle,
	problemgen.KindSquare:        HintSquare,
	problemgen.KindTriangle:      HintTriangle,
	problemgen.KindCircle:        HintCircle,
	problemgen.KindEllipse:       HintEllipse,
	problemgen.KindParallelogram: HintParallelogram,
	problemgen.KindRhombus:       HintRhombus,
	problemgen.KindTrapezium:     HintTrapezium,
}

// NameForKind returns the hint name for a question kind. Unknown kinds get
// the generic units hint.
func NameForKind(kind problemgen.ShapeKind) string {
	if name, ok := kindToName[kind]; ok {
		return name
	}
	return HintUnits
}

// Default returns the built-in text for a hint name, empty if none.
func Default(name string) string {
	return defaults[name]
}

// Provider resolves hint text by name.
type Provider interface {
	// HintText returns the hint for name, or fallback when the provider
	// has nothing better.
	HintText(name, fallback string) string
}

// Static serves only the built-in hints.
type Static struct{}

func (Static) HintText(name, fallback string) string {
	if text := defaults[name]; text != "" {
		return text
	}
	return fallback
}

// ForQuestion resolves the formula hint for a question via the provider.
func ForQuestion(p Provider, q problemgen.Question) string {
	name := NameForKind(q.Kind)
	return p.HintText(name, Default(name))
}
