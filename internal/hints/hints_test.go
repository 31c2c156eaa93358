package hints

import (
	"strings"
	"testing"

	"github.com/abhisek/shapewise/internal/problemgen"
)

func TestStaticDefaults(t *testing.T) {
	var p Static
	got := p.HintText(HintTriangle, "fallback")
	if !strings.Contains(got, "base") {
		t.Errorf("triangle hint = %q", got)
	}
	if got := p.HintText("no_such_hint", "fallback"); got != "fallback" {
		t.Errorf("unknown name = %q, want fallback", got)
	}
}

func TestNameForKindCoversAllKinds(t *testing.T) {
	kinds := []problemgen.ShapeKind{
		problemgen.KindIdentify, problemgen.KindRectangle, problemgen.KindSquare,
		problemgen.KindTriangle, problemgen.KindCircle, problemgen.KindEllipse,
		problemgen.KindParallelogram, problemgen.KindRhombus, problemgen.KindTrapezium,
	}
	for _, k := range kinds {
		name := NameForKind(k)
		if Default(name) == "" {
			t.Errorf("kind %s resolves to %q with no default text", k, name)
		}
	}
}

func TestForQuestion(t *testing.T) {
	q := problemgen.Question{Kind: problemgen.KindCircle}
	got := ForQuestion(Static{}, q)
	if !strings.Contains(got, "radius") {
		t.Errorf("circle hint = %q", got)
	}
}

const testOntology = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
    <rdf:Description rdf:about="http://shapewise.dev/hints#area_triangle">
        <rdfs:comment>Half of base times height, and mind the units.</rdfs:comment>
    </rdf:Description>
    <owl:NamedIndividual rdf:about="http://shapewise.dev/hints#units">
        <rdfs:comment>Areas always need a square unit.</rdfs:comment>
    </owl:NamedIndividual>
    <rdf:Description rdf:about="http://shapewise.dev/hints#empty">
        <rdfs:comment>   </rdfs:comment>
    </rdf:Description>
</rdf:RDF>`

func TestLoadOntology(t *testing.T) {
	o, err := LoadOntology(strings.NewReader(testOntology))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if o.Len() != 2 {
		t.Errorf("len = %d, want 2", o.Len())
	}

	if got := o.HintText(HintTriangle, ""); got != "Half of base times height, and mind the units." {
		t.Errorf("overridden triangle hint = %q", got)
	}
	if got := o.HintText(HintUnits, ""); got != "Areas always need a square unit." {
		t.Errorf("named-individual hint = %q", got)
	}

	// Names the file omits fall back to the built-ins, then the caller.
	if got := o.HintText(HintCircle, ""); !strings.Contains(got, "radius") {
		t.Errorf("missing name did not use built-in: %q", got)
	}
	if got := o.HintText("no_such_hint", "caller fallback"); got != "caller fallback" {
		t.Errorf("unknown name = %q", got)
	}
}

func TestLoadOntologyRejectsGarbage(t *testing.T) {
	if _, err := LoadOntology(strings.NewReader("not xml at all")); err == nil {
		t.Fatal("garbage accepted")
	}
}
