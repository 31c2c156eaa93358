package hints

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Ontology serves hints loaded from an OWL file in RDF/XML form. Each
// hint is an rdf:Description whose rdf:about fragment is the hint name
// and whose rdfs:comment carries the text:
//
//	<rdf:Description rdf:about="#area_triangle">
//	    <rdfs:comment>Area of a triangle = ½ × base × height.</rdfs:comment>
//	</rdf:Description>
//
// owl:NamedIndividual elements are read the same way, so files exported
// from Protégé load without editing.
type Ontology struct {
	texts map[string]string
}

type rdfDoc struct {
	XMLName      xml.Name      `xml:"RDF"`
	Descriptions []rdfResource `xml:"Description"`
	Individuals  []rdfResource `xml:"NamedIndividual"`
}

type rdfResource struct {
	About    string   `xml:"about,attr"`
	Comments []string `xml:"comment"`
}

// LoadOntology reads an RDF/XML ontology from r.
func LoadOntology(r io.Reader) (*Ontology, error) {
	var doc rdfDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("hints: parse ontology: %w", err)
	}

	texts := make(map[string]string)
	add := func(res rdfResource) {
		name := fragment(res.About)
		if name == "" || len(res.Comments) == 0 {
			return
		}
		text := strings.TrimSpace(res.Comments[0])
		if text != "" {
			texts[name] = text
		}
	}
	for _, res := range doc.Descriptions {
		add(res)
	}
	for _, res := range doc.Individuals {
		add(res)
	}
	return &Ontology{texts: texts}, nil
}

// LoadOntologyFile reads an ontology from disk.
func LoadOntologyFile(path string) (*Ontology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hints: open ontology: %w", err)
	}
	defer f.Close()
	return LoadOntology(f)
}

// fragment extracts the hint name from an rdf:about IRI: the part after
// '#', or after the last '/' when there is no fragment.
func fragment(about string) string {
	if i := strings.LastIndex(about, "#"); i >= 0 {
		return about[i+1:]
	}
	if i := strings.LastIndex(about, "/"); i >= 0 {
		return about[i+1:]
	}
	return about
}

// Len returns the number of hints the ontology defines.
func (o *Ontology) Len() int {
	return len(o.texts)
}

// HintText returns the ontology's text for name. Built-in defaults fill
// the gap for names the file does not define, then the fallback.
func (o *Ontology) HintText(name, fallback string) string {
	if text, ok := o.texts[name]; ok {
		return text
	}
	if text := defaults[name]; text != "" {
		return text
	}
	return fallback
}
