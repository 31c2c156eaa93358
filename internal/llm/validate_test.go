package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func hintTestSchema() *Schema {
	return &Schema{
		Name:        "tailored-hint-test",
		Description: "A short hint for a stuck learner",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hint": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
			},
			"required":             []any{"hint"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"hint":"Try splitting the shape into rectangles."}`)
	if err := validateResponse(hintTestSchema(), raw); err != nil {
		t.Fatalf("valid response rejected: %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "not json"},
		{"missing field", `{}`},
		{"wrong type", `{"hint":42}`},
		{"extra field", `{"hint":"x","extra":true}`},
	}
	for _, tt := range tests {
		err := validateResponse(hintTestSchema(), json.RawMessage(tt.raw))
		var inv *ErrInvalidResponse
		if !errors.As(err, &inv) {
			t.Errorf("%s: err = %v, want ErrInvalidResponse", tt.name, err)
		}
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage("anything")); err != nil {
		t.Fatalf("nil schema should skip validation: %v", err)
	}
}

func TestSchemaCompileCached(t *testing.T) {
	s := hintTestSchema()
	raw := json.RawMessage(`{"hint":"x"}`)
	for i := 0; i < 3; i++ {
		if err := validateResponse(s, raw); err != nil {
			t.Fatalf("round %d: %v", i, err)
		}
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Error("compiled schema not cached")
	}
}
