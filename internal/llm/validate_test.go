package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func explanationSchema() *Schema {
	return &Schema{
		Name:        "explanation",
		Description: "A worked explanation of an exam question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"explanation": map[string]any{"type": "string"},
				"answer":      map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D"}},
				"confidence":  map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"explanation", "answer"},
		},
	}
}

func TestValidateResponseAcceptsConformingPayload(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"Factor out x.","answer":"B","confidence":90}`)
	if err := validateResponse(explanationSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseAcceptsMissingOptionalField(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"Factor out x.","answer":"B"}`)
	if err := validateResponse(explanationSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseRejectsMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"Factor out x."}`)
	err := validateResponse(explanationSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseRejectsWrongType(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"Factor out x.","answer":"B","confidence":"high"}`)
	err := validateResponse(explanationSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseRejectsOutOfRangeEnum(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"Factor out x.","answer":"E"}`)
	err := validateResponse(explanationSchema(), raw)
	if err == nil {
		t.Fatal("expected error for enum value outside the option set")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(explanationSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseRejectsEmptyPayload(t *testing.T) {
	if err := validateResponse(explanationSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponseNilSchemaSkipsValidation(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponseNestedDefinitions(t *testing.T) {
	schema := &Schema{
		Name:        "worked-example",
		Description: "A worked example with stepwise solution",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"problem": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"statement": map[string]any{"type": "string"},
					},
					"required": []any{"statement"},
				},
				"steps": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"problem", "steps"},
		},
	}

	valid := json.RawMessage(`{"problem":{"statement":"Solve 2x+3=11."},"steps":["Subtract 3","Divide by 2"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"problem":{"statement":"Solve 2x+3=11."},"steps":[4,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
