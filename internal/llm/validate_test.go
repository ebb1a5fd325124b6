package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func exerciseSchema() *Schema {
	return &Schema{
		Name:        "unit-exercise",
		Description: "A generated grammar exercise",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"instruction": map[string]any{"type": "string"},
				"type":        map[string]any{"type": "string", "enum": []any{"freetext", "mcq", "multiselect"}},
				"items": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"prompt":    map[string]any{"type": "string"},
							"canonical": map[string]any{"type": "string"},
						},
						"required": []any{"prompt", "canonical"},
					},
				},
			},
			"required": []any{"instruction", "type", "items"},
		},
	}
}

func TestValidateResponse_ValidExercise(t *testing.T) {
	raw := json.RawMessage(`{
		"instruction": "Fill in the correct form of the verb.",
		"type": "freetext",
		"items": [{"prompt": "She ___ (go) to work every day.", "canonical": "goes"}]
	}`)
	if err := validateResponse(exerciseSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"instruction": "Fill in the blank.", "type": "freetext"}`)
	err := validateResponse(exerciseSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"instruction": "Pick one.", "type": "essay", "items": []}`)
	err := validateResponse(exerciseSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid exercise type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongItemShape(t *testing.T) {
	raw := json.RawMessage(`{
		"instruction": "Fill in the blank.",
		"type": "freetext",
		"items": [{"prompt": "She ___ to work."}]
	}`)
	err := validateResponse(exerciseSchema(), raw)
	if err == nil {
		t.Fatal("expected error for item missing canonical")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(exerciseSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	err := validateResponse(exerciseSchema(), json.RawMessage(``))
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
