package bulkops

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FilterJSONSchema returns a JSON-Schema (draft 2020-12 subset) describing
// the filter document accepted by the CLI and batch tooling. Shape validation
// happens here; value validation (ranges, ordering) happens in Compile.
func FilterJSONSchema() map[string]any {
	rangeProp := func(valueType string) map[string]any {
		return map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"min": map[string]any{"type": valueType},
				"max": map[string]any{"type": valueType},
			},
		}
	}
	stringSet := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"dateRange": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"start": map[string]any{"type": "string", "format": "date-time"},
					"end":   map[string]any{"type": "string", "format": "date-time"},
				},
			},
			"amountRange":     rangeProp("number"),
			"confidenceScore": rangeProp("number"),
			"categories":      stringSet,
			"merchants":       stringSet,
			"hasSummary":      map[string]any{"type": "boolean"},
			"searchQuery":     map[string]any{"type": "string"},
		},
	}
}

// ParseFilterJSON validates raw filter JSON against FilterJSONSchema and
// decodes it. Returns the decoded filter so callers go straight to Compile.
func ParseFilterJSON(data []byte) (Filter, error) {
	var f Filter
	b, err := json.Marshal(FilterJSONSchema())
	if err != nil {
		return f, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("filter.json", bytes.NewReader(b)); err != nil {
		return f, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("filter.json")
	if err != nil {
		return f, fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return f, fmt.Errorf("unmarshal filter: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return f, fmt.Errorf("filter does not match schema: %w", err)
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("decode filter: %w", err)
	}
	return f, nil
}
