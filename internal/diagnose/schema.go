package diagnose

import "github.com/abhisek/maturiz/internal/llm"

// CandidateSchema defines the JSON schema for diagnosis responses.
var CandidateSchema = &llm.Schema{
	Name:        "maturity-diagnosis",
	Description: "Classification of free-text evidence onto one maturity level of an area's rubric",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"level": map[string]any{
				"type":        "integer",
				"description": "The rank of the matching maturity level. Must be one of the ranks listed in the prompt.",
			},
			"justification": map[string]any{
				"type":        "string",
				"description": "Two or three sentences citing the evidence that places the organization at this level",
			},
		},
		"required":             []any{"level", "justification"},
		"additionalProperties": false,
	},
}
