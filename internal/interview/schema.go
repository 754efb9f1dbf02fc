package interview

import "github.com/abhisek/maturiz/internal/llm"

// StepSchema defines the JSON schema for interview step responses.
// Exactly one of next_question/conclusion must be present, matching
// is_finished; that branch rule is enforced in code after decoding.
var StepSchema = &llm.Schema{
	Name:        "maturity-interview-step",
	Description: "One step of a maturity interview: either the next question to ask, or the final conclusion",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_finished": map[string]any{
				"type":        "boolean",
				"description": "True when enough information has been gathered to conclude",
			},
			"next_question": map[string]any{
				"type":        "string",
				"description": "The next question to ask the user. Present only when is_finished is false.",
			},
			"conclusion": map[string]any{
				"type":        "object",
				"description": "The final assessment. Present only when is_finished is true.",
				"properties": map[string]any{
					"score": map[string]any{
						"type":        "integer",
						"description": "The rank of the matching maturity level. Must be one of the ranks listed in the instructions.",
					},
					"reasoning": map[string]any{
						"type":        "string",
						"description": "Two or three sentences explaining the placement, citing the conversation",
					},
				},
				"required":             []any{"score", "reasoning"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"is_finished"},
		"additionalProperties": false,
	},
}
