package assist

import "github.com/obinna/prepcli/internal/llm"

// ExplanationSchema defines the JSON schema for answer explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "answer-explanation",
	Description: "Explanation of why the correct answer to an exam question is correct",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "Clear explanation of the correct answer in 3-6 sentences, addressing the student's wrong answer if one is given",
			},
		},
		"required":             []any{"explanation"},
		"additionalProperties": false,
	},
}

// ExampleSchema defines the JSON schema for worked examples.
var ExampleSchema = &llm.Schema{
	Name:        "worked-example",
	Description: "A similar practice problem with a step-by-step solution",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problem": map[string]any{
				"type":        "string",
				"description": "A new problem similar to (but different from) the given question",
			},
			"solution": map[string]any{
				"type":        "string",
				"description": "Step-by-step solution with numbered steps",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The final answer to the new problem",
			},
		},
		"required":             []any{"problem", "solution", "answer"},
		"additionalProperties": false,
	},
}
