package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_Fences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"bare fence", "```\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"other language tag", "```javascript\n{\"key\": \"value\"}\n```", `{"key": "value"}`},
		{"no fence", `{"key": "value"}`, `{"key": "value"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_SurroundingProse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"preamble before object",
			"Here is the style profile you asked for:\n{\"primary\": \"Techwear\"}",
			`{"primary": "Techwear"}`,
		},
		{
			"preamble before array",
			"The matching keywords:\n[\"minimal\", \"utility\"]",
			`["minimal", "utility"]`,
		},
		{
			"trailing chatter",
			"{\"energy\": \"calm\"}\n\nLet me know if you need anything else!",
			`{"energy": "calm"}`,
		},
		{
			"nested objects",
			"Output:\n{\"outer\": {\"inner\": \"value\"}}",
			`{"outer": {"inner": "value"}}`,
		},
		{
			"escaped quotes",
			"Result: {\"bio\": \"she said \\\"ship it\\\"\"}",
			`{"bio": "she said \"ship it\""}`,
		},
		{
			"braces inside strings",
			`{"template": "Hello {name}!"} trailing`,
			`{"template": "Hello {name}!"}`,
		},
		{
			"array of objects",
			`[{"id": 1}, {"id": 2}] extra`,
			`[{"id": 1}, {"id": 2}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_NoJSON(t *testing.T) {
	// Plain prose passes through trimmed so decode errors show the response.
	assert.Equal(t, "sorry, I can't do that", CleanJSONBlock("  sorry, I can't do that\n"))
	// An unclosed value does too.
	assert.Equal(t, `{"half":`, CleanJSONBlock(`{"half":`))
}
