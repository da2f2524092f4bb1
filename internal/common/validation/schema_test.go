package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactSchema() JSONSchema {
	minLen := 5
	maxLen := 255
	return JSONSchema{
		Type:     "object",
		Required: []string{"email"},
		Properties: map[string]Property{
			"email": {
				Type:      "string",
				Format:    "email",
				MinLength: &minLen,
				MaxLength: &maxLen,
			},
			"name": {
				Type:      "string",
				MaxLength: &maxLen,
			},
		},
		AdditionalProperties: false,
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]interface{}
		valid bool
	}{
		{
			name:  "valid input",
			input: map[string]interface{}{"email": "mario@example.com", "name": "Mario"},
			valid: true,
		},
		{
			name:  "missing required field",
			input: map[string]interface{}{"name": "Mario"},
			valid: false,
		},
		{
			name:  "bad email format",
			input: map[string]interface{}{"email": "not-an-email"},
			valid: false,
		},
		{
			name:  "wrong type",
			input: map[string]interface{}{"email": 42},
			valid: false,
		},
		{
			name:  "extra field rejected",
			input: map[string]interface{}{"email": "mario@example.com", "phone": "123"},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateInput(tt.input, contactSchema())
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.NotEmpty(t, result.Errors)
				assert.NotEmpty(t, result.ErrorString())
			}
		})
	}
}

func TestValidateJSON(t *testing.T) {
	result, err := ValidateJSON([]byte(`{"email":"mario@example.com"}`), contactSchema())
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = ValidateJSON([]byte(`{not json`), contactSchema())
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.ErrorString(), "invalid JSON body")
}
