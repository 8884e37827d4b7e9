//go:build e2e

package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPJSONStep is one request of a scripted scenario
type HTTPJSONStep struct {
	Name           string
	Method         string
	URL            string
	Key            string // authentication key, empty for anonymous calls
	Body           any
	ExpectedStatus int
	Validator      func(*testing.T, map[string]any) // Optional response validator
}

// ExecuteHTTPJSONStep runs a single step and returns the decoded JSON object
func ExecuteHTTPJSONStep(t *testing.T, step HTTPJSONStep, env *TestEnvironment) map[string]any {
	t.Helper()
	t.Logf("step: %s", step.Name)

	status, body := doJSON(t, env.Client, step.Method, env.BaseURL+step.URL, step.Key, step.Body)
	assert.Equal(t, step.ExpectedStatus, status, step.Name)

	if step.Validator != nil {
		step.Validator(t, body)
	}
	return body
}

// ExecuteHTTPJSONSteps runs steps in order
func ExecuteHTTPJSONSteps(t *testing.T, steps []HTTPJSONStep, env *TestEnvironment) []map[string]any {
	t.Helper()
	results := make([]map[string]any, 0, len(steps))
	for _, step := range steps {
		results = append(results, ExecuteHTTPJSONStep(t, step, env))
	}
	return results
}

// MessageValidator checks the envelope message
func MessageValidator(expectedMessage string) func(*testing.T, map[string]any) {
	return func(t *testing.T, respData map[string]any) {
		t.Helper()
		message, exists := respData["message"]
		require.True(t, exists, "Expected message field to exist in response")
		assert.Equal(t, expectedMessage, message)
	}
}

// FieldsValidator checks that every field is present and not empty
func FieldsValidator(fields ...string) func(*testing.T, map[string]any) {
	return func(t *testing.T, respData map[string]any) {
		t.Helper()
		for _, field := range fields {
			value, exists := respData[field]
			require.True(t, exists, "Expected field %s to exist in response", field)
			require.NotEmpty(t, value, "Expected field %s to not be empty", field)
		}
	}
}

// ItemsOf returns the array stored under key
func ItemsOf(t *testing.T, respData map[string]any, key string) []any {
	t.Helper()
	items, ok := respData[key].([]any)
	require.True(t, ok, "Expected %s to be an array, got %T", key, respData[key])
	return items
}

// ObjectOf returns the object stored under key
func ObjectOf(t *testing.T, respData map[string]any, key string) map[string]any {
	t.Helper()
	obj, ok := respData[key].(map[string]any)
	require.True(t, ok, "Expected %s to be an object, got %T", key, respData[key])
	return obj
}
