package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsKeyOrderIndependent(t *testing.T) {
	a := Generate(map[string]any{"x": 1, "y": "two", "z": []any{1, 2}})
	b := Generate(map[string]any{"z": []any{1, 2}, "y": "two", "x": 1})

	assert.Equal(t, a, b)
}

func TestGenerateDistinguishesValues(t *testing.T) {
	a := Generate(map[string]any{"x": 1})
	b := Generate(map[string]any{"x": 2})

	assert.NotEqual(t, a, b)
}

func TestGenerateFromJSON(t *testing.T) {
	a, err := GenerateFromJSON([]byte(`{"x": 1, "y": {"b": 2, "a": 1}}`))
	require.NoError(t, err)
	b, err := GenerateFromJSON([]byte(`{"y": {"a": 1, "b": 2}, "x": 1}`))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateFromJSONInvalid(t *testing.T) {
	_, err := GenerateFromJSON([]byte(`not json`))
	assert.Error(t, err)
}
