package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSchemaRendersConstraints(t *testing.T) {
	got := polygonShape.JSONSchema()

	want := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"points": map[string]any{
				"type":        "array",
				"description": "Points",
				"minItems":    3,
				"items": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "number"},
					"minItems": 2,
					"maxItems": 2,
				},
			},
		},
		"required": []string{"points"},
	}
	assert.Equal(t, want, got)
}

func TestInputSchemaBoundsAndEnums(t *testing.T) {
	in := exitShape.InputSchema()
	assert.Equal(t, "object", in.Type)
	assert.Equal(t, []string{"mode"}, in.Required)

	raw, err := json.Marshal(in.Properties)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"mode": {"type":"string","description":"Mode","enum":["NEAREST","SHORTEST_PATH","BALANCED","CUSTOM"]},
		"balanceThreshold": {"type":"number","description":"Threshold","exclusiveMinimum":0},
		"customAssignments": {
			"type":"array",
			"description":"Assignments",
			"items": {
				"type":"object",
				"properties": {
					"agentIds": {"type":"array","description":"Agents","items":{"type":"integer"}},
					"exitId": {"type":"string","description":"Exit"}
				},
				"required": ["agentIds","exitId"]
			}
		}
	}`, string(raw))
}

func TestEmptySchemaHasNoRequired(t *testing.T) {
	in := Object().InputSchema()
	assert.Empty(t, in.Required)
	assert.NotNil(t, in.Properties)
	assert.Empty(t, in.Properties)
}

func TestFieldLookup(t *testing.T) {
	assert.Equal(t, KindInteger, roomShape.Field("level").Kind)
	assert.Nil(t, roomShape.Field("missing"))
	assert.Equal(t, []string{"x", "y", "width", "depth"}, roomShape.Required())
}
