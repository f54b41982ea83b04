package tools

import (
	"strings"
	"testing"

	"github.com/lydakis/bulcmcp/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogInvariants(t *testing.T) {
	c := Default()
	require.Equal(t, 75, c.Len())

	seen := map[string]bool{}
	actions := map[string]bool{}
	for _, tool := range c.All() {
		assert.True(t, strings.HasPrefix(tool.Name, Prefix), tool.Name)
		assert.False(t, seen[tool.Name], "duplicate %s", tool.Name)
		seen[tool.Name] = true

		assert.Equal(t, tool.Name, Prefix+tool.Action())
		assert.False(t, actions[tool.Action()], "duplicate action %s", tool.Action())
		actions[tool.Action()] = true

		assert.NotEmpty(t, tool.Description, tool.Name)
		assert.NotNil(t, tool.Input, tool.Name)
		assert.False(t, tool.ReadOnly && tool.Destructive, "%s is both read-only and destructive", tool.Name)
	}
}

func TestDefaultCatalogGroups(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{
		GroupContext, GroupRoom, GroupWall, GroupFurniture, GroupFDSData,
		GroupMesh, GroupSimulation, GroupFDSRun, GroupResult, GroupEvac,
	}, c.Groups())

	sizes := map[string]int{}
	for _, g := range c.Groups() {
		sizes[g] = len(c.Group(g))
	}
	assert.Equal(t, map[string]int{
		GroupContext: 8, GroupRoom: 5, GroupWall: 5, GroupFurniture: 5, GroupFDSData: 7,
		GroupMesh: 5, GroupSimulation: 4, GroupFDSRun: 6, GroupResult: 5, GroupEvac: 25,
	}, sizes)
}

func TestDefaultIsBuiltOnce(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestLookup(t *testing.T) {
	c := Default()

	tool, ok := c.Lookup("bulc_create_room")
	require.True(t, ok)
	assert.Equal(t, "create_room", tool.Action())
	assert.Equal(t, GroupRoom, tool.Group)
	assert.Equal(t, []string{"x", "y", "width", "depth"}, tool.Input.Required())

	_, ok = c.Lookup("create_room")
	assert.False(t, ok)
	_, ok = c.Lookup("bulc_create")
	assert.False(t, ok)
}

func TestAnnotations(t *testing.T) {
	c := Default()
	cases := []struct {
		name        string
		readOnly    bool
		destructive bool
	}{
		{"bulc_get_spatial_context", true, false},
		{"bulc_set_current_level", false, false},
		{"bulc_undo", false, true},
		{"bulc_open_result_viewer", false, false},
		{"bulc_load_evac_result", false, false},
		{"bulc_run_aset_analysis", true, false},
		{"bulc_stop_evac", false, true},
	}
	for _, tc := range cases {
		tool, ok := c.Lookup(tc.name)
		require.True(t, ok, tc.name)
		assert.Equal(t, tc.readOnly, tool.ReadOnly, tc.name)
		assert.Equal(t, tc.destructive, tool.Destructive, tc.name)
	}
}

func TestMCPTool(t *testing.T) {
	tool, ok := Default().Lookup("bulc_set_exit_assignment")
	require.True(t, ok)

	m := tool.MCPTool()
	assert.Equal(t, "bulc_set_exit_assignment", m.Name)
	assert.Equal(t, tool.Description, m.Description)
	assert.Equal(t, "object", m.InputSchema.Type)
	assert.Equal(t, []string{"mode"}, m.InputSchema.Required)
	assert.Contains(t, m.InputSchema.Properties, "customAssignments")
	require.NotNil(t, m.Annotations.ReadOnlyHint)
	require.NotNil(t, m.Annotations.DestructiveHint)
	assert.False(t, *m.Annotations.ReadOnlyHint)
	assert.True(t, *m.Annotations.DestructiveHint)
}

func TestNewRejectsBadTables(t *testing.T) {
	in := schema.Object()
	cases := map[string][]Tool{
		"missing prefix": {{Name: "create_room", Input: in}},
		"bare prefix":    {{Name: Prefix, Input: in}},
		"duplicate":      {{Name: "bulc_a", Input: in}, {Name: "bulc_a", Input: in}},
		"nil schema":     {{Name: "bulc_a"}},
	}
	for name, group := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(group)
			require.Error(t, err)
		})
	}
}

func TestNewDuplicateAcrossGroups(t *testing.T) {
	in := schema.Object()
	_, err := New(
		[]Tool{{Name: "bulc_room", Group: "a", Input: in}},
		[]Tool{{Name: "bulc_room", Group: "b", Input: in}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestRoomAndExitAssignmentScenarios(t *testing.T) {
	c := Default()
	room, _ := c.Lookup("bulc_create_room")
	exits, _ := c.Lookup("bulc_set_exit_assignment")

	got, err := schema.Validate(room.Input, map[string]any{"x": 0.0, "y": 0.0, "width": 500.0, "depth": 400.0})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": 0.0, "y": 0.0, "width": 500.0, "depth": 400.0}, got)

	_, err = schema.Validate(room.Input, map[string]any{"x": 0.0, "y": 0.0, "width": -10.0, "depth": 400.0})
	require.Error(t, err)

	_, err = schema.Validate(exits.Input, map[string]any{"mode": "BALANCED", "balanceThreshold": 0.2})
	require.NoError(t, err)

	_, err = schema.Validate(exits.Input, map[string]any{"mode": "UNKNOWN_MODE"})
	require.Error(t, err)
}

func TestPolygonNeedsThreePairs(t *testing.T) {
	tool, _ := Default().Lookup("bulc_create_room_polygon")

	_, err := schema.Validate(tool.Input, map[string]any{"points": []any{[]any{0.0, 0.0}, []any{1.0, 0.0}}})
	require.Error(t, err)

	got, err := schema.Validate(tool.Input, map[string]any{
		"points": []any{[]any{0.0, 0.0}, []any{500.0, 0.0}, []any{500.0, 400.0}},
		"level":  1.0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got["level"])
}

func TestOpenEvacViewerRanges(t *testing.T) {
	tool, _ := Default().Lookup("bulc_open_evac_viewer")

	_, err := schema.Validate(tool.Input, map[string]any{"playbackSpeed": 0.25, "agentScale": 5.0})
	require.NoError(t, err)
	_, err = schema.Validate(tool.Input, map[string]any{"playbackSpeed": 16.0})
	require.Error(t, err)
	_, err = schema.Validate(tool.Input, map[string]any{"agentScale": 0.1})
	require.Error(t, err)
}
