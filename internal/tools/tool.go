// Package tools holds the static catalog of BULC tools: names, help text,
// input shapes and MCP annotations.
package tools

import (
	"strings"

	"github.com/lydakis/bulcmcp/internal/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// Prefix namespaces every tool name.
const Prefix = "bulc_"

// Tool groups, in catalog order.
const (
	GroupContext    = "context"
	GroupRoom       = "room"
	GroupWall       = "wall"
	GroupFurniture  = "furniture"
	GroupFDSData    = "fds-data"
	GroupMesh       = "mesh"
	GroupSimulation = "simulation"
	GroupFDSRun     = "fds-run"
	GroupResult     = "result"
	GroupEvac       = "evac"
)

// Tool describes one operation exposed to the agent.
type Tool struct {
	Name        string
	Description string
	Group       string
	Input       *schema.Schema

	// ReadOnly and Destructive are advisory hints for the MCP client.
	ReadOnly    bool
	Destructive bool
}

// Action is the remote command name: the tool name without its prefix.
func (t Tool) Action() string {
	return strings.TrimPrefix(t.Name, Prefix)
}

// MCPTool renders the descriptor for MCP tool listing.
func (t Tool) MCPTool() mcp.Tool {
	return mcp.Tool{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: t.Input.InputSchema(),
		Annotations: mcp.ToolAnnotation{
			ReadOnlyHint:    boolPtr(t.ReadOnly),
			DestructiveHint: boolPtr(t.Destructive),
		},
	}
}

func boolPtr(v bool) *bool {
	return &v
}

// readOnly declares a query that never changes BULC state.
func readOnly(group, name, description string, in *schema.Schema) Tool {
	return Tool{Name: name, Description: description, Group: group, Input: in, ReadOnly: true}
}

// nonDestructive declares a call that changes UI or session state but
// never edits the project.
func nonDestructive(group, name, description string, in *schema.Schema) Tool {
	return Tool{Name: name, Description: description, Group: group, Input: in}
}

// destructive declares a call that edits the project or its outputs.
func destructive(group, name, description string, in *schema.Schema) Tool {
	return Tool{Name: name, Description: description, Group: group, Input: in, Destructive: true}
}

// desc joins help sentences with single spaces.
func desc(parts ...string) string {
	return strings.Join(parts, " ")
}
