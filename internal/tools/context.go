package tools

import "github.com/lydakis/bulcmcp/internal/schema"

func contextTools() []Tool {
	g := GroupContext
	return []Tool{
		readOnly(g, "bulc_get_spatial_context",
			desc("Get the current spatial layout of the project including all rooms, walls, levels, and their exact coordinates.",
				"IMPORTANT: Call this first when you need to place elements relative to existing objects (e.g., 'next to the living room', 'above the kitchen').",
				"Returns bounds, room positions, wall positions, and level information.",
				"Use this to calculate coordinates before calling create functions."),
			schema.Object(
				schema.Int("level", "Filter by floor level index. 0 = ground floor. Omit to get all levels."),
			)),
		readOnly(g, "bulc_get_home_info",
			"Get general information about the current project including file path, modification status, level count, room count, wall count, and furniture count.",
			schema.Object()),
		readOnly(g, "bulc_list_levels",
			"Get all floor levels with their names, elevations (height from ground), and floor heights (ceiling height).",
			schema.Object()),
		destructive(g, "bulc_create_level",
			"Create a new floor level. Elevation is the height from ground (Z=0) to the floor surface in centimeters.",
			schema.Object(
				schema.Str("name", "Level name (e.g., '2층', 'Second Floor', '지하')").Req(),
				schema.Num("elevation", "Floor elevation in cm from ground. If omitted, placed above highest existing level. Use negative for basement."),
				schema.Num("floorHeight", "Floor-to-ceiling height in cm. Default: 280").Positive(),
			)),
		nonDestructive(g, "bulc_set_current_level",
			"Set which floor level is currently active for editing. New rooms/walls will be created on this level by default.",
			schema.Object(
				schema.Int("level", "Level index to set as current (0 = ground floor, 1 = first floor, etc.)").Req().Min(0),
			)),
		destructive(g, "bulc_undo",
			"Undo the last operation. Returns information about what was undone.",
			schema.Object()),
		destructive(g, "bulc_redo",
			"Redo the last undone operation. Returns information about what was redone.",
			schema.Object()),
		destructive(g, "bulc_save",
			"Save the current project to file.",
			schema.Object(
				schema.Str("path", "File path to save to. If omitted, saves to current file (overwrites)."),
			)),
	}
}
