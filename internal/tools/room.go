package tools

import "github.com/lydakis/bulcmcp/internal/schema"

func roomTools() []Tool {
	g := GroupRoom
	return []Tool{
		destructive(g, "bulc_create_room",
			desc("Create a new rectangular room at the specified position.",
				"All coordinates are in centimeters (cm).",
				"Use bulc_get_spatial_context first if you need to position relative to existing rooms.",
				"Example: To create a 5m x 4m room, use width=500, depth=400."),
			schema.Object(
				schema.Num("x", "X coordinate of bottom-left corner in centimeters").Req(),
				schema.Num("y", "Y coordinate of bottom-left corner in centimeters").Req(),
				schema.Num("width", "Room width in centimeters (X direction). 1m = 100cm").Req().Positive(),
				schema.Num("depth", "Room depth in centimeters (Y direction). 1m = 100cm").Req().Positive(),
				schema.Str("name", "Room name for display (e.g., 'Living Room', '거실')"),
				schema.Int("level", "Floor level index. 0 = ground floor, 1 = first floor. Default: current level"),
			)),
		destructive(g, "bulc_create_room_polygon",
			desc("Create a room with a custom polygon shape defined by an array of points.",
				"Use this for non-rectangular rooms like L-shaped rooms.",
				"All coordinates are in centimeters."),
			schema.Object(
				schema.Arr("points", desc("Array of [x, y] coordinate pairs defining the room polygon in centimeters.",
					"Minimum 3 points required. Points should be in order (clockwise or counter-clockwise)."),
					schema.Pair()).Req().MinLen(3),
				schema.Str("name", "Room name for display"),
				schema.Int("level", "Floor level index. Default: current level"),
			)),
		readOnly(g, "bulc_list_rooms",
			desc("Get a list of all rooms with their IDs, names, positions, and dimensions.",
				"Use the returned IDs for modify/delete operations."),
			schema.Object(
				schema.Int("level", "Filter by floor level index. Omit to list all rooms."),
			)),
		destructive(g, "bulc_modify_room",
			desc("Modify properties of an existing room. Only specified properties will be changed.",
				"Get room IDs from bulc_list_rooms first."),
			schema.Object(
				schema.Str("id", "Room ID to modify (from bulc_list_rooms)").Req(),
				schema.Str("name", "New room name"),
				schema.Num("x", "New X coordinate of bottom-left corner (cm)"),
				schema.Num("y", "New Y coordinate of bottom-left corner (cm)"),
				schema.Num("width", "New width (cm)").Positive(),
				schema.Num("depth", "New depth (cm)").Positive(),
			)),
		destructive(g, "bulc_delete_room",
			"Delete a room by its ID. Get room IDs from bulc_list_rooms.",
			schema.Object(
				schema.Str("id", "Room ID to delete").Req(),
			)),
	}
}
