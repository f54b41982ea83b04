package tools

import "github.com/lydakis/bulcmcp/internal/schema"

func wallTools() []Tool {
	g := GroupWall
	return []Tool{
		destructive(g, "bulc_create_wall",
			desc("Create a wall segment between two points.",
				"All coordinates are in centimeters.",
				"For rectangular rooms, consider using bulc_create_walls_rectangle instead."),
			schema.Object(
				schema.Num("xStart", "X coordinate of wall start point (cm)").Req(),
				schema.Num("yStart", "Y coordinate of wall start point (cm)").Req(),
				schema.Num("xEnd", "X coordinate of wall end point (cm)").Req(),
				schema.Num("yEnd", "Y coordinate of wall end point (cm)").Req(),
				schema.Num("thickness", "Wall thickness in centimeters. Default: 10").Positive(),
				schema.Num("height", "Wall height in centimeters. Default: 250").Positive(),
				schema.Int("level", "Floor level index. Default: current level"),
			)),
		destructive(g, "bulc_create_walls_rectangle",
			desc("Create 4 connected walls forming a rectangular enclosure.",
				"This is the recommended way to create walls for rectangular rooms.",
				"All coordinates are in centimeters."),
			schema.Object(
				schema.Num("x", "X coordinate of bottom-left corner (cm)").Req(),
				schema.Num("y", "Y coordinate of bottom-left corner (cm)").Req(),
				schema.Num("width", "Rectangle width in centimeters").Req().Positive(),
				schema.Num("depth", "Rectangle depth in centimeters").Req().Positive(),
				schema.Num("thickness", "Wall thickness in centimeters. Default: 10").Positive(),
				schema.Num("height", "Wall height in centimeters. Default: 250").Positive(),
				schema.Int("level", "Floor level index. Default: current level"),
			)),
		readOnly(g, "bulc_list_walls",
			desc("Get a list of all walls with their IDs, coordinates, thickness, and height.",
				"Use the returned IDs for modify/delete operations."),
			schema.Object(
				schema.Int("level", "Filter by floor level index. Omit to list all."),
			)),
		destructive(g, "bulc_modify_wall",
			desc("Modify properties of an existing wall. Only specified properties will be changed.",
				"Get wall IDs from bulc_list_walls."),
			schema.Object(
				schema.Str("id", "Wall ID to modify (from bulc_list_walls)").Req(),
				schema.Num("xStart", "New start X (cm)"),
				schema.Num("yStart", "New start Y (cm)"),
				schema.Num("xEnd", "New end X (cm)"),
				schema.Num("yEnd", "New end Y (cm)"),
				schema.Num("thickness", "New thickness (cm)").Positive(),
				schema.Num("height", "New height (cm)").Positive(),
			)),
		destructive(g, "bulc_delete_wall",
			"Delete a wall by its ID. Get wall IDs from bulc_list_walls.",
			schema.Object(
				schema.Str("id", "Wall ID to delete").Req(),
			)),
	}
}
