package tools

import "github.com/lydakis/bulcmcp/internal/schema"

func furnitureTools() []Tool {
	g := GroupFurniture
	return []Tool{
		readOnly(g, "bulc_list_furniture_catalog",
			desc("Get a list of available furniture items from the catalog.",
				"Use category filter to narrow down results.",
				"Returns catalog IDs needed for bulc_place_furniture."),
			schema.Object(
				schema.Str("category", "Filter by category (e.g., 'Seats', 'Tables', 'Beds', 'Doors', 'Windows', 'Lights')"),
				schema.Str("search", "Search by name (partial match)"),
				schema.Int("limit", "Maximum number of results to return. Default: 20").Positive(),
			)),
		destructive(g, "bulc_place_furniture",
			desc("Place a furniture item at the specified position.",
				"Get catalog IDs from bulc_list_furniture_catalog first.",
				"All coordinates are in centimeters."),
			schema.Object(
				schema.Str("catalogId", "Catalog ID from bulc_list_furniture_catalog").Req(),
				schema.Num("x", "X coordinate in centimeters").Req(),
				schema.Num("y", "Y coordinate in centimeters").Req(),
				schema.Num("elevation", "Height from floor in centimeters. Default: 0"),
				schema.Num("angle", "Rotation angle in degrees (0-360). Default: 0"),
				schema.Num("width", "Custom width in centimeters (optional, overrides catalog)").Positive(),
				schema.Num("depth", "Custom depth in centimeters (optional, overrides catalog)").Positive(),
				schema.Num("height", "Custom height in centimeters (optional, overrides catalog)").Positive(),
				schema.Str("name", "Custom name for display"),
				schema.Int("level", "Floor level index. Default: current level"),
			)),
		readOnly(g, "bulc_list_furniture",
			desc("Get a list of all placed furniture with their IDs, positions, and properties.",
				"Use the returned IDs for modify/delete operations."),
			schema.Object(
				schema.Int("level", "Filter by floor level index. Omit to list all."),
				schema.Str("room", "Filter by room name or ID"),
				schema.Str("category", "Filter by furniture category"),
			)),
		destructive(g, "bulc_modify_furniture",
			desc("Modify properties of an existing furniture item.",
				"Only specified properties will be changed.",
				"Get furniture IDs from bulc_list_furniture."),
			schema.Object(
				schema.Str("id", "Furniture ID to modify (from bulc_list_furniture)").Req(),
				schema.Num("x", "New X coordinate (cm)"),
				schema.Num("y", "New Y coordinate (cm)"),
				schema.Num("elevation", "New elevation from floor (cm)"),
				schema.Num("angle", "New rotation angle (degrees)"),
				schema.Num("width", "New width (cm)").Positive(),
				schema.Num("depth", "New depth (cm)").Positive(),
				schema.Num("height", "New height (cm)").Positive(),
				schema.Str("name", "New display name"),
				schema.Bool("visible", "Visibility state"),
			)),
		destructive(g, "bulc_delete_furniture",
			"Delete a furniture item by its ID. Get furniture IDs from bulc_list_furniture.",
			schema.Object(
				schema.Str("id", "Furniture ID to delete").Req(),
			)),
	}
}
