package tools

import "github.com/lydakis/bulcmcp/internal/schema"

func meshTools() []Tool {
	g := GroupMesh
	return []Tool{
		readOnly(g, "bulc_list_meshes",
			desc("Get a list of all FDS computational meshes.",
				"Returns mesh IDs, dimensions, cell sizes, and bounding coordinates."),
			schema.Object()),
		destructive(g, "bulc_create_mesh",
			desc("Create a new FDS computational mesh with specified dimensions and cell count.",
				"The mesh defines the computational domain for fire simulation."),
			schema.Object(
				schema.Str("meshId", "Mesh identifier. Default: MESH_1, MESH_2, etc."),
				schema.Num("xMin", "Minimum X coordinate in meters").Req(),
				schema.Num("xMax", "Maximum X coordinate in meters").Req(),
				schema.Num("yMin", "Minimum Y coordinate in meters").Req(),
				schema.Num("yMax", "Maximum Y coordinate in meters").Req(),
				schema.Num("zMin", "Minimum Z coordinate in meters. Default: 0"),
				schema.Num("zMax", "Maximum Z coordinate in meters").Req(),
				schema.Int("iCells", "Number of cells in X direction").Positive(),
				schema.Int("jCells", "Number of cells in Y direction").Positive(),
				schema.Int("kCells", "Number of cells in Z direction").Positive(),
				schema.Num("cellSize", desc("Uniform cell size in meters (alternative to specifying cell counts).",
					"If provided, cell counts will be calculated automatically.")).Positive(),
			)),
		destructive(g, "bulc_auto_mesh",
			desc("Automatically generate FDS mesh based on building geometry.",
				"Creates optimized mesh covering all rooms and walls with specified resolution.",
				"Can create single mesh or multiple meshes for multi-level buildings."),
			schema.Object(
				schema.Num("cellSize", "Target cell size in meters. Default: 0.2 (20cm)").Positive(),
				schema.Num("padding", "Padding around geometry in meters. Default: 0.5"),
				schema.Num("heightAboveRoof", "Additional height above highest point in meters. Default: 1.0"),
				schema.Bool("multiMesh", "Create separate meshes per floor level. Default: false (single mesh)"),
				schema.Int("maxCells", "Maximum total cell count. Auto-adjusts cell size if exceeded. Default: 1000000").Positive(),
			)),
		destructive(g, "bulc_modify_mesh",
			"Modify an existing FDS mesh. Change dimensions, cell counts, or other properties.",
			schema.Object(
				schema.Str("meshId", "Mesh ID to modify").Req(),
				schema.Num("xMin", "New minimum X coordinate in meters"),
				schema.Num("xMax", "New maximum X coordinate in meters"),
				schema.Num("yMin", "New minimum Y coordinate in meters"),
				schema.Num("yMax", "New maximum Y coordinate in meters"),
				schema.Num("zMin", "New minimum Z coordinate in meters"),
				schema.Num("zMax", "New maximum Z coordinate in meters"),
				schema.Int("iCells", "New number of cells in X direction").Positive(),
				schema.Int("jCells", "New number of cells in Y direction").Positive(),
				schema.Int("kCells", "New number of cells in Z direction").Positive(),
			)),
		destructive(g, "bulc_delete_mesh",
			"Delete an FDS mesh by its ID.",
			schema.Object(
				schema.Str("meshId", "Mesh ID to delete").Req(),
			)),
	}
}
