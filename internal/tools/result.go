package tools

import "github.com/lydakis/bulcmcp/internal/schema"

func resultTools() []Tool {
	g := GroupResult
	return []Tool{
		nonDestructive(g, "bulc_open_result_viewer",
			desc("Open the FDS result viewer window.",
				"Loads simulation results from the specified SMV file or last simulation."),
			schema.Object(
				schema.Str("smvPath", "Path to .smv file. Default: auto-detect from last simulation"),
				schema.Bool("loadGeometry", "Load 3D geometry (OBJ file). Default: true"),
			)),
		readOnly(g, "bulc_list_result_datasets",
			desc("List available datasets in the loaded FDS results.",
				"Returns slices, smoke3d volumes, Plot3D, devices, and other data types."),
			schema.Object(
				schema.Str("type", "Filter by data type: 'slice', 'smoke3d', 'plot3d', 'device', 'all'. Default: all").
					Enum("slice", "smoke3d", "plot3d", "device", "all"),
			)),
		readOnly(g, "bulc_get_point_data",
			desc("Extract time-series data at a specific point in the simulation domain.",
				"Useful for getting temperature, visibility, or species concentration at a location."),
			schema.Object(
				schema.Num("x", "X coordinate in meters").Req(),
				schema.Num("y", "Y coordinate in meters").Req(),
				schema.Num("z", "Z coordinate in meters").Req(),
				schema.Str("variable", "Variable to extract: 'temp', 'visibility', 'co', 'co2', 'o2', 'velocity'").Req().
					Enum("temp", "visibility", "co", "co2", "o2", "velocity"),
				schema.Str("dataSource", "Data source: 'plot3d' or 'slice'. Default: plot3d").Enum("plot3d", "slice"),
			)),
		readOnly(g, "bulc_run_aset_analysis",
			desc("Run ASET (Available Safe Egress Time) analysis at a specified exit location.",
				"Evaluates safety criteria: temperature <60C, visibility >5m, CO <1400ppm, CO2 <5%, O2 >15%."),
			schema.Object(
				schema.Num("exitX", "Exit X coordinate in meters").Req(),
				schema.Num("exitY", "Exit Y coordinate in meters").Req(),
				schema.Num("exitZ", "Exit Z coordinate in meters. Default: 1.8 (breathing height)"),
				schema.Obj("criteria", "Custom safety criteria (optional)",
					schema.Num("maxTemperature", "Max safe temperature in Celsius. Default: 60"),
					schema.Num("minVisibility", "Min visibility in meters. Default: 5").Positive(),
					schema.Num("maxCo", "Max CO in ppm. Default: 1400").Positive(),
					schema.Num("maxCo2", "Max CO2 in percent. Default: 5").Positive(),
					schema.Num("minO2", "Min O2 in percent. Default: 15").Positive(),
				),
			)),
		destructive(g, "bulc_generate_report",
			desc("Generate an analysis report from FDS simulation results.",
				"Supports ASET, RSET, and combined safety analysis reports."),
			schema.Object(
				schema.Str("reportType", "Report type: 'aset', 'rset', 'combined'. Default: aset").Enum("aset", "rset", "combined"),
				schema.Str("outputPath", "Output directory for report. Default: same as results"),
				schema.Str("language", "Report language: 'EN', 'KO', 'JP', 'CN'. Default: EN").Enum("EN", "KO", "JP", "CN"),
				schema.Bool("includeGraphs", "Include time-series graphs. Default: true"),
				schema.Bool("includeSlices", "Include slice visualizations. Default: true"),
			)),
	}
}
