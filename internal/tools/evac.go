package tools

import "github.com/lydakis/bulcmcp/internal/schema"

var reportLanguages = []string{"EN", "KO", "JP", "CN"}

func evacTools() []Tool {
	g := GroupEvac
	return []Tool{
		destructive(g, "bulc_set_evac_time",
			desc("Set evacuation simulation time parameters.",
				"Controls total simulation duration and time step resolution."),
			schema.Object(
				schema.Num("simulationTime", "Total simulation time in seconds. Default: 300").Req().Positive(),
				schema.Num("timeStep", "Simulation time step in seconds. Default: 0.1").Positive(),
			)),
		readOnly(g, "bulc_get_evac_settings",
			desc("Get current EVAC simulation settings including model type,",
				"agent parameters, and stair configurations."),
			schema.Object()),
		destructive(g, "bulc_set_evac_model",
			desc("Set the evacuation simulation model type and parameters.",
				"Supports CollisionFreeSpeed, SocialForce, and GeneralizedCentrifugal models."),
			schema.Object(
				schema.Str("model", "Model type: 'CollisionFreeSpeed', 'SocialForce', 'GeneralizedCentrifugal'. Default: CollisionFreeSpeed").
					Enum("CollisionFreeSpeed", "SocialForce", "GeneralizedCentrifugal"),
				schema.Num("simulationTime", "Maximum simulation time in seconds. Default: 300").Positive(),
				schema.Num("timeStep", "Simulation time step in seconds. Default: 0.1").Positive(),
				schema.Num("strengthNeighborRepulsion", "Neighbor repulsion strength (CollisionFreeSpeed). Default: 8.0"),
				schema.Num("rangeNeighborRepulsion", "Neighbor repulsion range in meters (CollisionFreeSpeed). Default: 0.1"),
				schema.Num("bodyForce", "Body force constant (SocialForce). Default: 120000"),
				schema.Num("friction", "Friction coefficient (SocialForce). Default: 240000"),
			)),

		readOnly(g, "bulc_list_evac_stairs",
			"List all configured evacuation stairs for multi-level buildings.",
			schema.Object()),
		destructive(g, "bulc_setup_evac_stair",
			desc("Configure a furniture item as an evacuation stair connection between floors.",
				"Defines entry/exit positions, capacity, and travel speed."),
			schema.Object(
				schema.Str("furnitureId", "Furniture ID to configure as stair").Req(),
				schema.Int("fromFloor", "Source floor index (0=ground floor)").Req().Min(0),
				schema.Int("toFloor", "Destination floor index").Req().Min(0),
				schema.Num("entryX", "Entry point X coordinate in cm"),
				schema.Num("entryY", "Entry point Y coordinate in cm"),
				schema.Num("exitX", "Exit point X coordinate in cm"),
				schema.Num("exitY", "Exit point Y coordinate in cm"),
				schema.Num("width", "Stair width in meters. Default: 1.2").Positive(),
				schema.Int("capacity", "Max people on stair at once. Default: 10").Positive(),
				schema.Num("travelSpeed", "Travel speed in m/s. Default: 0.6").Positive(),
			)),
		destructive(g, "bulc_clear_evac_stair",
			"Remove stair configuration from a furniture item.",
			schema.Object(
				schema.Str("furnitureId", "Furniture ID to clear stair config from").Req(),
			)),

		readOnly(g, "bulc_list_evac_agents",
			"List all evacuation agents with their positions and properties.",
			schema.Object(
				schema.Int("level", "Filter by floor level. Omit for all levels."),
				schema.Str("room", "Filter by room name or ID"),
			)),
		destructive(g, "bulc_place_evac_agents",
			desc("Place evacuation agents in rooms or at specific positions.",
				"Can place by count (random distribution) or at exact coordinates."),
			schema.Object(
				schema.Str("room", "Room name or ID to place agents in"),
				schema.Int("level", "Floor level index. Default: current level"),
				schema.Int("count", "Number of agents to place randomly. Required if no positions given.").Positive(),
				schema.Arr("positions", "Specific positions as [[x1,y1], [x2,y2], ...] in cm. Alternative to count.", schema.Pair()),
				schema.Num("agentRadius", "Agent radius in meters. Default: 0.25").Positive(),
				schema.Num("desiredSpeed", "Desired walking speed in m/s. Default: 1.2").Positive(),
				schema.Num("maxSpeed", "Maximum walking speed in m/s. Default: 1.5").Positive(),
				schema.Num("minSpacing", "Minimum spacing between agents in meters. Default: 0.5").Positive(),
			)),
		destructive(g, "bulc_clear_evac_agents",
			"Clear evacuation agents from specified room or all rooms.",
			schema.Object(
				schema.Str("room", "Room name or ID to clear. Omit to clear all."),
				schema.Int("level", "Floor level to clear. Omit to clear all levels."),
			)),
		destructive(g, "bulc_set_agent_properties",
			"Set default properties for evacuation agents (radius, speed, etc.).",
			schema.Object(
				schema.Num("agentRadius", "Default agent radius in meters. Default: 0.25").Positive(),
				schema.Num("desiredSpeed", "Default desired speed in m/s. Default: 1.2").Positive(),
				schema.Num("maxSpeed", "Default max speed in m/s. Default: 1.5").Positive(),
				schema.Num("minSpacing", "Minimum spacing for random placement in meters. Default: 0.5").Positive(),
			)),

		readOnly(g, "bulc_list_evac_exits",
			"List all detected evacuation exits (doors converted to exits).",
			schema.Object(
				schema.Int("level", "Filter by floor level"),
			)),
		readOnly(g, "bulc_validate_evac",
			desc("Validate evacuation setup for errors and warnings.",
				"Checks agents, exits, walkable areas, and stair configurations."),
			schema.Object()),

		destructive(g, "bulc_run_evac",
			desc("Start evacuation simulation using JuPedSim.",
				"Returns immediately; use bulc_get_evac_status to monitor progress."),
			schema.Object(
				schema.Bool("multiLevel", "Use multi-level simulation with stairs. Default: auto-detect"),
			)),
		readOnly(g, "bulc_get_evac_status",
			desc("Get current evacuation simulation status including progress,",
				"evacuated count, and estimated completion time."),
			schema.Object()),
		destructive(g, "bulc_stop_evac",
			"Stop a running evacuation simulation.",
			schema.Object()),

		nonDestructive(g, "bulc_load_evac_result",
			"Load evacuation results from a .evac file for visualization.",
			schema.Object(
				schema.Str("evacPath", "Path to .evac file. Default: auto-detect from last simulation"),
			)),
		readOnly(g, "bulc_get_evac_summary",
			desc("Get evacuation result summary including total time,",
				"per-agent exit times, and statistics."),
			schema.Object()),
		destructive(g, "bulc_generate_rset_report",
			desc("Generate RSET (Required Safe Egress Time) analysis report",
				"from evacuation simulation results."),
			schema.Object(
				schema.Str("outputPath", "Output directory for report. Default: same as results"),
				schema.Str("language", "Report language: 'EN', 'KO', 'JP', 'CN'. Default: EN").Enum(reportLanguages...),
				schema.Bool("includeAgentDetails", "Include per-agent exit times. Default: true"),
			)),
		destructive(g, "bulc_save_evac_result",
			"Save current evacuation results to a .evac file.",
			schema.Object(
				schema.Str("outputPath", "Output path for .evac file. Default: project folder"),
				schema.Str("filename", "Filename without extension. Default: project name"),
			)),

		destructive(g, "bulc_modify_evac_stair",
			desc("Modify an existing evacuation stair configuration.",
				"Update capacity, speed, or position properties."),
			schema.Object(
				schema.Str("furnitureId", "Furniture ID of the stair to modify").Req(),
				schema.Num("entryX", "New entry point X coordinate in cm"),
				schema.Num("entryY", "New entry point Y coordinate in cm"),
				schema.Num("exitX", "New exit point X coordinate in cm"),
				schema.Num("exitY", "New exit point Y coordinate in cm"),
				schema.Num("width", "New stair width in meters").Positive(),
				schema.Int("capacity", "New maximum capacity").Positive(),
				schema.Num("travelSpeed", "New travel speed in m/s").Positive(),
			)),
		destructive(g, "bulc_set_exit_assignment",
			desc("Set the exit assignment strategy for evacuation agents.",
				"Determines how agents choose which exit to use."),
			schema.Object(
				schema.Str("mode", "Assignment mode: 'NEAREST' (closest exit), 'SHORTEST_PATH' (shortest walking path), 'BALANCED' (balance exit flow), 'CUSTOM' (manual assignment)").
					Req().Enum("NEAREST", "SHORTEST_PATH", "BALANCED", "CUSTOM"),
				schema.Num("balanceThreshold", "For BALANCED mode: max agents per exit ratio difference. Default: 0.2").Positive(),
				schema.Arr("customAssignments", "For CUSTOM mode: array of {agentIds: [...], exitId: '...'} assignments",
					schema.ObjItem(
						schema.Arr("agentIds", "", schema.IntItem()).Req(),
						schema.Str("exitId", "").Req(),
					)),
			)),
		destructive(g, "bulc_set_premovement_time",
			desc("Set pre-movement time parameters for evacuation agents.",
				"Includes detection time and reaction time with statistical distributions."),
			schema.Object(
				schema.Num("detectionTime", "Fire detection time in seconds. Default: 0 (instant detection)").Min(0),
				schema.Num("reactionTimeMean", "Mean reaction time in seconds. Default: 30").Min(0),
				schema.Num("reactionTimeStdDev", "Reaction time standard deviation in seconds. Default: 10").Min(0),
				schema.Str("distribution", "Distribution type: 'NORMAL', 'LOGNORMAL', 'UNIFORM'. Default: NORMAL").
					Enum("NORMAL", "LOGNORMAL", "UNIFORM"),
				schema.Num("minReactionTime", "Minimum reaction time in seconds. Default: 0").Min(0),
				schema.Num("maxReactionTime", "Maximum reaction time in seconds. For UNIFORM distribution.").Positive(),
				schema.Bool("applyPerRoom", "Apply different reaction times per room. Default: false"),
				schema.Arr("roomSettings", "Per-room settings: [{room: '...', reactionTimeMean: ...}, ...]",
					schema.ObjItem(
						schema.Str("room", "").Req(),
						schema.Num("reactionTimeMean", ""),
						schema.Num("reactionTimeStdDev", ""),
					)),
			)),
		destructive(g, "bulc_set_fire_coupling",
			desc("Configure fire-evacuation coupling for FDS+EVAC integration.",
				"Sets visibility and temperature thresholds that affect agent behavior."),
			schema.Object(
				schema.Bool("enabled", "Enable fire-EVAC coupling. Default: false"),
				schema.Num("visibilityThreshold", "Visibility threshold in meters. Agents avoid areas below this. Default: 5").Positive(),
				schema.Num("temperatureThreshold", "Temperature threshold in Celsius. Agents avoid areas above this. Default: 60").Positive(),
				schema.Num("coThreshold", "CO concentration threshold in ppm. Default: 1400").Positive(),
				schema.Num("speedReductionFactor", "Speed reduction factor in smoke (0-1). Default: 0.5").Range(0, 1),
				schema.Num("updateInterval", "Fire data update interval in seconds. Default: 1.0").Positive(),
				schema.Str("fdsResultPath", "Path to FDS result files (.smv). Auto-detected if not specified."),
			)),

		readOnly(g, "bulc_get_evac_result",
			desc("Get detailed evacuation results including per-agent trajectories,",
				"exit statistics, and flow rate analysis."),
			schema.Object(
				schema.Bool("includeTrajectories", "Include full trajectory data for each agent. Default: false"),
				schema.Bool("includeFlowRates", "Include exit flow rate analysis. Default: true"),
				schema.Bool("includeBottlenecks", "Identify bottleneck locations. Default: true"),
				schema.Arr("timeRange", "Time range [startTime, endTime] in seconds. Default: full simulation", schema.NumItem()).Len(2),
				schema.Arr("agentIds", "Specific agent IDs to include. Default: all agents", schema.IntItem()),
			)),
		nonDestructive(g, "bulc_open_evac_viewer",
			desc("Open the 3D evacuation result viewer window.",
				"Displays agents on the building model with timeline playback."),
			schema.Object(
				schema.Str("evacPath", "Path to .evac file. Default: auto-detect from last simulation"),
				schema.Str("objPath", "Path to .obj 3D model file. Default: auto-detect"),
				schema.Bool("autoPlay", "Start playback automatically. Default: false"),
				schema.Num("playbackSpeed", "Playback speed multiplier (0.25 to 8.0). Default: 1.0").Range(0.25, 8),
				schema.Num("agentScale", "Agent display scale (0.5 to 5.0). Default: 1.0").Range(0.5, 5),
			)),
	}
}
