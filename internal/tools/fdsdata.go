package tools

import "github.com/lydakis/bulcmcp/internal/schema"

var hvacFace = []string{"INERT", "supply", "exhaust"}

func fdsDataTools() []Tool {
	g := GroupFDSData
	return []Tool{
		readOnly(g, "bulc_get_fds_data",
			desc("Get FDS configuration for a furniture item.",
				"Returns the FDS category (fire source, detector, sprinkler, HVAC, thermocouple)",
				"and its configuration parameters."),
			schema.Object(
				schema.Str("furnitureId", "Furniture ID to get FDS data from (from bulc_list_furniture)").Req(),
			)),
		destructive(g, "bulc_set_fds_fire_source",
			desc("Configure a furniture item as an FDS fire source.",
				"Supports HRRPUA (Heat Release Rate Per Unit Area) mode with time-based ramping.",
				"The fire will use the furniture's surface area for HRR calculations."),
			schema.Object(
				schema.Str("furnitureId", "Furniture ID to configure as fire source").Req(),
				schema.Num("hrrpua", "Heat Release Rate Per Unit Area in kW/m². Default: 500").Positive(),
				schema.Str("surfaceId", "Custom surface ID. Default: auto-generated"),
				schema.Str("color", "Surface color. Options: RED, ORANGE, YELLOW. Default: RED").Enum("RED", "ORANGE", "YELLOW"),
				schema.Arr("ramp", desc("Time-based ramp function as array of [time, fraction] pairs.",
					"Example: [[0, 0], [10, 0.5], [60, 1.0], [120, 1.0], [180, 0]]"),
					schema.Pair()),
				schema.Num("tauQ", "t-squared fire growth coefficient (optional, uses ramp if not set)"),
			)),
		destructive(g, "bulc_set_fds_detector",
			desc("Configure a furniture item as an FDS detector (heat or smoke).",
				"Heat detectors use RTI and activation temperature.",
				"Smoke detectors use optical obscuration threshold."),
			schema.Object(
				schema.Str("furnitureId", "Furniture ID to configure as detector").Req(),
				schema.Str("type", "Detector type: 'heat' or 'smoke'. Default: heat").Enum("heat", "smoke"),
				schema.Num("rti", "Response Time Index in (m·s)^0.5. Default: 50 for heat, 1.0 for smoke").Positive(),
				schema.Num("activationTemperature", "Activation temperature in Celsius (heat detector). Default: 57"),
				schema.Num("alphaE", "Alpha_E parameter for smoke detector. Default: 1.8"),
				schema.Num("betaE", "Beta_E parameter for smoke detector. Default: -1.1"),
				schema.Num("obscurationThreshold", "Obscuration threshold in %/m (smoke detector). Default: 3.28").Positive(),
				schema.Str("deviceId", "Custom device ID. Default: auto-generated"),
			)),
		destructive(g, "bulc_set_fds_sprinkler",
			desc("Configure a furniture item as an FDS sprinkler.",
				"Uses RTI and activation temperature for thermal response,",
				"with water spray parameters for suppression simulation."),
			schema.Object(
				schema.Str("furnitureId", "Furniture ID to configure as sprinkler").Req(),
				schema.Num("rti", "Response Time Index in (m·s)^0.5. Default: 50").Positive(),
				schema.Num("activationTemperature", "Activation temperature in Celsius. Default: 68"),
				schema.Num("flowRate", "Water flow rate in L/min. Default: 75").Positive(),
				schema.Num("dropletDiameter", "Median droplet diameter in micrometers. Default: 500").Positive(),
				schema.Arr("sprayAngle", "Spray angle range [min, max] in degrees. Default: [60, 75]", schema.NumItem()).Len(2),
				schema.Int("particlesPerSecond", "Number of particles per second. Default: 5000").Positive(),
				schema.Str("deviceId", "Custom device ID. Default: auto-generated"),
			)),
		destructive(g, "bulc_set_fds_hvac",
			desc("Configure a furniture item as an FDS HVAC (supply or exhaust vent).",
				"Assigns surface properties to specific faces of the obstruction.",
				"Supply vents blow air in, exhaust vents extract air out."),
			schema.Object(
				schema.Str("furnitureId", "Furniture ID to configure as HVAC").Req(),
				schema.Obj("surfaces",
					desc("Surface assignment for each face. Keys: minX, maxX, minY, maxY, minZ, maxZ.",
						"Values: 'INERT', 'supply', or 'exhaust'. Example: {maxZ: 'supply'}"),
					schema.Str("minX", "").Enum(hvacFace...),
					schema.Str("maxX", "").Enum(hvacFace...),
					schema.Str("minY", "").Enum(hvacFace...),
					schema.Str("maxY", "").Enum(hvacFace...),
					schema.Str("minZ", "").Enum(hvacFace...),
					schema.Str("maxZ", "").Enum(hvacFace...),
				),
				schema.Str("flowType", "Flow specification type: 'volume' (m³/s) or 'velocity' (m/s). Default: velocity").Enum("volume", "velocity"),
				schema.Num("flowValue", "Flow value (volume in m³/s or velocity in m/s). Default: 4.0"),
				schema.Num("temperature", "Supply air temperature in Celsius (supply only). Default: 20"),
				schema.Str("surfaceId", "Custom surface ID. Default: auto-generated"),
			)),
		destructive(g, "bulc_set_fds_thermocouple",
			desc("Configure a furniture item as an FDS thermocouple for temperature measurement.",
				"Used to record temperature at specific locations during simulation."),
			schema.Object(
				schema.Str("furnitureId", "Furniture ID to configure as thermocouple").Req(),
				schema.Num("beadDiameter", "Thermocouple bead diameter in mm. Default: 1.0").Positive(),
				schema.Num("emissivity", "Bead emissivity (0-1). Default: 0.9").Range(0, 1),
				schema.Str("deviceId", "Custom device ID. Default: auto-generated"),
			)),
		destructive(g, "bulc_clear_fds_data",
			desc("Clear FDS configuration from a furniture item.",
				"Removes fire source, detector, sprinkler, HVAC, or thermocouple settings."),
			schema.Object(
				schema.Str("furnitureId", "Furniture ID to clear FDS data from").Req(),
			)),
	}
}
