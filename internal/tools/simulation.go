package tools

import "github.com/lydakis/bulcmcp/internal/schema"

func simulationTools() []Tool {
	g := GroupSimulation
	return []Tool{
		readOnly(g, "bulc_get_simulation_settings",
			desc("Get current FDS simulation settings including time, ambient conditions,",
				"output settings, and numerical parameters."),
			schema.Object()),
		destructive(g, "bulc_set_simulation_time",
			desc("Set FDS simulation time parameters.",
				"Controls simulation duration and time step settings."),
			schema.Object(
				schema.Num("duration", "Total simulation time in seconds. Required.").Req().Positive(),
				schema.Num("dtInit", "Initial time step in seconds. Default: auto (FDS calculates)").Positive(),
				schema.Num("dtMax", "Maximum time step in seconds. Default: auto").Positive(),
			)),
		destructive(g, "bulc_set_output_settings",
			desc("Configure FDS output settings for visualization data.",
				"Controls slice files, 3D smoke, and device output intervals."),
			schema.Object(
				schema.Num("sliceInterval", "Interval for slice file output in seconds. Default: 1.0").Positive(),
				schema.Num("smoke3dInterval", "Interval for 3D smoke output in seconds. Default: 1.0").Positive(),
				schema.Num("deviceInterval", "Interval for device output in seconds. Default: 1.0").Positive(),
				schema.Num("plot3dInterval", "Interval for Plot3D output in seconds. Default: 10.0").Positive(),
				schema.Bool("viscosityOutput", "Include viscosity in output. Default: false"),
				schema.Bool("massFluxOutput", "Include mass flux in output. Default: false"),
			)),
		destructive(g, "bulc_set_ambient",
			"Set FDS ambient conditions including temperature, pressure, and species.",
			schema.Object(
				schema.Num("temperature", "Ambient temperature in Celsius. Default: 20"),
				schema.Num("pressure", "Ambient pressure in Pa. Default: 101325").Positive(),
				schema.Num("humidity", "Relative humidity (0-100%). Default: 40").Range(0, 100),
				schema.Num("o2MassFraction", "Oxygen mass fraction. Default: 0.232").Range(0, 1),
				schema.Num("co2MassFraction", "CO2 mass fraction. Default: 0.000595").Range(0, 1),
				schema.Arr("gravity", "Gravity vector [gx, gy, gz] in m/s². Default: [0, 0, -9.81]", schema.NumItem()).Len(3),
			)),
	}
}
