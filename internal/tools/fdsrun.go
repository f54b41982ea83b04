package tools

import "github.com/lydakis/bulcmcp/internal/schema"

func fdsRunTools() []Tool {
	g := GroupFDSRun
	return []Tool{
		readOnly(g, "bulc_preview_fds",
			desc("Generate a preview of the FDS input file without saving.",
				"Returns the complete FDS input file content for review."),
			schema.Object(
				schema.Bool("includeComments", "Include explanatory comments in output. Default: true"),
			)),
		readOnly(g, "bulc_validate_fds",
			desc("Validate FDS configuration for errors and warnings.",
				"Checks mesh consistency, fire source setup, boundary conditions, etc."),
			schema.Object()),
		destructive(g, "bulc_export_fds",
			desc("Export the FDS input file to disk.",
				"Creates the .fds file and any required supporting files."),
			schema.Object(
				schema.Str("outputPath", "Output directory path. Default: same as project file"),
				schema.Str("filename", "FDS filename (without extension). Default: project name"),
				schema.Bool("includeGeometry", "Export OBJ geometry file. Default: true"),
			)),
		destructive(g, "bulc_run_fds",
			desc("Start FDS simulation.",
				"Runs the simulation in background and returns immediately.",
				"Use bulc_get_fds_status to monitor progress."),
			schema.Object(
				schema.Int("mpiProcesses", "Number of MPI processes. Default: auto (based on mesh count)").Positive(),
				schema.Int("openmpThreads", "Number of OpenMP threads per process. Default: 1").Positive(),
				schema.Str("outputPath", "Output directory. Default: BULC_result folder"),
			)),
		readOnly(g, "bulc_get_fds_status",
			desc("Get current FDS simulation status.",
				"Returns running state, progress, current simulation time, and estimated completion."),
			schema.Object()),
		destructive(g, "bulc_stop_fds",
			desc("Stop a running FDS simulation.",
				"Sends stop signal and waits for graceful shutdown."),
			schema.Object(
				schema.Bool("force", "Force kill if graceful stop fails. Default: false"),
			)),
	}
}
