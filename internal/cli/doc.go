// Package cli implements the gpufleet command-line interface.
//
// The package is organized around Cobra commands. The root command starts
// the dashboard itself; subcommands cover configuration and tooling:
//
//	gpufleet [hosts...]  - Poll hosts and serve the dashboard
//	gpufleet init        - Create a .gpufleet.yaml config
//	gpufleet version     - Print version information
//	gpufleet completion  - Generate shell completion scripts
//
// Flags layer on top of the config file: anything given on the command
// line overrides the file, and host arguments replace the configured
// host list entirely.
package cli
