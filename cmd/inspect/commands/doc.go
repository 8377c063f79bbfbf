// Package commands defines the ring-inspect CLI.
//
// Commands
//
//   - run    Inspect image files or directories and write annotated results
//
// # Implementation
//
// The root command loads configuration from the environment (and .env) and
// builds the logger before any subcommand runs. Flags given on the command
// line override the environment values.
package commands
