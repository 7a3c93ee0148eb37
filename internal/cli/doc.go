// Package cli translates command-line arguments into an app.Config. It
// owns usage text, flag validation, and the ExitError type that carries
// process exit codes back to the entrypoint.
package cli
