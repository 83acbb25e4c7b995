// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates the tool's own flags into the application's configuration and
// separates them from the argument vector being inspected.
package cli
