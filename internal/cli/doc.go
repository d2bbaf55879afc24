// Package cli turns the grammartool command line into an app.Config.
//
// Positional arguments are grammar files or directories of .grammar files.
// -config (or -c) adds the grammar jobs declared in an HCL file, -follow
// picks the guarded or fixed-point FOLLOW algorithm, and -rules limits the
// report to a comma-separated list of rules. Usage errors come back as an
// ExitError with code 2.
package cli
