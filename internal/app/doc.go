// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the analysis lifecycle: collect grammar jobs
// from the command line and configuration files, build and analyze each
// grammar, and render a report. It is decoupled from any specific entrypoint.
package app
