// Package config defines the format-agnostic configuration model for the
// tool, along with the Loader interface for reading it from a concrete
// format.
//
// A Model lists the grammars to analyze and how to analyze each one. The HCL
// implementation lives in the hcl_adapter package.
package config
