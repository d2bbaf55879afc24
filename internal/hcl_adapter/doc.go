// Package hcl_adapter loads config.Model from HCL files.
//
// Each file may declare any number of grammar blocks:
//
//	grammar "wlang" {
//	  source      = "wlang.grammar"
//	  start       = defaults.start
//	  follow_mode = "fixedpoint"
//	  rules       = ["Expression", "Statement"]
//	}
//
// Attribute expressions can read environment variables as env.NAME, the
// built-in markers as defaults.start, defaults.end_marker and
// defaults.nil_keyword, and call a few string functions (upper, lower,
// format, join, concat, trimspace).
package hcl_adapter
