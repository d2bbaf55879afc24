// Package integrationtests runs the tool end to end, from command-line
// arguments through configuration loading to the rendered report.
package integrationtests
