// Package testutil holds helpers shared by the test suites: log capture,
// temporary grammar trees and grammar construction.
package testutil
