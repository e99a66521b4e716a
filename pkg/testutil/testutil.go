// Package testutil contains helpers shared by tests of all packages.
package testutil

// Cleanuper is the part of [testing.TB] the helpers need to undo their
// changes.
type Cleanuper interface {
	Cleanup(func())
}
