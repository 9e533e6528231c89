// Package bindertesting provides shared fixtures for exercising binder
// handles with reproducible randomized workloads.
package bindertesting
