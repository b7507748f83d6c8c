// Package config provides configuration loading, merging, and validation
// facilities for the sync engine.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetEngineConfig]. Feature switches (new
// invalidations transport, redundant-invalidation version check) are
// resolved here once at startup and passed into the engine as plain
// booleans; nothing in the engine reads configuration ad hoc.
package config
