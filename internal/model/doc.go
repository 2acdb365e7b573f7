// Package model defines the data structures shared across docdump.
// It holds the transient per-page lesson record and the run result
// consumed by the report writers.
package model
