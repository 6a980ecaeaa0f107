// Package store implements the in-memory resource store backing the mock
// API: the user and post collections, sequential id assignment, query
// filtering and pagination, field validation, and seed data.
//
// Entities are treated as immutable once inserted; updates replace the
// stored entity rather than mutating it, so values returned to handlers
// are stable snapshots.
package store
