// Package sqlite runs rendered SELECT statements against an in-memory
// SQLite database to check that they execute, not just that the text is
// stable.
package sqlite
