// Package postgres runs rendered SELECT statements against a real
// PostgreSQL server in a container. Tests skip in short mode.
package postgres
