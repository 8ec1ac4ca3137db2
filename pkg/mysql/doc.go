// Package mysql runs rendered SELECT statements against a real MySQL
// server in a container. Tests skip in short mode.
package mysql
