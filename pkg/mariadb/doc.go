// Package mariadb runs rendered SELECT statements against a real MariaDB
// server in a container. Tests skip in short mode.
package mariadb
