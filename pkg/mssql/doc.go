// Package mssql runs rendered SELECT statements against a real SQL Server
// instance in a container. LIMIT/OFFSET output is not T-SQL, so row
// limiting stays out of these tests. Tests skip in short mode.
package mssql
