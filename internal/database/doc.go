// Package database provides the connection pool for the SeichiAssist game database.
//
// The game database speaks the MySQL protocol. A single Pool is shared by
// every data source and never holds more than MaxConns open connections;
// callers beyond that wait for a connection to be released.
//
// Driver failures are classified into connection, query and decoding
// errors (see Error) so callers can decide whether to retry.
package database
