// Package source reads player statistics out of the playerdata table.
//
// Each record kind has a data source that runs one fixed query:
//
//	SELECT name, uuid, <column> FROM playerdata
//
// and maps every row into a typed record. The five kinds differ only in the
// metric column and the coercion applied to it, so they share one generic
// Fetcher parameterised by a Projection.
//
// Fetches are all-or-nothing. A row that fails to decode fails the whole
// fetch, and nothing is cached between calls.
package source
