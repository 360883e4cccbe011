// Package model defines the player statistic records read from the game database.
//
// All types mirror the playerdata table of the SeichiAssist schema.
//
// Conventions:
//   - Player UUIDs and names are opaque text, never validated here
//   - Counters are uint64 regardless of the column's SQL width
//   - Timestamps are RFC 3339 strings with a numeric UTC offset
//
// Records are snapshots: each fetch builds fresh values and nothing in this
// module keeps or mutates them afterwards.
package model
