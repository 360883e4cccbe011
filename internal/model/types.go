package model

// Player identifies a player as last observed by the game server.
type Player struct {
	UUID          string `json:"uuid"`            // varchar(128)
	LastKnownName string `json:"last_known_name"` // varchar(30), overwritten on every login
}

// -----------------------------------------------------------------------------
// Statistic Records
// -----------------------------------------------------------------------------

// PlayerLastQuit is the time a player last disconnected.
type PlayerLastQuit struct {
	Player          Player `json:"player"`
	RFC3339DateTime string `json:"rfc_3339_date_time"` // e.g. "2024-01-15T12:00:00+00:00"
}

// PlayerBreakCount is the total number of blocks a player has broken.
type PlayerBreakCount struct {
	Player     Player `json:"player"`
	BreakCount uint64 `json:"break_count"`
}

// PlayerBuildCount is a player's build counter, rounded to a whole number.
type PlayerBuildCount struct {
	Player     Player `json:"player"`
	BuildCount uint64 `json:"build_count"`
}

// PlayerPlayTicks is a player's total play time in server ticks.
type PlayerPlayTicks struct {
	Player    Player `json:"player"`
	PlayTicks uint64 `json:"play_ticks"`
}

// PlayerVoteCount is the number of times a player has voted for the server.
type PlayerVoteCount struct {
	Player    Player `json:"player"`
	VoteCount uint64 `json:"vote_count"`
}
