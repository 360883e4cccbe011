package source

import (
	"time"

	"github.com/rickgao/playerdata-source/internal/model"
)

const table = "playerdata"

// Column names shared by every query.
const (
	columnName = "name"
	columnUUID = "uuid"
)

// Projection maps the metric column of a playerdata row into a record of
// type T. The metric is scanned into a typed destination, so a column whose
// value does not fit fails at scan time rather than being coerced silently.
type Projection[T any] struct {
	Kind   Kind
	Column string

	// newRow returns a scan destination for the metric column and a function
	// that builds the record once the row has been scanned.
	newRow func() (dest any, build func(model.Player) T)
}

func project[T, V any](kind Kind, column string, build func(model.Player, V) T) Projection[T] {
	return Projection[T]{
		Kind:   kind,
		Column: column,
		newRow: func() (any, func(model.Player) T) {
			v := new(V)
			return v, func(p model.Player) T { return build(p, *v) }
		},
	}
}

// Query returns the SELECT statement the projection reads from.
func (p Projection[T]) Query() string {
	return "SELECT " + columnName + ", " + columnUUID + ", " + p.Column + " FROM " + table
}

// Projections for the five playerdata statistics.
var (
	// datetime -> RFC 3339
	LastQuit = project(KindLastQuit, "lastquit", func(p model.Player, t time.Time) model.PlayerLastQuit {
		return model.PlayerLastQuit{Player: p, RFC3339DateTime: FormatLastQuit(t)}
	})

	// bigint, no coercion
	BreakCount = project(KindBreakCount, "totalbreaknum", func(p model.Player, n uint64) model.PlayerBreakCount {
		return model.PlayerBreakCount{Player: p, BreakCount: n}
	})

	// double -> rounded uint64
	BuildCount = project(KindBuildCount, "build_count", func(p model.Player, f float64) model.PlayerBuildCount {
		return model.PlayerBuildCount{Player: p, BuildCount: RoundBuildCount(f)}
	})

	// int -> uint64
	PlayTicks = project(KindPlayTicks, "playtick", func(p model.Player, n int32) model.PlayerPlayTicks {
		return model.PlayerPlayTicks{Player: p, PlayTicks: WidenInt32(n)}
	})

	// int -> uint64
	VoteCount = project(KindVoteCount, "p_vote", func(p model.Player, n int32) model.PlayerVoteCount {
		return model.PlayerVoteCount{Player: p, VoteCount: WidenInt32(n)}
	})
)
