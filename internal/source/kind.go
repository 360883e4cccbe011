package source

import "fmt"

// Kind names a player statistic.
type Kind string

const (
	KindLastQuit   Kind = "last-quit"
	KindBreakCount Kind = "break-count"
	KindBuildCount Kind = "build-count"
	KindPlayTicks  Kind = "play-ticks"
	KindVoteCount  Kind = "vote-count"
)

// Kinds lists every statistic in a stable order.
func Kinds() []Kind {
	return []Kind{KindLastQuit, KindBreakCount, KindBuildCount, KindPlayTicks, KindVoteCount}
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown record kind %q", s)
}
