package source

import (
	"math"
	"time"
)

// rfc3339Offset is RFC 3339 with a numeric offset instead of "Z" and
// fractional seconds only when present.
const rfc3339Offset = "2006-01-02T15:04:05.999999999-07:00"

// FormatLastQuit encodes a quit time as RFC 3339 in UTC, e.g.
// "2024-01-15T12:00:00+00:00".
func FormatLastQuit(t time.Time) string {
	return t.UTC().Format(rfc3339Offset)
}

// RoundBuildCount rounds the build counter half away from zero and converts
// it to uint64, saturating: NaN and negative values become 0 and values past
// the uint64 range become math.MaxUint64.
func RoundBuildCount(f float64) uint64 {
	r := math.Round(f)
	switch {
	case math.IsNaN(r) || r <= 0:
		return 0
	case r >= float64(math.MaxUint64):
		return math.MaxUint64
	}
	return uint64(r)
}

// WidenInt32 converts a signed 32-bit counter to uint64 with two's-complement
// wrap, so -1 becomes math.MaxUint64. Negative values are not rejected.
func WidenInt32(v int32) uint64 {
	return uint64(v)
}
