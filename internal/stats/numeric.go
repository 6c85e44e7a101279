package stats

import (
	"math"
	"strconv"
)

// Num coerces an arbitrary upstream scalar to an int. Provider payloads mix
// JSON numbers, numeric strings, and nulls within the same column; anything
// that is not a usable number coerces to zero so one missing field cannot
// corrupt a whole formatted line.
func Num(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return int(f)
		}
	}
	return 0
}

// Float is Num's float counterpart, used where fractional upstream values
// must survive averaging.
func Float(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return 0
}

// Str coerces an upstream scalar to a string, returning "" for nulls and
// non-strings.
func Str(v any) string {
	s, _ := v.(string)
	return s
}

// Percentage returns round(100 * made / attempted), or 0 when attempted is
// zero. The zero-guard is universal: no call site divides on its own.
func Percentage(made, attempted int) int {
	if attempted == 0 {
		return 0
	}
	return int(math.Round(100 * float64(made) / float64(attempted)))
}

// PerGame returns a one-decimal per-game average, or 0 when games is zero.
func PerGame(total, games int) float64 {
	if games == 0 {
		return 0
	}
	return math.Round(10*float64(total)/float64(games)) / 10
}
