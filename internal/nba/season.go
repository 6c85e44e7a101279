package nba

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// easternTZ is the league's reference timezone: "today's games" means
// today in New York, not UTC.
var easternTZ = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.FixedZone("ET", -5*60*60)
	}
	return loc
}()

// easternNow returns the current time in the league's timezone.
func easternNow() time.Time {
	return time.Now().In(easternTZ)
}

// currentSeason returns the season id ("2023-24") that now falls in.
// Seasons roll over on July 1: before that date the season that started
// the previous calendar year is still current.
func currentSeason(now time.Time) string {
	year := now.Year()
	if now.Month() < time.July {
		year--
	}
	return seasonID(year)
}

// seasonID formats the season starting in startYear ("2023" → "2023-24").
func seasonID(startYear int) string {
	next := fmt.Sprint(startYear + 1)
	return fmt.Sprintf("%d-%s", startYear, next[len(next)-2:])
}

// seasonIDFromBounds builds a season id from the user-supplied year
// bounds. "2015 16" and "2015-16" both mean the 2015-16 season; a lone
// year is the season ending that year ("2016" → "2015-16"); empty bounds
// mean the current season.
func seasonIDFromBounds(startYear, endYear, current string) string {
	switch {
	case startYear != "" && endYear != "":
		return fmt.Sprintf("%s-%s", startYear, lastTwo(endYear))
	case startYear != "":
		ref := atoiSafe(startYear) - 1
		return fmt.Sprintf("%d-%s", ref, lastTwo(startYear))
	default:
		return current
	}
}

// splitPlayerQuery separates a raw "name [start [end]]" argument string
// into the player name and optional year bounds. The text is split on
// whitespace and hyphens; the first digit word after at least one name
// word terminates the name. A purely numeric query ("2544") stays a name,
// because it is an id lookup.
func splitPlayerQuery(text string) (name, startYear, endYear string) {
	words := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(text)), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})

	var nameWords []string
	i := 0
	for ; i < len(words); i++ {
		if isNumeric(words[i]) && i != 0 {
			break
		}
		nameWords = append(nameWords, words[i])
	}
	if i < len(words) {
		startYear = words[i]
	}
	if i+1 < len(words) {
		endYear = words[i+1]
	}
	return strings.Join(nameWords, " "), startYear, endYear
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func lastTwo(s string) string {
	if len(s) <= 2 {
		return s
	}
	return s[len(s)-2:]
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
