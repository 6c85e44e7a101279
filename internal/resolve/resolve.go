// Package resolve matches free-text queries against player and team name
// directories.
//
// Player and team resolution deliberately follow different ambiguity
// policies. A player query can return zero, one, or many candidates — the
// many-candidate case feeds the disambiguation flow. A team query always
// returns exactly one best guess: the directory is small and closed, so a
// fuzzy best match is always a better answer than "not found".
package resolve

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// Entity is a resolved player or team: a stable provider id plus the
// display name shown to users. Entities are shared read-only; resolution
// never mutates the directory it searches.
type Entity struct {
	ID   int
	Name string
}

// TeamEntry is one team's directory row with the name variants a free-form
// query is matched against.
type TeamEntry struct {
	Entity
	Nickname     string
	Abbreviation string
	City         string
}

// Variants returns every name form of the team a query may refer to:
// full name, nickname, abbreviation, city, and city+nickname.
func (t TeamEntry) Variants() []string {
	return []string{
		t.Name,
		t.Nickname,
		t.Abbreviation,
		t.City,
		t.City + " " + t.Nickname,
	}
}

// ResolutionKind tags the outcome of a player resolution.
type ResolutionKind string

const (
	// Found means exactly one entity matched.
	Found ResolutionKind = "found"

	// NotFound means zero entities matched.
	NotFound ResolutionKind = "not_found"

	// Ambiguous means more than one entity matched; the candidates are the
	// disambiguation options, in directory order.
	Ambiguous ResolutionKind = "ambiguous"
)

// Resolution is the tagged result of a player lookup. Entity is valid only
// when Kind is [Found]; Candidates only when Kind is [Ambiguous]. An empty
// candidate list is never used to stand in for "not found".
type Resolution struct {
	Kind       ResolutionKind
	Entity     Entity
	Candidates []Entity
}

// Players resolves query against a player directory.
//
// An all-digit query is an id lookup and yields at most one candidate,
// bypassing name matching entirely. Any other query collects every entry
// whose display name contains it case-insensitively, preserving directory
// order. Multiple hits are expected for common substrings ("james") and are
// reported as Ambiguous rather than ranked down to one.
func Players(query string, directory []Entity) Resolution {
	query = strings.TrimSpace(query)
	if query == "" {
		return Resolution{Kind: NotFound}
	}

	if isDigits(query) {
		id := 0
		for _, r := range query {
			id = id*10 + int(r-'0')
		}
		for _, e := range directory {
			if e.ID == id {
				return Resolution{Kind: Found, Entity: e}
			}
		}
		return Resolution{Kind: NotFound}
	}

	needle := strings.ToLower(query)
	var matches []Entity
	for _, e := range directory {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return Resolution{Kind: NotFound}
	case 1:
		return Resolution{Kind: Found, Entity: matches[0]}
	default:
		return Resolution{Kind: Ambiguous, Candidates: matches}
	}
}

// Team resolves query against the team directory and always returns one
// best guess (never empty, never ambiguous) along with true when the
// directory is non-empty. An all-digit query is an id lookup; otherwise a
// case-insensitive substring match over each team's variants wins first,
// and failing that the single highest Jaro-Winkler score over the whole
// variant set is taken with no threshold rejection.
func Team(query string, directory []TeamEntry) (TeamEntry, bool) {
	query = strings.TrimSpace(query)
	if len(directory) == 0 {
		return TeamEntry{}, false
	}

	if isDigits(query) && query != "" {
		id := 0
		for _, r := range query {
			id = id*10 + int(r-'0')
		}
		for _, t := range directory {
			if t.ID == id {
				return t, true
			}
		}
	}

	needle := strings.ToLower(query)
	if needle != "" {
		for _, t := range directory {
			for _, v := range t.Variants() {
				if strings.Contains(strings.ToLower(v), needle) {
					return t, true
				}
			}
		}
	}

	best := directory[0]
	bestScore := -1.0
	for _, t := range directory {
		for _, v := range t.Variants() {
			score := matchr.JaroWinkler(needle, strings.ToLower(v), false)
			if score > bestScore {
				bestScore = score
				best = t
			}
		}
	}
	return best, true
}

// isDigits reports whether s is non-empty and consists only of ASCII digits.
func isDigits(s string) bool {
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
