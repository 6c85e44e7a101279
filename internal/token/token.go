// Package token encodes the state a disambiguation round trip carries
// between the initial query and the user's follow-up selection.
//
// The token is the entire protocol state: no session storage exists on
// either side. It is serialized into the transport's opaque callback
// payload as a short key=value string ("id=2544,op=career_stats,pg=nba"),
// a format chosen over JSON because Telegram's callback_data field is
// limited to 64 bytes.
//
// Tokens carry no nonce: every resumable operation is a read-only stat
// query, so replaying one is idempotent and harmless.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Operation identifies which plugin operation a token resumes.
type Operation string

const (
	OpCareerStats  Operation = "career_stats"
	OpSeasonStats  Operation = "season_stats"
	OpCurrentStats Operation = "current_stats"

	// OpCustom resumes one of a plugin's extra named operations; the
	// token's Custom field names which one.
	OpCustom Operation = "custom"
)

// IsValid reports whether op is a recognised operation.
func (op Operation) IsValid() bool {
	switch op {
	case OpCareerStats, OpSeasonStats, OpCurrentStats, OpCustom:
		return true
	}
	return false
}

// ErrBadToken is returned by [Decode] when the payload is not a token this
// process could have issued.
var ErrBadToken = errors.New("token: malformed token")

// Token is the self-contained state needed to replay an original request
// against a concrete entity after the user picks from a candidate list.
// Lifecycle is one round trip: issued on ambiguous resolution, consumed on
// the follow-up interaction, then discarded.
type Token struct {
	// EntityID is the selected candidate's provider id.
	EntityID int

	// Op is the operation that triggered resolution.
	Op Operation

	// Custom names the plugin's extra operation when Op is [OpCustom].
	Custom string

	// Plugin is the registered name of the plugin that issued the token.
	Plugin string

	// StartYear and EndYear are the optional season bounds of the original
	// season-stats request.
	StartYear string
	EndYear   string
}

// Encode serializes t into its opaque wire form.
func (t Token) Encode() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "id=%d,op=%s,pg=%s", t.EntityID, t.Op, t.Plugin)
	if t.Custom != "" {
		fmt.Fprintf(&sb, ",fn=%s", t.Custom)
	}
	if t.StartYear != "" {
		fmt.Fprintf(&sb, ",sy=%s", t.StartYear)
	}
	if t.EndYear != "" {
		fmt.Fprintf(&sb, ",ey=%s", t.EndYear)
	}
	return sb.String()
}

// Decode parses an encoded token. It requires the id, op, and plugin keys
// and a recognised operation; anything else is [ErrBadToken].
func Decode(s string) (Token, error) {
	var t Token
	seen := make(map[string]bool, 6)
	for _, part := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || value == "" {
			return Token{}, fmt.Errorf("%w: %q", ErrBadToken, s)
		}
		seen[key] = true
		switch key {
		case "id":
			id, err := strconv.Atoi(value)
			if err != nil {
				return Token{}, fmt.Errorf("%w: bad entity id %q", ErrBadToken, value)
			}
			t.EntityID = id
		case "op":
			t.Op = Operation(value)
		case "pg":
			t.Plugin = value
		case "fn":
			t.Custom = value
		case "sy":
			t.StartYear = value
		case "ey":
			t.EndYear = value
		default:
			return Token{}, fmt.Errorf("%w: unknown key %q", ErrBadToken, key)
		}
	}
	if !seen["id"] || !seen["op"] || !seen["pg"] {
		return Token{}, fmt.Errorf("%w: missing required keys in %q", ErrBadToken, s)
	}
	if !t.Op.IsValid() {
		return Token{}, fmt.Errorf("%w: unknown operation %q", ErrBadToken, t.Op)
	}
	if t.Op == OpCustom && t.Custom == "" {
		return Token{}, fmt.Errorf("%w: custom operation without fn key", ErrBadToken)
	}
	return t, nil
}
