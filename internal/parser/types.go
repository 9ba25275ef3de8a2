// Package parser turns an Instagram export ZIP into a unified
// relationship dataset plus diagnostics. It tolerates the historical
// layout and shape drift of the export format: files move between base
// folders, get renamed, and switch between bare-array and wrapped JSON.
package parser

import "instagram_audit/internal/report"

// RawEntry is one normalized account record from an export list.
// Username is the case-insensitive identity key, already trimmed and
// lower-cased. Timestamp is Unix seconds, zero when absent.
type RawEntry struct {
	Username  string
	Href      string
	Timestamp int64
}

// ParsedAll is the unified dataset one export parse produces. Every key
// is a normalized username. It is built fresh per parse and never
// mutated afterwards.
type ParsedAll struct {
	Following            map[string]struct{}
	Followers            map[string]struct{}
	PendingSent          map[string]int64
	PermanentRequests    map[string]int64
	Restricted           map[string]int64
	CloseFriends         map[string]int64
	Unfollowed           map[string]int64
	DismissedSuggestions map[string]int64
	FollowingTimestamps  map[string]int64
	FollowersTimestamps  map[string]int64
}

// NewParsedAll returns an empty dataset with every set and map ready.
func NewParsedAll() ParsedAll {
	return ParsedAll{
		Following:            make(map[string]struct{}),
		Followers:            make(map[string]struct{}),
		PendingSent:          make(map[string]int64),
		PermanentRequests:    make(map[string]int64),
		Restricted:           make(map[string]int64),
		CloseFriends:         make(map[string]int64),
		Unfollowed:           make(map[string]int64),
		DismissedSuggestions: make(map[string]int64),
		FollowingTimestamps:  make(map[string]int64),
		FollowersTimestamps:  make(map[string]int64),
	}
}

// Result is everything one parse call yields. HasMinimalData is true
// when at least one of the following or followers sets is non-empty; a
// parse that "succeeded" file by file but found zero accounts is not
// actionable and reports false here.
type Result struct {
	Data           ParsedAll        `json:"-"`
	Warnings       []report.Warning `json:"warnings"`
	Discovery      report.Discovery `json:"discovery"`
	HasMinimalData bool             `json:"hasMinimalData"`
}
