// Package badges derives per-account classifications from one parsed
// export dataset. Pure computation, no I/O.
package badges

import (
	"sort"

	"instagram_audit/internal/parser"
)

// Badges are the boolean classifications an account can carry. Flags
// are derived independently and are not mutually exclusive: inconsistent
// exports can legitimately mark one account with several at once.
type Badges struct {
	Following        bool `json:"following,omitempty"`
	Followers        bool `json:"followers,omitempty"`
	Mutuals          bool `json:"mutuals,omitempty"`
	NotFollowingBack bool `json:"notFollowingBack,omitempty"`
	NotFollowedBack  bool `json:"notFollowedBack,omitempty"`
	Pending          bool `json:"pending,omitempty"`
	Permanent        bool `json:"permanent,omitempty"`
	Restricted       bool `json:"restricted,omitempty"`
	Close            bool `json:"close,omitempty"`
	Unfollowed       bool `json:"unfollowed,omitempty"`
	Dismissed        bool `json:"dismissed,omitempty"`
}

// AccountBadges pairs a username with its derived badges.
type AccountBadges struct {
	Username string `json:"username"`
	Badges   Badges `json:"badges"`
}

// Names lists every badge key Index can set, in report order.
func Names() []string {
	return []string{
		"following", "followers", "mutuals", "notFollowingBack", "notFollowedBack",
		"pending", "permanent", "restricted", "close", "unfollowed", "dismissed",
	}
}

// Has reports whether a named badge is set. Unknown names are false.
func (b Badges) Has(name string) bool {
	switch name {
	case "following":
		return b.Following
	case "followers":
		return b.Followers
	case "mutuals":
		return b.Mutuals
	case "notFollowingBack":
		return b.NotFollowingBack
	case "notFollowedBack":
		return b.NotFollowedBack
	case "pending":
		return b.Pending
	case "permanent":
		return b.Permanent
	case "restricted":
		return b.Restricted
	case "close":
		return b.Close
	case "unfollowed":
		return b.Unfollowed
	case "dismissed":
		return b.Dismissed
	default:
		return false
	}
}

// Index derives one AccountBadges entry for every username appearing
// anywhere in the dataset, sorted by username so identical inputs yield
// identical output.
func Index(data parser.ParsedAll) []AccountBadges {
	usernames := collectUsernames(data)
	indexed := make([]AccountBadges, 0, len(usernames))
	for _, username := range usernames {
		_, isFollowing := data.Following[username]
		_, isFollower := data.Followers[username]
		_, isPending := data.PendingSent[username]
		_, isPermanent := data.PermanentRequests[username]
		_, isRestricted := data.Restricted[username]
		_, isClose := data.CloseFriends[username]
		_, isUnfollowed := data.Unfollowed[username]
		_, isDismissed := data.DismissedSuggestions[username]
		indexed = append(indexed, AccountBadges{
			Username: username,
			Badges: Badges{
				Following:        isFollowing,
				Followers:        isFollower,
				Mutuals:          isFollowing && isFollower,
				NotFollowingBack: isFollower && !isFollowing,
				NotFollowedBack:  isFollowing && !isFollower,
				Pending:          isPending,
				Permanent:        isPermanent,
				Restricted:       isRestricted,
				Close:            isClose,
				Unfollowed:       isUnfollowed,
				Dismissed:        isDismissed,
			},
		})
	}
	return indexed
}

// Filter returns the usernames carrying a named badge, preserving the
// indexed order.
func Filter(indexed []AccountBadges, badgeName string) []string {
	var usernames []string
	for _, account := range indexed {
		if account.Badges.Has(badgeName) {
			usernames = append(usernames, account.Username)
		}
	}
	return usernames
}

func collectUsernames(data parser.ParsedAll) []string {
	seen := make(map[string]struct{})
	add := func(username string) {
		seen[username] = struct{}{}
	}
	for username := range data.Following {
		add(username)
	}
	for username := range data.Followers {
		add(username)
	}
	for username := range data.PendingSent {
		add(username)
	}
	for username := range data.PermanentRequests {
		add(username)
	}
	for username := range data.Restricted {
		add(username)
	}
	for username := range data.CloseFriends {
		add(username)
	}
	for username := range data.Unfollowed {
		add(username)
	}
	for username := range data.DismissedSuggestions {
		add(username)
	}
	usernames := make([]string, 0, len(seen))
	for username := range seen {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)
	return usernames
}
