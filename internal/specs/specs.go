// Package specs is the static catalogue of every export file this tool
// recognizes. Instagram has renamed files and reshaped JSON wrappers
// across export versions; this table is the single place that knowledge
// lives. Pure data, no behavior.
package specs

import "regexp"

// FileSpec describes one recognized export file category.
type FileSpec struct {
	// Key identifies the parsed dataset the entries feed
	// (pending, permanent, restricted, close, unfollowed, dismissed).
	Key string
	// Name is the canonical display name shown in discovery reports.
	Name        string
	Description string
	Required    bool
	// FileCandidates are the literal filenames to try, in order.
	FileCandidates []string
	// PropCandidates are the JSON wrapper property names to try when the
	// member is not a bare array.
	PropCandidates []string
}

// BasePaths are the folder prefixes, in lookup order, under which the
// relationship files have lived across export versions. The empty
// string means the archive root.
var BasePaths = []string{
	"connections/followers_and_following",
	"followers_and_following",
	"",
}

// Following is the required list of accounts the owner follows.
var Following = FileSpec{
	Key:            "following",
	Name:           "following.json",
	Description:    "Accounts you follow",
	Required:       true,
	FileCandidates: []string{"following.json"},
	PropCandidates: []string{"relationships_following"},
}

// Followers is the required follower list, split across one or more
// numbered files. Matching is by pattern, not literal name.
var Followers = FileSpec{
	Key:            "followers",
	Name:           "followers_*.json",
	Description:    "Accounts that follow you",
	Required:       true,
	PropCandidates: []string{"relationships_followers"},
}

// Optional are the relationship files whose absence is normal and never
// warned about.
var Optional = []FileSpec{
	{
		Key:            "pending",
		Name:           "pending_follow_requests.json",
		Description:    "Follow requests you sent that are still pending",
		FileCandidates: []string{"pending_follow_requests.json"},
		PropCandidates: []string{"relationships_follow_requests_sent"},
	},
	{
		Key:            "restricted",
		Name:           "restricted_profiles.json",
		Description:    "Accounts you restricted",
		FileCandidates: []string{"restricted_profiles.json"},
		PropCandidates: []string{"relationships_restricted_users"},
	},
	{
		Key:            "close",
		Name:           "close_friends.json",
		Description:    "Your close friends list",
		FileCandidates: []string{"close_friends.json", "friends.json"},
		PropCandidates: []string{"relationships_close_friends"},
	},
	{
		Key:            "unfollowed",
		Name:           "recently_unfollowed_profiles.json",
		Description:    "Accounts you recently unfollowed",
		FileCandidates: []string{"recently_unfollowed_profiles.json", "recently_unfollowed_accounts.json", "unfollowed_profiles.json"},
		PropCandidates: []string{"relationships_unfollowed_users"},
	},
	{
		Key:            "dismissed",
		Name:           "removed_suggestions.json",
		Description:    "Suggested accounts you dismissed",
		FileCandidates: []string{"removed_suggestions.json", "dismissed_suggestions.json"},
		PropCandidates: []string{"relationships_dismissed_suggested_users"},
	},
}

// PermanentRequests is tracked separately from Optional in the original
// product but follows the same optional-file semantics.
var PermanentRequests = FileSpec{
	Key:            "permanent",
	Name:           "recent_follow_requests.json",
	Description:    "Permanent record of follow requests you sent",
	FileCandidates: []string{"recent_follow_requests.json", "permanent_follow_requests.json"},
	PropCandidates: []string{"relationships_permanent_follow_requests"},
}

// All returns every catalogued spec in display order.
func All() []FileSpec {
	out := make([]FileSpec, 0, len(Optional)+3)
	out = append(out, Following, Followers)
	out = append(out, Optional...)
	out = append(out, PermanentRequests)
	return out
}

// FollowersPatternFor builds the primary numbered-followers matcher for
// one base path candidate.
func FollowersPatternFor(basePath string) *regexp.Regexp {
	if basePath == "" {
		return regexp.MustCompile(`^followers_\d+\.json$`)
	}
	return regexp.MustCompile(`^` + regexp.QuoteMeta(basePath) + `/followers_\d+\.json$`)
}

// FollowersFallbackPattern matches numbered followers files anywhere in
// the archive, used when no base path candidate matched.
var FollowersFallbackPattern = regexp.MustCompile(`(^|/)followers_\d+\.json$`)
