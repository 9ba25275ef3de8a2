package parser

import "instagram_audit/internal/utils"

// stringListItem is the inner record both historical export shapes
// carry; the username lives in Value on the legacy shape.
type stringListItem struct {
	Value     string `json:"value"`
	Href      string `json:"href"`
	Timestamp int64  `json:"timestamp"`
}

// listEntry is one element of an export list in either known shape:
// legacy entries put the username in string_list_data[0].value, current
// ones put it in the top-level title.
type listEntry struct {
	Title          string           `json:"title"`
	StringListData []stringListItem `json:"string_list_data"`
}

// normalizeEntry folds one export element into a RawEntry. Entries
// whose username is empty after trimming are dropped, not errors.
func normalizeEntry(entry listEntry) (RawEntry, bool) {
	var item stringListItem
	if len(entry.StringListData) > 0 {
		item = entry.StringListData[0]
	}
	username := item.Value
	if username == "" {
		username = entry.Title
	}
	username = utils.ToLowerTrim(username)
	if username == "" {
		return RawEntry{}, false
	}
	return RawEntry{Username: username, Href: item.Href, Timestamp: item.Timestamp}, true
}

// uniqueUsernames normalizes a file's entry list into usernames in
// first-seen order. Later duplicates are silently discarded.
func uniqueUsernames(entries []listEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	var usernames []string
	for _, entry := range entries {
		record, ok := normalizeEntry(entry)
		if !ok {
			continue
		}
		if _, duplicate := seen[record.Username]; duplicate {
			continue
		}
		seen[record.Username] = struct{}{}
		usernames = append(usernames, record.Username)
	}
	return usernames
}

// timestampMap normalizes a file's entry list into a username→timestamp
// map. Same dedup semantics as uniqueUsernames: the first-seen entry
// wins its timestamp.
func timestampMap(entries []listEntry) map[string]int64 {
	result := make(map[string]int64, len(entries))
	for _, entry := range entries {
		record, ok := normalizeEntry(entry)
		if !ok {
			continue
		}
		if _, duplicate := result[record.Username]; duplicate {
			continue
		}
		result[record.Username] = record.Timestamp
	}
	return result
}
