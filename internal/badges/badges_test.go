package badges

import (
	"reflect"
	"testing"

	"instagram_audit/internal/parser"
)

func datasetWith(following, followers []string) parser.ParsedAll {
	data := parser.NewParsedAll()
	for _, username := range following {
		data.Following[username] = struct{}{}
	}
	for _, username := range followers {
		data.Followers[username] = struct{}{}
	}
	return data
}

func TestIndexRelationshipBadges(t *testing.T) {
	data := datasetWith([]string{"a", "b"}, []string{"b", "c"})
	indexed := Index(data)

	if len(indexed) != 3 {
		t.Fatalf("accounts=%d want=3: %+v", len(indexed), indexed)
	}
	byName := make(map[string]Badges, len(indexed))
	for _, account := range indexed {
		byName[account.Username] = account.Badges
	}

	wantA := Badges{Following: true, NotFollowedBack: true}
	wantB := Badges{Following: true, Followers: true, Mutuals: true}
	wantC := Badges{Followers: true, NotFollowingBack: true}
	if byName["a"] != wantA {
		t.Fatalf("a=%+v want=%+v", byName["a"], wantA)
	}
	if byName["b"] != wantB {
		t.Fatalf("b=%+v want=%+v", byName["b"], wantB)
	}
	if byName["c"] != wantC {
		t.Fatalf("c=%+v want=%+v", byName["c"], wantC)
	}
}

func TestIndexSortedAndComplete(t *testing.T) {
	data := datasetWith([]string{"zeta"}, nil)
	data.Restricted["middle"] = 5
	data.PendingSent["alpha"] = 9
	indexed := Index(data)

	var usernames []string
	for _, account := range indexed {
		usernames = append(usernames, account.Username)
	}
	want := []string{"alpha", "middle", "zeta"}
	if !reflect.DeepEqual(usernames, want) {
		t.Fatalf("order=%v want=%v", usernames, want)
	}
}

func TestIndexMapBadgesCanOverlap(t *testing.T) {
	// inconsistent exports can mark one account several ways at once;
	// the indexer does not referee
	data := datasetWith(nil, []string{"odd"})
	data.Restricted["odd"] = 1
	data.PendingSent["odd"] = 2
	data.CloseFriends["odd"] = 3
	data.Unfollowed["odd"] = 4
	data.DismissedSuggestions["odd"] = 5
	data.PermanentRequests["odd"] = 6

	indexed := Index(data)
	if len(indexed) != 1 {
		t.Fatalf("accounts=%d want=1", len(indexed))
	}
	got := indexed[0].Badges
	want := Badges{
		Followers:        true,
		NotFollowingBack: true,
		Pending:          true,
		Permanent:        true,
		Restricted:       true,
		Close:            true,
		Unfollowed:       true,
		Dismissed:        true,
	}
	if got != want {
		t.Fatalf("badges=%+v want=%+v", got, want)
	}
}

func TestFilterAndHas(t *testing.T) {
	data := datasetWith([]string{"a", "b"}, []string{"b"})
	indexed := Index(data)

	mutuals := Filter(indexed, "mutuals")
	if !reflect.DeepEqual(mutuals, []string{"b"}) {
		t.Fatalf("mutuals=%v want=[b]", mutuals)
	}
	if Filter(indexed, "no-such-badge") != nil {
		t.Fatalf("unknown badge should select nothing")
	}
	for _, badgeName := range Names() {
		// exercising every switch arm; values are checked elsewhere
		_ = indexed[0].Badges.Has(badgeName)
	}
}
