package parser

import (
	"reflect"
	"testing"
)

func TestNormalizeEntryShapes(t *testing.T) {
	cases := []struct {
		name  string
		entry listEntry
		want  RawEntry
		ok    bool
	}{
		{
			name: "legacy string_list_data value",
			entry: listEntry{StringListData: []stringListItem{
				{Value: "UserOne", Href: "https://www.instagram.com/userone", Timestamp: 42},
			}},
			want: RawEntry{Username: "userone", Href: "https://www.instagram.com/userone", Timestamp: 42},
			ok:   true,
		},
		{
			name:  "current title shape",
			entry: listEntry{Title: "  UserTwo "},
			want:  RawEntry{Username: "usertwo"},
			ok:    true,
		},
		{
			name: "value wins over title",
			entry: listEntry{Title: "fallback", StringListData: []stringListItem{
				{Value: "primary"},
			}},
			want: RawEntry{Username: "primary"},
			ok:   true,
		},
		{
			name: "empty value falls back to title",
			entry: listEntry{Title: "Backup", StringListData: []stringListItem{
				{Href: "https://example.com", Timestamp: 7},
			}},
			want: RawEntry{Username: "backup", Href: "https://example.com", Timestamp: 7},
			ok:   true,
		},
		{
			name:  "whitespace-only username dropped",
			entry: listEntry{Title: "   "},
			ok:    false,
		},
		{
			name: "mixed case and whitespace normalized",
			entry: listEntry{StringListData: []stringListItem{
				{Value: "  UserOne "},
			}},
			want: RawEntry{Username: "userone"},
			ok:   true,
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			got, ok := normalizeEntry(testCase.entry)
			if ok != testCase.ok {
				t.Fatalf("ok=%v want=%v", ok, testCase.ok)
			}
			if ok && got != testCase.want {
				t.Fatalf("got=%+v want=%+v", got, testCase.want)
			}
		})
	}
}

func TestUniqueUsernamesFirstWins(t *testing.T) {
	entries := []listEntry{
		{StringListData: []stringListItem{{Value: "A", Timestamp: 1}}},
		{StringListData: []stringListItem{{Value: "b", Timestamp: 2}}},
		{StringListData: []stringListItem{{Value: " a ", Timestamp: 3}}},
		{Title: "   "},
	}
	got := uniqueUsernames(entries)
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestTimestampMapFirstSeenWins(t *testing.T) {
	entries := []listEntry{
		{StringListData: []stringListItem{{Value: "dup", Timestamp: 100}}},
		{StringListData: []stringListItem{{Value: "DUP", Timestamp: 200}}},
		{StringListData: []stringListItem{{Value: "other"}}},
	}
	got := timestampMap(entries)
	if len(got) != 2 {
		t.Fatalf("size=%d want=2: %v", len(got), got)
	}
	if got["dup"] != 100 {
		t.Fatalf("dup timestamp=%d want=100", got["dup"])
	}
	if got["other"] != 0 {
		t.Fatalf("absent timestamp should be zero, got %d", got["other"])
	}
}

func TestDecodeEntryListTaggedUnion(t *testing.T) {
	props := []string{"relationships_following"}

	bare, bareErr := decodeEntryList([]byte(`[{"title":"a"}]`), props)
	if bareErr != nil || len(bare) != 1 {
		t.Fatalf("bare array decode: entries=%d err=%v", len(bare), bareErr)
	}

	wrapped, wrappedErr := decodeEntryList([]byte(`{"relationships_following":[{"title":"a"},{"title":"b"}]}`), props)
	if wrappedErr != nil || len(wrapped) != 2 {
		t.Fatalf("wrapped decode: entries=%d err=%v", len(wrapped), wrappedErr)
	}

	if _, unknownErr := decodeEntryList([]byte(`{"something_else":[]}`), props); unknownErr == nil {
		t.Fatalf("unrecognized shape must fail closed")
	}

	if _, garbageErr := decodeEntryList([]byte(`not json`), props); garbageErr == nil {
		t.Fatalf("invalid json must fail")
	}
}
