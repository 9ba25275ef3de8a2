package utils

import (
	"reflect"
	"testing"
)

func TestNormalizeBadgeShorthand(t *testing.T) {
	got := NormalizeBadgeShorthand([]string{"-f", "x.zip", "-bg", "mutuals", "-bg=pending", "--badge=close"})
	want := []string{"-f", "x.zip", "--badge", "mutuals", "--badge=pending", "--badge=close"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestToLowerTrim(t *testing.T) {
	if got := ToLowerTrim("  UserOne "); got != "userone" {
		t.Fatalf("got=%q", got)
	}
}
