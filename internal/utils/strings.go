package utils

import "strings"

// ToLowerTrim is the username normalization applied everywhere: leading
// and trailing whitespace stripped, then lower-cased.
func ToLowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func StringsJoinComma(items []string) string {
	if len(items) == 0 {
		return ""
	}
	out := items[0]
	for index := 1; index < len(items); index++ {
		out += "," + items[index]
	}
	return out
}
