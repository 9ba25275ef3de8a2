package utils

import "strings"

// NormalizeBadgeShorthand rewrites the -bg shorthand to --badge so
// cobra accepts it.
func NormalizeBadgeShorthand(args []string) []string {
	output := make([]string, 0, len(args))
	for _, original := range args {
		if original == "-bg" {
			output = append(output, "--badge")
			continue
		}
		if strings.HasPrefix(original, "-bg=") {
			output = append(output, "--badge="+original[len("-bg="):])
			continue
		}
		output = append(output, original)
	}
	return output
}
