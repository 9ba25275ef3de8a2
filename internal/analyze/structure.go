// Package analyze classifies the shape of an uploaded archive before
// any file parsing happens, and decides which terminal diagnostic to
// surface when parsing cannot produce a usable result.
package analyze

import (
	"strings"

	"instagram_audit/internal/report"
)

const followersFolder = "followers_and_following"

// Structure is the top-level shape of an archive's member list.
type Structure struct {
	HasHTMLFiles       bool
	HasJSONFiles       bool
	HasConnections     bool
	HasFollowersFolder bool
	// BasePath is the prefix up to and including followers_and_following
	// for the first member found under it, empty otherwise.
	BasePath string
	// TopLevelFolders holds at most five distinct first path segments,
	// for diagnostics only.
	TopLevelFolders []string
}

// Inspect classifies a member path list. It never reads content.
func Inspect(memberPaths []string) Structure {
	var structure Structure
	seenFolders := make(map[string]struct{})
	for _, memberPath := range memberPaths {
		lowerPath := strings.ToLower(memberPath)
		if strings.HasSuffix(lowerPath, ".html") {
			structure.HasHTMLFiles = true
		}
		if strings.HasSuffix(lowerPath, ".json") {
			structure.HasJSONFiles = true
		}
		if strings.HasPrefix(lowerPath, "connections/") || strings.Contains(lowerPath, "/connections/") {
			structure.HasConnections = true
		}
		if markerIndex := strings.Index(lowerPath, followersFolder); markerIndex >= 0 {
			structure.HasFollowersFolder = true
			if structure.BasePath == "" {
				structure.BasePath = memberPath[:markerIndex+len(followersFolder)]
			}
		}
		if slashIndex := strings.Index(memberPath, "/"); slashIndex > 0 {
			folder := memberPath[:slashIndex]
			if _, seen := seenFolders[folder]; !seen && len(structure.TopLevelFolders) < 5 {
				seenFolders[folder] = struct{}{}
				structure.TopLevelFolders = append(structure.TopLevelFolders, folder)
			}
		}
	}
	return structure
}

// CanParse reports whether file-level parsing is worth attempting. An
// HTML-only archive or one without either expected folder fails fast.
func (s Structure) CanParse() bool {
	if s.HasHTMLFiles && !s.HasJSONFiles {
		return false
	}
	if !s.HasConnections && !s.HasFollowersFolder {
		return false
	}
	return true
}

// TerminalDiagnostic picks the error to surface when the archive yields
// no usable data. Evaluated in order, first match wins: the format
// error is the most actionable, so it outranks structural errors.
func (s Structure) TerminalDiagnostic() report.Warning {
	switch {
	case s.HasHTMLFiles && !s.HasJSONFiles:
		return report.Warning{
			Code:     report.CodeHTMLFormat,
			Severity: report.SeverityError,
			Message:  "this archive is the HTML flavor of the Instagram export and contains no JSON data",
			Fix:      "request the export again and choose JSON as the format",
		}
	case !s.HasConnections && !s.HasFollowersFolder:
		return report.Warning{
			Code:     report.CodeNotInstagramExport,
			Severity: report.SeverityError,
			Message:  "this archive does not look like an Instagram data export",
			Fix:      "upload the unmodified ZIP downloaded from Instagram's \"Download your information\" page",
		}
	case s.HasConnections && !s.HasFollowersFolder:
		return report.Warning{
			Code:     report.CodeIncompleteExport,
			Severity: report.SeverityError,
			Message:  "the export has a connections folder but no followers_and_following data",
			Fix:      "request the export again and include the \"Followers and following\" category",
		}
	default:
		return report.Warning{
			Code:     report.CodeNoDataFiles,
			Severity: report.SeverityError,
			Message:  "no recognized follower or following files were found in the archive",
			Fix:      "request a fresh export and upload it as downloaded",
		}
	}
}

// Format maps the structure to the discovery report's format label.
func (s Structure) Format() report.Format {
	switch {
	case s.HasJSONFiles:
		return report.FormatJSON
	case s.HasHTMLFiles:
		return report.FormatHTML
	default:
		return report.FormatUnknown
	}
}
