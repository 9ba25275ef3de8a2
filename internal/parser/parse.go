package parser

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"instagram_audit/internal/analyze"
	"instagram_audit/internal/archive"
	"instagram_audit/internal/report"
	"instagram_audit/internal/specs"
)

// Parse opens the export ZIP and builds the unified dataset plus
// diagnostics. Recoverable conditions (missing files, malformed JSON in
// one member, empty lists) become warnings in the result; the returned
// error is reserved for the container itself being unreadable.
func Parse(archiveBytes []byte) (Result, error) {
	loaded, openErr := archive.New(archiveBytes)
	if openErr != nil {
		return Result{}, openErr
	}
	return parseArchive(loaded), nil
}

// ParseStrict is the error-returning companion for callers preferring
// failure as control flow: a result without minimal data becomes an
// error built from the first error-severity warning.
func ParseStrict(archiveBytes []byte) (Result, error) {
	result, parseErr := Parse(archiveBytes)
	if parseErr != nil {
		return Result{}, parseErr
	}
	if strictErr := StrictError(result); strictErr != nil {
		return result, strictErr
	}
	return result, nil
}

// StrictError converts a no-minimal-data result into an error, nil
// otherwise.
func StrictError(result Result) error {
	if result.HasMinimalData {
		return nil
	}
	if firstError := report.FirstError(result.Warnings); firstError != nil {
		return errors.New(firstError.Message)
	}
	return errors.New("export contains no usable follower data")
}

func parseArchive(loaded *archive.Archive) Result {
	result := Result{Data: NewParsedAll()}
	structure := analyze.Inspect(loaded.Paths())
	result.Discovery = report.Discovery{
		Format:            structure.Format(),
		IsInstagramExport: structure.HasConnections || structure.HasFollowersFolder,
		BasePath:          structure.BasePath,
	}

	if !structure.CanParse() {
		diagnostic := structure.TerminalDiagnostic()
		if diagnostic.Code == report.CodeHTMLFormat {
			enrichHTMLDiagnostic(&diagnostic, loaded)
		}
		result.Warnings = append(result.Warnings, diagnostic)
		result.Discovery.Files = missingExpectations()
		return result
	}

	result.Discovery.Files = append(result.Discovery.Files, parseFollowing(loaded, &result))
	result.Discovery.Files = append(result.Discovery.Files, parseFollowers(loaded, &result))
	for _, fileSpec := range specs.Optional {
		result.Discovery.Files = append(result.Discovery.Files, parseOptional(loaded, fileSpec, &result))
	}
	result.Discovery.Files = append(result.Discovery.Files, parseOptional(loaded, specs.PermanentRequests, &result))

	result.HasMinimalData = len(result.Data.Following) > 0 || len(result.Data.Followers) > 0
	if !result.HasMinimalData {
		result.Warnings = append(result.Warnings, structure.TerminalDiagnostic())
	}
	return result
}

// enrichHTMLDiagnostic sniffs the first HTML member so the wrong-format
// message can confirm the archive at least came from Instagram.
func enrichHTMLDiagnostic(diagnostic *report.Warning, loaded *archive.Archive) {
	for _, memberPath := range loaded.Paths() {
		if !strings.HasSuffix(strings.ToLower(memberPath), ".html") {
			continue
		}
		content, _ := loaded.Read(memberPath)
		if sniff := analyze.SniffHTML(content); sniff.IsInstagram {
			diagnostic.Message = "this is an Instagram export, but in the HTML format, which carries no JSON data"
		}
		return
	}
}

// missingExpectations marks every catalogued file as not found, for the
// fast-fail path where no member is ever read.
func missingExpectations() []report.FileExpectation {
	catalogued := specs.All()
	expectations := make([]report.FileExpectation, 0, len(catalogued))
	for _, fileSpec := range catalogued {
		expectations = append(expectations, report.FileExpectation{
			Name:        fileSpec.Name,
			Description: fileSpec.Description,
			Required:    fileSpec.Required,
		})
	}
	return expectations
}

// readSpecFile finds and decodes the first candidate filename of a spec
// across all base paths. A member that exists but cannot be decoded
// yields a JSON_PARSE_ERROR warning and is treated as absent content,
// though the expectation still records where it was found.
func readSpecFile(loaded *archive.Archive, fileSpec specs.FileSpec, result *Result) ([]listEntry, report.FileExpectation, bool) {
	expectation := report.FileExpectation{
		Name:        fileSpec.Name,
		Description: fileSpec.Description,
		Required:    fileSpec.Required,
	}
	for _, candidateName := range fileSpec.FileCandidates {
		foundPath, content, found := loaded.Find(candidateName, specs.BasePaths)
		if !found {
			continue
		}
		expectation.Found = true
		expectation.FoundPath = foundPath
		entries, decodeErr := decodeEntryList(content, fileSpec.PropCandidates)
		if decodeErr != nil {
			result.Warnings = append(result.Warnings, report.Warning{
				Code:     report.CodeJSONParseError,
				Severity: report.SeverityWarning,
				Message:  fmt.Sprintf("could not parse %s: %v", foundPath, decodeErr),
			})
			return nil, expectation, false
		}
		return entries, expectation, true
	}
	return nil, expectation, false
}

func parseFollowing(loaded *archive.Archive, result *Result) report.FileExpectation {
	entries, expectation, usable := readSpecFile(loaded, specs.Following, result)
	if !expectation.Found {
		result.Warnings = append(result.Warnings, report.Warning{
			Code:     report.CodeMissingFollowing,
			Severity: report.SeverityWarning,
			Message:  "following.json was not found; continuing with an empty following list",
			Fix:      "include the \"Followers and following\" category when requesting the export",
		})
		return expectation
	}
	if !usable {
		return expectation
	}
	usernames := uniqueUsernames(entries)
	if len(usernames) == 0 {
		result.Warnings = append(result.Warnings, report.Warning{
			Code:     report.CodeEmptyFollowing,
			Severity: report.SeverityInfo,
			Message:  "following.json was found but lists no accounts",
		})
	}
	for _, username := range usernames {
		result.Data.Following[username] = struct{}{}
	}
	result.Data.FollowingTimestamps = timestampMap(entries)
	expectation.ItemCount = len(usernames)
	return expectation
}

// parseFollowers unions every numbered followers file. The first file
// to mention a username wins its timestamp; scan order is the sorted
// member path order, so repeated parses agree.
func parseFollowers(loaded *archive.Archive, result *Result) report.FileExpectation {
	expectation := report.FileExpectation{
		Name:        specs.Followers.Name,
		Description: specs.Followers.Description,
		Required:    specs.Followers.Required,
	}

	matchedPaths := followerPaths(loaded)
	if len(matchedPaths) == 0 {
		result.Warnings = append(result.Warnings, report.Warning{
			Code:     report.CodeMissingFollowers,
			Severity: report.SeverityWarning,
			Message:  "no followers_<n>.json files were found; continuing with an empty followers list",
			Fix:      "include the \"Followers and following\" category when requesting the export",
		})
		return expectation
	}
	expectation.Found = true
	expectation.FoundPath = matchedPaths[0]

	for _, memberPath := range matchedPaths {
		content, _ := loaded.Read(memberPath)
		entries, decodeErr := decodeEntryList(content, specs.Followers.PropCandidates)
		if decodeErr != nil {
			result.Warnings = append(result.Warnings, report.Warning{
				Code:     report.CodeJSONParseError,
				Severity: report.SeverityWarning,
				Message:  fmt.Sprintf("could not parse %s: %v", memberPath, decodeErr),
			})
			continue
		}
		for _, entry := range entries {
			record, ok := normalizeEntry(entry)
			if !ok {
				continue
			}
			if _, duplicate := result.Data.Followers[record.Username]; duplicate {
				continue
			}
			result.Data.Followers[record.Username] = struct{}{}
			result.Data.FollowersTimestamps[record.Username] = record.Timestamp
		}
	}
	if len(result.Data.Followers) == 0 {
		result.Warnings = append(result.Warnings, report.Warning{
			Code:     report.CodeEmptyFollowers,
			Severity: report.SeverityInfo,
			Message:  "followers files were found but list no accounts",
		})
	}
	expectation.ItemCount = len(result.Data.Followers)
	return expectation
}

// followerPaths matches numbered followers files under each base path
// candidate, falling back to a bare pattern anywhere in the archive.
func followerPaths(loaded *archive.Archive) []string {
	seen := make(map[string]struct{})
	var matched []string
	for _, basePath := range specs.BasePaths {
		for _, memberPath := range loaded.Match(specs.FollowersPatternFor(basePath)) {
			if _, duplicate := seen[memberPath]; duplicate {
				continue
			}
			seen[memberPath] = struct{}{}
			matched = append(matched, memberPath)
		}
	}
	if len(matched) == 0 {
		matched = loaded.Match(specs.FollowersFallbackPattern)
	}
	sort.Strings(matched)
	return matched
}

func parseOptional(loaded *archive.Archive, fileSpec specs.FileSpec, result *Result) report.FileExpectation {
	entries, expectation, usable := readSpecFile(loaded, fileSpec, result)
	if !usable {
		// absence of an optional file is normal, never a warning
		return expectation
	}
	timestamps := timestampMap(entries)
	expectation.ItemCount = len(timestamps)
	switch fileSpec.Key {
	case "pending":
		result.Data.PendingSent = timestamps
	case "permanent":
		result.Data.PermanentRequests = timestamps
	case "restricted":
		result.Data.Restricted = timestamps
	case "close":
		result.Data.CloseFriends = timestamps
	case "unfollowed":
		result.Data.Unfollowed = timestamps
	case "dismissed":
		result.Data.DismissedSuggestions = timestamps
	}
	return expectation
}
