// Package report declares the diagnostic records a parse run produces:
// warnings with stable codes, per-file expectations and the overall
// discovery summary.
package report

// Severity ranks a warning. Error means the archive cannot yield a
// usable result; warning and info describe degraded but usable outcomes.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Code is a stable machine-readable warning identifier.
type Code string

const (
	CodeHTMLFormat         Code = "HTML_FORMAT"
	CodeNotInstagramExport Code = "NOT_INSTAGRAM_EXPORT"
	CodeIncompleteExport   Code = "INCOMPLETE_EXPORT"
	CodeNoDataFiles        Code = "NO_DATA_FILES"
	CodeMissingFollowing   Code = "MISSING_FOLLOWING"
	CodeMissingFollowers   Code = "MISSING_FOLLOWERS"
	CodeEmptyFollowing     Code = "EMPTY_FOLLOWING"
	CodeEmptyFollowers     Code = "EMPTY_FOLLOWERS"
	CodeJSONParseError     Code = "JSON_PARSE_ERROR"
)

// Warning is one diagnostic accumulated during a parse. Fix, when set,
// is a suggested user action.
type Warning struct {
	Code     Code     `json:"code"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Fix      string   `json:"fix,omitempty"`
}

// FileExpectation records whether one catalogued export file was found
// and how many usable entries it yielded.
type FileExpectation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Found       bool   `json:"found"`
	ItemCount   int    `json:"itemCount"`
	FoundPath   string `json:"foundPath,omitempty"`
}

// Format classifies the export flavor detected in the archive.
type Format string

const (
	FormatJSON    Format = "json"
	FormatHTML    Format = "html"
	FormatUnknown Format = "unknown"
)

// Discovery is the per-parse diagnostic summary of what the archive
// looked like and which recognized files it contained.
type Discovery struct {
	Format            Format            `json:"format"`
	IsInstagramExport bool              `json:"isInstagramExport"`
	BasePath          string            `json:"basePath,omitempty"`
	Files             []FileExpectation `json:"files"`
}

// FirstError returns the first error-severity warning, or nil.
func FirstError(warnings []Warning) *Warning {
	for index := range warnings {
		if warnings[index].Severity == SeverityError {
			return &warnings[index]
		}
	}
	return nil
}
