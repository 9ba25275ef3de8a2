package analyze

import (
	"reflect"
	"testing"

	"instagram_audit/internal/report"
)

func TestInspect(t *testing.T) {
	structure := Inspect([]string{
		"connections/followers_and_following/following.json",
		"connections/followers_and_following/followers_1.json",
		"ads_information/ads_clicked.json",
		"media/photos/1.jpg",
		"index.html",
	})

	if !structure.HasJSONFiles || !structure.HasHTMLFiles {
		t.Fatalf("format flags wrong: %+v", structure)
	}
	if !structure.HasConnections || !structure.HasFollowersFolder {
		t.Fatalf("folder flags wrong: %+v", structure)
	}
	if structure.BasePath != "connections/followers_and_following" {
		t.Fatalf("basePath=%q", structure.BasePath)
	}
	wantFolders := []string{"connections", "ads_information", "media"}
	if !reflect.DeepEqual(structure.TopLevelFolders, wantFolders) {
		t.Fatalf("topLevelFolders=%v want=%v", structure.TopLevelFolders, wantFolders)
	}
}

func TestInspectCapsTopLevelFolders(t *testing.T) {
	paths := []string{
		"a/x", "b/x", "c/x", "d/x", "e/x", "f/x", "g/x",
	}
	structure := Inspect(paths)
	if len(structure.TopLevelFolders) != 5 {
		t.Fatalf("topLevelFolders=%d want=5", len(structure.TopLevelFolders))
	}
}

func TestTerminalDiagnosticOrdering(t *testing.T) {
	cases := []struct {
		name      string
		structure Structure
		wantCode  report.Code
		canParse  bool
	}{
		{
			name:      "html outranks structure",
			structure: Structure{HasHTMLFiles: true},
			wantCode:  report.CodeHTMLFormat,
			canParse:  false,
		},
		{
			name:      "html with json is not the html error",
			structure: Structure{HasHTMLFiles: true, HasJSONFiles: true},
			wantCode:  report.CodeNotInstagramExport,
			canParse:  false,
		},
		{
			name:      "neither folder",
			structure: Structure{HasJSONFiles: true},
			wantCode:  report.CodeNotInstagramExport,
			canParse:  false,
		},
		{
			name:      "connections without followers folder",
			structure: Structure{HasJSONFiles: true, HasConnections: true},
			wantCode:  report.CodeIncompleteExport,
			canParse:  true,
		},
		{
			name:      "structure fine but nothing usable",
			structure: Structure{HasJSONFiles: true, HasConnections: true, HasFollowersFolder: true},
			wantCode:  report.CodeNoDataFiles,
			canParse:  true,
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			diagnostic := testCase.structure.TerminalDiagnostic()
			if diagnostic.Code != testCase.wantCode {
				t.Fatalf("code=%s want=%s", diagnostic.Code, testCase.wantCode)
			}
			if diagnostic.Severity != report.SeverityError {
				t.Fatalf("severity=%s want=error", diagnostic.Severity)
			}
			if testCase.structure.CanParse() != testCase.canParse {
				t.Fatalf("canParse=%v want=%v", testCase.structure.CanParse(), testCase.canParse)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := (Structure{HasJSONFiles: true, HasHTMLFiles: true}).Format(); got != report.FormatJSON {
		t.Fatalf("format=%s want=json", got)
	}
	if got := (Structure{HasHTMLFiles: true}).Format(); got != report.FormatHTML {
		t.Fatalf("format=%s want=html", got)
	}
	if got := (Structure{}).Format(); got != report.FormatUnknown {
		t.Fatalf("format=%s want=unknown", got)
	}
}

func TestSniffHTML(t *testing.T) {
	byTitle := SniffHTML([]byte(`<html><head><title>Instagram Data Download</title></head><body></body></html>`))
	if !byTitle.IsInstagram || byTitle.Title != "Instagram Data Download" {
		t.Fatalf("sniff=%+v", byTitle)
	}

	byAnchor := SniffHTML([]byte(`<html><head><title>Followers</title></head><body><a href="https://www.instagram.com/someone">someone</a></body></html>`))
	if !byAnchor.IsInstagram {
		t.Fatalf("sniff=%+v", byAnchor)
	}

	unrelated := SniffHTML([]byte(`<html><head><title>Hello</title></head><body><a href="https://example.com">x</a></body></html>`))
	if unrelated.IsInstagram {
		t.Fatalf("sniff=%+v", unrelated)
	}
}
