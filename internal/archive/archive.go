// Package archive gives read-only access to an export ZIP held in
// memory: member listing, candidate-path lookup and pattern matching.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"regexp"
	"sort"
)

// Archive is an indexed, fully loaded ZIP. Lookups never touch the
// underlying reader again, so all access is side-effect free.
type Archive struct {
	members map[string][]byte
	paths   []string
}

// New reads every member of the ZIP blob into memory. The only error
// condition is the container itself being unopenable or truncated;
// content-level problems are the caller's concern.
func New(archiveBytes []byte) (*Archive, error) {
	zipReader, openErr := zip.NewReader(bytes.NewReader(archiveBytes), int64(len(archiveBytes)))
	if openErr != nil {
		return nil, fmt.Errorf("open zip: %w", openErr)
	}

	loaded := &Archive{members: make(map[string][]byte)}
	for _, zipFile := range zipReader.File {
		if zipFile.FileInfo().IsDir() {
			continue
		}
		fileReader, openFileErr := zipFile.Open()
		if openFileErr != nil {
			return nil, fmt.Errorf("open zip entry %q: %w", zipFile.Name, openFileErr)
		}
		contentBytes, readErr := io.ReadAll(fileReader)
		fileReader.Close()
		if readErr != nil {
			return nil, fmt.Errorf("read zip entry %q: %w", zipFile.Name, readErr)
		}
		normalizedName := filepath.ToSlash(zipFile.Name)
		if _, seen := loaded.members[normalizedName]; !seen {
			loaded.paths = append(loaded.paths, normalizedName)
		}
		loaded.members[normalizedName] = contentBytes
	}
	sort.Strings(loaded.paths)
	return loaded, nil
}

// Paths returns every member path, sorted. Callers must not mutate the
// returned slice.
func (a *Archive) Paths() []string {
	return a.paths
}

// Read returns a member's content by exact path.
func (a *Archive) Read(memberPath string) ([]byte, bool) {
	content, found := a.members[memberPath]
	return content, found
}

// Find looks a filename up under each base path candidate in order and
// returns the first hit. An empty base path candidate means the archive
// root. Absence is reported, not an error.
func (a *Archive) Find(fileName string, basePaths []string) (string, []byte, bool) {
	for _, basePath := range basePaths {
		candidatePath := fileName
		if basePath != "" {
			candidatePath = path.Join(basePath, fileName)
		}
		if content, found := a.members[candidatePath]; found {
			return candidatePath, content, true
		}
	}
	return "", nil, false
}

// Match returns the sorted member paths matching the pattern.
func (a *Archive) Match(pattern *regexp.Regexp) []string {
	var matched []string
	for _, memberPath := range a.paths {
		if pattern.MatchString(memberPath) {
			matched = append(matched, memberPath)
		}
	}
	return matched
}
