package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0o755)
}

func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

// WriteJSON pretty-prints a value to a file.
func WriteJSON(path string, value any) error {
	pretty, marshalErr := json.MarshalIndent(value, "", "  ")
	if marshalErr != nil {
		return fmt.Errorf("marshal json for %q: %w", path, marshalErr)
	}
	return WriteFile(path, pretty)
}

func PrintLine(line string) {
	fmt.Println(line)
}
