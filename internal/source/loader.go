// Package source loads scene description text from disk.
package source

import (
	"fmt"
	"os"
)

// Load reads the named source file and returns its text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load source %s: %w", path, err)
	}
	return string(data), nil
}
