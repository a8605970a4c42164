package fsutil

import (
	"os"
	"path/filepath"
)

// GetProjectRoot returns the nearest dir with go.mod up from the working dir:
// "go test" runs in a package dir.
func GetProjectRoot() string {
	if os.Getenv("GO_ENV") == "prod" {
		return "./"
	}

	wd, err := os.Getwd()
	if err != nil {
		return "./"
	}

	for dir := wd; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		if filepath.Dir(dir) == dir {
			return wd
		}
	}
}
