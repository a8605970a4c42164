package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetProjectRoot(t *testing.T) {
	t.Setenv("GO_ENV", "test")

	root := GetProjectRoot()
	_, err := os.Stat(filepath.Join(root, "go.mod"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "internal", "shared", "fsutil", "wd.go"))
	assert.NoError(t, err)
}
