package returntypes

import (
	"testing"
	"time"

	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
	"github.com/stretchr/testify/assert"
)

func TestNewStarredRepoInfoDefaults(t *testing.T) {
	info := NewStarredRepoInfo(&provider.StarredRepo{
		Repo: provider.Repo{
			Name:    "hello",
			HTMLURL: "https://github.com/octocat/hello",
			Owner:   "octocat",
		},
	})

	assert.Equal(t, "hello", info.Name)
	assert.Equal(t, "", info.Description)
	assert.Equal(t, "", info.Language)
	assert.Equal(t, 0, info.StargazersCount)
	assert.Equal(t, 0, info.ForksCount)
	assert.Equal(t, "", info.CreatedAt)
	assert.Equal(t, "", info.StarredAt)
}

func TestNewRepoInfoFormatsTimes(t *testing.T) {
	created := time.Date(2020, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3*3600))
	info := NewRepoInfo(&provider.Repo{
		Name:       "hello",
		Visibility: "private",
		CreatedAt:  created,
	})

	assert.Equal(t, "2020-01-02T00:04:05Z", info.CreatedAt)
	assert.Equal(t, "", info.UpdatedAt)
	assert.Equal(t, "private", info.Visibility)
}
