package returntypes

import (
	"time"

	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}

func NewRepoInfo(r *provider.Repo) RepoInfo {
	return RepoInfo{
		Name:        r.Name,
		URL:         r.HTMLURL,
		Description: r.Description,
		Owner:       r.Owner,
		CreatedAt:   formatTime(r.CreatedAt),
		UpdatedAt:   formatTime(r.UpdatedAt),
		Visibility:  r.Visibility,
	}
}

func NewStarredRepoInfo(r *provider.StarredRepo) StarredRepoInfo {
	return StarredRepoInfo{
		RepoInfo:        NewRepoInfo(&r.Repo),
		StarredAt:       formatTime(r.StarredAt),
		Language:        r.Language,
		StargazersCount: r.StargazersCount,
		ForksCount:      r.ForksCount,
	}
}
