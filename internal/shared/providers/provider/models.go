package provider

import "time"

type User struct {
	ID        int64
	Login     string
	Name      string
	AvatarURL string

	PublicRepos       int
	OwnedPrivateRepos int
}

// Repo is a provider repository with absent optional fields set to zero values.
type Repo struct {
	Name        string
	FullName    string
	HTMLURL     string
	Description string
	Owner       string
	Visibility  string // public|private|internal or empty
	IsPrivate   bool

	CreatedAt time.Time
	UpdatedAt time.Time

	Language        string
	StargazersCount int
	ForksCount      int
}

type StarredRepo struct {
	Repo
	StarredAt time.Time
}

type ListReposConfig struct {
	Affiliation string // owner|collaborator|organization_member
	Sort        string // created|updated|pushed|full_name
	Direction   string // asc|desc
	Page        int
	PerPage     int
}

type ListStarredConfig struct {
	Sort      string // created|updated
	Direction string // asc|desc
	Page      int
	PerPage   int
}

// RepoPage is one page of a listing, LinkHeader is the raw pagination header of the response.
type RepoPage struct {
	Repos      []Repo
	LinkHeader string
}

type StarredRepoPage struct {
	Repos      []StarredRepo
	LinkHeader string
}
