package returntypes

type Error struct {
	Error string `json:"error,omitempty"`
}

type RepoInfo struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	Visibility  string `json:"visibility"`
}

type StarredRepoInfo struct {
	RepoInfo

	StarredAt       string `json:"starredAt"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazersCount"`
	ForksCount      int    `json:"forksCount"`
}

// Pagination is a cursor over a listing. NextPage is set iff HasNext,
// PrevPage iff HasPrev.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
	NextPage    *int `json:"nextPage,omitempty"`
	PrevPage    *int `json:"prevPage,omitempty"`
	FirstPage   *int `json:"firstPage,omitempty"`
	LastPage    *int `json:"lastPage,omitempty"`
}

type RepoListResponse struct {
	Repos      []RepoInfo `json:"repos"`
	Pagination Pagination `json:"pagination"`
	TotalCount int        `json:"totalCount"`
}

type StarredRepoListResponse struct {
	Repos      []StarredRepoInfo `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

type RepoDeleteResult struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type BatchDeleteResponse struct {
	Results        []RepoDeleteResult `json:"results"`
	SucceededCount int                `json:"succeededCount"`
	FailedCount    int                `json:"failedCount"`
}

type StarStatus struct {
	Starred bool `json:"starred"`
}

type AuthorizedUser struct {
	Login          string `json:"login"`
	Name           string `json:"name"`
	AvatarURL      string `json:"avatarUrl"`
	ProviderUserID uint64 `json:"providerUserId"`
}

type CheckAuthResponse struct {
	User AuthorizedUser `json:"user"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type EmptyResponse struct{}
