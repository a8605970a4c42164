package request

import "github.com/reporemover/reporemover-api/internal/shared/logutil"

type Repo struct {
	Owner string `request:",urlPart,"`
	Name  string `request:",urlPart,"`
}

func (r Repo) FullName() string {
	return r.Owner + "/" + r.Name
}

func (r Repo) FillLogContext(lctx logutil.Context) {
	lctx["repo"] = r.FullName()
}

type Page struct {
	Page    int `request:",urlParam,optional"`
	PerPage int `request:"per_page,urlParam,optional"`
}

func (p Page) FillLogContext(lctx logutil.Context) {
	if p.Page != 0 {
		lctx["page"] = p.Page
	}
	if p.PerPage != 0 {
		lctx["per_page"] = p.PerPage
	}
}
