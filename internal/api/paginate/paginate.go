// Package paginate turns page query params and GitHub Link headers into
// listing cursors.
package paginate

import (
	"github.com/reporemover/reporemover-api/internal/shared/linkheader"
	"github.com/reporemover/reporemover-api/pkg/api/returntypes"
)

const (
	DefaultPerPage = 30
	MaxPerPage     = 100 // GitHub max
)

func Normalize(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}

	if perPage < 1 {
		perPage = DefaultPerPage
	} else if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return page, perPage
}

func FromLinkHeader(header string, currentPage int) returntypes.Pagination {
	return FromLinks(linkheader.Parse(header), currentPage)
}

func FromLinks(links map[string]int, currentPage int) returntypes.Pagination {
	p := returntypes.Pagination{
		CurrentPage: currentPage,
	}

	if next, ok := links["next"]; ok {
		p.HasNext = true
		p.NextPage = intPtr(next)
	}
	if prev, ok := links["prev"]; ok {
		p.HasPrev = true
		p.PrevPage = intPtr(prev)
	}
	if first, ok := links["first"]; ok {
		p.FirstPage = intPtr(first)
	}
	if last, ok := links["last"]; ok {
		p.LastPage = intPtr(last)
	}

	return p
}

func intPtr(v int) *int {
	return &v
}
