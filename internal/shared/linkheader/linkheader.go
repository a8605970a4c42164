// Package linkheader reads pagination relations from an RFC 8288 style Link header,
// e.g. `<https://api.github.com/user/starred?page=2>; rel="next"`.
package linkheader

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	segmentRe = regexp.MustCompile(`^\s*<([^>]*)>\s*;(.*)$`)
	relRe     = regexp.MustCompile(`(?:^|;)\s*rel="([^"]+)"`)
)

// Parse maps each relation to the page number of its url. Segments without a url,
// a rel attribute or a numeric page query parameter are skipped.
func Parse(header string) map[string]int {
	ret := map[string]int{}
	if strings.TrimSpace(header) == "" {
		return ret
	}

	for _, segment := range strings.Split(header, ",") {
		m := segmentRe.FindStringSubmatch(segment)
		if m == nil {
			continue
		}

		// other attributes may go before or after rel
		rel := relRe.FindStringSubmatch(m[2])
		if rel == nil {
			continue
		}

		page, ok := pageFromURL(m[1])
		if !ok {
			continue
		}

		ret[rel[1]] = page
	}

	return ret
}

func pageFromURL(rawURL string) (int, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0, false
	}

	pageStr := u.Query().Get("page")
	if pageStr == "" {
		return 0, false
	}

	page, err := strconv.ParseUint(pageStr, 10, 31)
	if err != nil {
		return 0, false
	}

	return int(page), true
}
