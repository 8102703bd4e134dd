// Package pagination builds the page-link controls for paginated listings.
package pagination

import (
	"net/url"
	"strconv"
)

// PageLink is one entry in a pagination control.
type PageLink struct {
	Label     string `json:"label"`
	URL       string `json:"url"`
	IsCurrent bool   `json:"is_current"`
}

// Compute returns one link per page needed to hold totalCount items,
// pageSize at a time. The links reuse baseURL, replacing only its "page"
// query parameter; every other parameter (search terms and the like) is
// preserved. A totalCount of zero yields no links. currentPage may point
// past the last page; the control is still generated and simply has no
// current entry.
func Compute(totalCount int64, pageSize int, currentPage int, baseURL string) []PageLink {
	if totalCount <= 0 || pageSize <= 0 {
		return nil
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))

	parsed, err := url.Parse(baseURL)
	if err != nil {
		// An unparsable base URL still gets a usable control; links fall
		// back to bare page queries.
		parsed = &url.URL{}
	}
	query := parsed.Query()

	links := make([]PageLink, 0, totalPages)
	for page := 1; page <= totalPages; page++ {
		query.Set("page", strconv.Itoa(page))
		parsed.RawQuery = query.Encode()
		links = append(links, PageLink{
			Label:     strconv.Itoa(page),
			URL:       parsed.String(),
			IsCurrent: page == currentPage,
		})
	}
	return links
}
