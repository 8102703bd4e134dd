package pagination

import (
	"net/url"
	"testing"
)

func TestComputePageCount(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		pageSize  int
		current   int
		wantLinks int
	}{
		{"empty listing", 0, 10, 1, 0},
		{"exactly one page", 10, 10, 1, 1},
		{"partial last page", 25, 10, 2, 3},
		{"single item", 1, 10, 1, 1},
		{"current beyond last page", 25, 10, 9, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := Compute(tt.total, tt.pageSize, tt.current, "/quizzes")
			if len(links) != tt.wantLinks {
				t.Fatalf("got %d links, want %d", len(links), tt.wantLinks)
			}
		})
	}
}

func TestComputeMarksCurrentPage(t *testing.T) {
	links := Compute(25, 10, 2, "/quizzes")
	if len(links) != 3 {
		t.Fatalf("got %d links, want 3", len(links))
	}
	for i, link := range links {
		wantCurrent := i == 1
		if link.IsCurrent != wantCurrent {
			t.Errorf("link %q: IsCurrent = %v, want %v", link.Label, link.IsCurrent, wantCurrent)
		}
	}
	if links[0].Label != "1" || links[1].Label != "2" || links[2].Label != "3" {
		t.Errorf("labels = %q %q %q, want 1 2 3", links[0].Label, links[1].Label, links[2].Label)
	}
}

func TestComputePreservesOtherQueryParams(t *testing.T) {
	links := Compute(25, 10, 1, "/quizzes?search=capital+cuba&page=1")

	for _, link := range links {
		parsed, err := url.Parse(link.URL)
		if err != nil {
			t.Fatalf("unparsable link %q: %v", link.URL, err)
		}
		query := parsed.Query()
		if got := query.Get("search"); got != "capital cuba" {
			t.Errorf("link %q lost search param, got %q", link.URL, got)
		}
		if got := query.Get("page"); got != link.Label {
			t.Errorf("link %q: page param = %q, want %q", link.URL, got, link.Label)
		}
	}
}

func TestComputeBeyondLastPageHasNoCurrent(t *testing.T) {
	links := Compute(25, 10, 9, "/quizzes")
	for _, link := range links {
		if link.IsCurrent {
			t.Errorf("link %q marked current for out-of-range page", link.Label)
		}
	}
}
