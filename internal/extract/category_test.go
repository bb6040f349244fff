package extract

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/auctioncrawl/internal/model"
)

// TestExtractCategories tests category extraction from list page markup.
func TestExtractCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
		want   []model.Category
	}{
		{
			name:   "empty markup returns no categories",
			markup: "",
			want:   []model.Category{},
		},
		{
			name: "anchors are returned in document order",
			markup: `<ul>
<li><a href="https://auctions.yahoo.co.jp/list1/jp/2084005069"><img src="x.png"><span>Books</span></a></li>
<li><a href="https://auctions.yahoo.co.jp/list1/jp/2084019001">
  <i class="icon"></i>
  <span>Music</span></a></li>
</ul>`,
			want: []model.Category{
				{ID: "2084005069", Name: "Books", URL: "https://auctions.yahoo.co.jp/list1/jp/2084005069"},
				{ID: "2084019001", Name: "Music", URL: "https://auctions.yahoo.co.jp/list1/jp/2084019001"},
			},
		},
		{
			name:   "url without digits is dropped",
			markup: `<a href="/category/list/abc"><span>Foo</span></a><a href="/category/list/7"><span>Bar</span></a>`,
			want: []model.Category{
				{ID: "7", Name: "Bar", URL: "/category/list/7"},
			},
		},
		{
			name:   "id is the rightmost digit run",
			markup: `<a href="/list1/jp/2024/12345"><span>Cars</span></a>`,
			want: []model.Category{
				{ID: "12345", Name: "Cars", URL: "/list1/jp/2024/12345"},
			},
		},
		{
			name:   "id ignores a non-digit suffix",
			markup: `<a href="/list1/jp/0-all.html"><span>All</span></a>`,
			want: []model.Category{
				{ID: "0", Name: "All", URL: "/list1/jp/0-all.html"},
			},
		},
		{
			name:   "duplicates are kept",
			markup: `<a href="/c/10"><span>A</span></a><a href="/c/10"><span>A</span></a>`,
			want: []model.Category{
				{ID: "10", Name: "A", URL: "/c/10"},
				{ID: "10", Name: "A", URL: "/c/10"},
			},
		},
		{
			name:   "unterminated anchor is not matched",
			markup: `<a href="/c/10"><span>Broken</span>`,
			want:   []model.Category{},
		},
		{
			name:   "anchor with extra attributes is not matched",
			markup: `<a class="nav" href="/c/10"><span>Styled</span></a>`,
			want:   []model.Category{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractCategories(tt.markup)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractCategories() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestExtractCategoriesCount checks that N well-formed anchors give N categories.
func TestExtractCategoriesCount(t *testing.T) {
	t.Parallel()

	markup := ""
	for i := range 25 {
		markup += `<li><a href="https://example.com/list/` + string(rune('a'+i)) + `/` + strconv.Itoa(i+1) + `"><span>c</span></a></li>` + "\n"
	}

	got := ExtractCategories(markup)
	if len(got) != 25 {
		t.Fatalf("expected 25 categories, got %d", len(got))
	}
	for i, c := range got {
		if c.ID != strconv.Itoa(i+1) {
			t.Errorf("category %d: expected id %s, got %s", i, strconv.Itoa(i+1), c.ID)
		}
	}
}

// TestCategoryID tests the rightmost-digit-run rule.
func TestCategoryID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"/list1/jp/2024/12345", "12345"},
		{"https://auctions.yahoo.co.jp/category/list/2084005069/", "2084005069"},
		{"/a1b22c333", "333"},
		{"/list1/jp/0-all.html", "0"},
		{"/category/12/detail", "12"},
		{"/category/list/abc", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CategoryID(tt.url); got != tt.want {
			t.Errorf("CategoryID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
