package extract

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/auctioncrawl/internal/model"
)

const listingMarkup = `<ul class="Products__items">
<li><a class="Product__imageLink js-rapid-override" data-auction-id="x1" href="https://page.auctions.yahoo.co.jp/jp/auction/x1"><img src="1.jpg"></a></li>
<li><a class="Product__titleLink" href="https://page.auctions.yahoo.co.jp/jp/auction/x1">Title</a></li>
<li><a class="Product__imageLink" data-auction-id="x2" href="https://page.auctions.yahoo.co.jp/jp/auction/x2"><img src="2.jpg"></a></li>
<li><a class="Product__imageLink" href="https://page.auctions.yahoo.co.jp/jp/auction/x2"></a></li>
<li><a class="Product__imageLink" href=""></a></li>
</ul>`

// TestProductExtractor tests product link extraction.
func TestProductExtractor(t *testing.T) {
	t.Parallel()

	t.Run("extracts marked anchors in document order", func(t *testing.T) {
		t.Parallel()

		e, err := NewProductExtractor(DefaultProductMarker)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []model.Product{
			{URL: "https://page.auctions.yahoo.co.jp/jp/auction/x1"},
			{URL: "https://page.auctions.yahoo.co.jp/jp/auction/x2"},
			{URL: "https://page.auctions.yahoo.co.jp/jp/auction/x2"},
		}
		if diff := cmp.Diff(want, e.Extract(listingMarkup)); diff != "" {
			t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("anchors without the marker are ignored", func(t *testing.T) {
		t.Parallel()

		e, err := NewProductExtractor(DefaultProductMarker)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		markup := `<a class="Product__titleLink" href="https://example.com/p/1">x</a>` +
			`<a class="Other" data-x="1" href="https://example.com/p/2">y</a>`
		if got := e.Extract(markup); len(got) != 0 {
			t.Errorf("expected no products, got %v", got)
		}
	})

	t.Run("marker may appear anywhere in the class attribute", func(t *testing.T) {
		t.Parallel()

		e, err := NewProductExtractor(DefaultProductMarker)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		markup := `<a class="cl-noclick-log Product__imageLink--large" href="https://example.com/p/9">`
		got := e.Extract(markup)
		if len(got) != 1 || got[0].URL != "https://example.com/p/9" {
			t.Errorf("unexpected products: %v", got)
		}
	})

	t.Run("custom marker with regexp metacharacters is matched literally", func(t *testing.T) {
		t.Parallel()

		e, err := NewProductExtractor("item.link")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Marker() != "item.link" {
			t.Errorf("expected marker item.link, got %s", e.Marker())
		}

		markup := `<a class="itemXlink" href="/no"></a><a class="item.link" href="/yes"></a>`
		got := e.Extract(markup)
		if len(got) != 1 || got[0].URL != "/yes" {
			t.Errorf("unexpected products: %v", got)
		}
	})

	t.Run("empty markup returns no products", func(t *testing.T) {
		t.Parallel()

		e, err := NewProductExtractor(DefaultProductMarker)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := e.Extract("")
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", got)
		}
	})

	t.Run("empty marker is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewProductExtractor("")
		if !errors.Is(err, ErrEmptyMarker) {
			t.Errorf("expected ErrEmptyMarker, got %v", err)
		}
	})
}

// TestProductExtractorConcurrentUse runs one extractor from many goroutines.
func TestProductExtractorConcurrentUse(t *testing.T) {
	t.Parallel()

	e, err := NewProductExtractor(DefaultProductMarker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	counts := make([]int, 32)
	for i := range counts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counts[i] = len(e.Extract(listingMarkup))
		}()
	}
	wg.Wait()

	for i, n := range counts {
		if n != 3 {
			t.Errorf("goroutine %d: expected 3 products, got %d", i, n)
		}
	}
}
