package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mmcdole/gofeed"
)

func TestCategoryFromFeed(t *testing.T) {
	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Press Releases</title>
    <item>
      <title>Remarks on Trade</title>
      <link>https://site.example/trade</link>
    </item>
    <item>
      <title>Floor Speech: Budget</title>
      <link>https://site.example/budget</link>
    </item>
  </channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rss))
	}))
	defer server.Close()

	category, err := NewFeedBuilder().CategoryFromFeed(context.Background(), server.URL, 0)
	if err != nil {
		t.Fatalf("CategoryFromFeed failed: %v", err)
	}

	if category.IsInline() {
		t.Fatal("Expected a URL-map category")
	}
	if len(category.URLs) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %+v", len(category.URLs), category.URLs)
	}
	if got := category.URLs["Remarks on Trade.txt"]; got != "https://site.example/trade" {
		t.Errorf("Unexpected trade entry, got URLs: %+v", category.URLs)
	}
	if got := category.URLs["Floor Speech Budget.txt"]; got != "https://site.example/budget" {
		t.Errorf("Expected sanitized budget entry, got URLs: %+v", category.URLs)
	}
}

func TestCategoryFromFeed_UnreachableFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := NewFeedBuilder().CategoryFromFeed(context.Background(), server.URL, 0); err == nil {
		t.Error("Expected an error for a feed that cannot be fetched")
	}
}

func TestCategoryFromItems(t *testing.T) {
	builder := NewFeedBuilder()

	items := []*gofeed.Item{
		{Title: `Senator's "Remarks": On Trade`, Link: "https://example.com/trade"},
		{Title: "Budget Speech", Link: "https://example.com/budget"},
		{Title: "", Link: "https://example.com/untitled"},
		{Title: "No Link"},
		nil,
	}

	category := builder.categoryFromItems(items, 0)

	if category.IsInline() {
		t.Fatal("Expected a URL-map category")
	}
	if len(category.URLs) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %+v", len(category.URLs), category.URLs)
	}

	// Colon and quotes are filesystem-invalid and sanitized away
	if got := category.URLs[`Senator's Remarks On Trade.txt`]; got != "https://example.com/trade" {
		t.Errorf("Unexpected sanitized entry, got URLs: %+v", category.URLs)
	}
	if got := category.URLs["Budget Speech.txt"]; got != "https://example.com/budget" {
		t.Errorf("Expected budget entry, got URLs: %+v", category.URLs)
	}
}

func TestCategoryFromItems_MaxItems(t *testing.T) {
	builder := NewFeedBuilder()

	items := []*gofeed.Item{
		{Title: "One", Link: "https://example.com/1"},
		{Title: "Two", Link: "https://example.com/2"},
		{Title: "Three", Link: "https://example.com/3"},
	}

	category := builder.categoryFromItems(items, 2)
	if len(category.URLs) != 2 {
		t.Errorf("Expected maxItems to cap entries at 2, got %d", len(category.URLs))
	}
}
