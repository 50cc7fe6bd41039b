package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"speech-corpus/pkg/corpus"
)

// FeedBuilder turns a press-release RSS/Atom feed into a URL-map category.
// This covers sources that publish speeches through a known feed URL, so the
// catalog entry can be regenerated instead of hand-maintained.
type FeedBuilder struct {
	parser *gofeed.Parser
}

// NewFeedBuilder creates a feed builder with a default gofeed parser.
func NewFeedBuilder() *FeedBuilder {
	return &FeedBuilder{
		parser: gofeed.NewParser(),
	}
}

// CategoryFromFeed fetches the feed and builds a URL-map category from its
// items, keyed by sanitized item title plus ".txt". Items without a title or
// link are skipped. maxItems <= 0 means no limit.
func (b *FeedBuilder) CategoryFromFeed(ctx context.Context, feedURL string, maxItems int) (Category, error) {
	feed, err := b.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return Category{}, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	return b.categoryFromItems(feed.Items, maxItems), nil
}

// categoryFromItems maps feed items to filename -> URL entries.
func (b *FeedBuilder) categoryFromItems(items []*gofeed.Item, maxItems int) Category {
	urls := make(map[string]string, len(items))

	for _, item := range items {
		if item == nil {
			continue
		}
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		filename := corpus.SanitizeFilename(title) + ".txt"
		urls[filename] = link

		if maxItems > 0 && len(urls) >= maxItems {
			break
		}
	}

	return Category{URLs: urls}
}
