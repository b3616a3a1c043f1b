package feed

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"prosegate/internal/config"
)

// Item is one feed entry with its text extracted for gating.
type Item struct {
	ID        string
	Feed      string
	Title     string
	Link      string
	Text      string
	Published time.Time
}

type Fetcher interface {
	Fetch(ctx context.Context, source config.Feed) ([]Item, error)
}

type RSSFetcher struct {
	parser *gofeed.Parser
}

func NewRSSFetcher() *RSSFetcher {
	return &RSSFetcher{parser: gofeed.NewParser()}
}

func (f *RSSFetcher) Fetch(ctx context.Context, source config.Feed) ([]Item, error) {
	parsed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.Name, err)
	}

	now := time.Now()
	items := make([]Item, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		pub := now
		if it.PublishedParsed != nil {
			pub = *it.PublishedParsed
		} else if it.UpdatedParsed != nil {
			pub = *it.UpdatedParsed
		}

		// The gate needs the full body; prefer content over the
		// usually-truncated description.
		text := it.Content
		if text == "" {
			text = it.Description
		}
		text = stripHTML(text)
		if text == "" {
			continue
		}

		items = append(items, Item{
			ID:        itemID(it.Link),
			Feed:      source.Name,
			Title:     it.Title,
			Link:      it.Link,
			Text:      text,
			Published: pub,
		})
	}
	return items, nil
}

func itemID(link string) string {
	h := sha256.Sum256([]byte(link))
	return fmt.Sprintf("%x", h[:16])
}

// Tags that end a prose block. The gate's paragraph and sentence signals
// need those boundaries preserved as newlines.
var blockTags = map[string]bool{
	"p": true, "br": true, "div": true, "li": true, "blockquote": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// stripHTML drops tags, keeping block boundaries as blank lines so the
// gate's paragraph segmentation still sees the document's shape.
func stripHTML(s string) string {
	var (
		b     strings.Builder
		tag   strings.Builder
		inTag bool
	)
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
			tag.Reset()
		case r == '>':
			inTag = false
			name := tag.String()
			if i := strings.IndexAny(name, " \t\n"); i >= 0 {
				name = name[:i]
			}
			name = strings.ToLower(strings.TrimPrefix(name, "/"))
			name = strings.TrimSuffix(name, "/")
			if blockTags[name] {
				b.WriteString("\n\n")
			}
		case inTag:
			tag.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	var out []string
	for _, para := range strings.Split(b.String(), "\n\n") {
		para = strings.Join(strings.Fields(para), " ")
		if para != "" {
			out = append(out, para)
		}
	}
	return strings.Join(out, "\n\n")
}

type FetchResult struct {
	Items  []Item
	Errors []error
}

// FetchAll fetches every source concurrently under one context.
func FetchAll(ctx context.Context, sources []config.Feed) FetchResult {
	var (
		mu     sync.Mutex
		result FetchResult
		wg     sync.WaitGroup
	)

	fetcher := NewRSSFetcher()

	for _, src := range sources {
		wg.Add(1)
		go func(s config.Feed) {
			defer wg.Done()
			items, err := fetcher.Fetch(ctx, s)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Errors = append(result.Errors, err)
				return
			}
			result.Items = append(result.Items, items...)
		}(src)
	}

	wg.Wait()
	return result
}
