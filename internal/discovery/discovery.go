package discovery

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chromedp/chromedp"

	"github.com/denverhappyhour/pipeline/internal/venue"
)

const (
	// SearchURL is the map search surface queried by the live path.
	SearchURL = "https://www.google.com/maps/search/"

	// MinLiveResults is the smallest live result count accepted before the
	// curated fallback list is substituted.
	MinLiveResults = 10

	// MaxScrolls bounds the scroll-and-wait cycles per query.
	MaxScrolls = 8

	// NavigationTimeout bounds a single query's render, scrolls included.
	NavigationTimeout = 45 * time.Second

	// ScrollPause is how long the feed gets to load results after a scroll.
	ScrollPause = 2 * time.Second

	endOfResultsMarker = "You've reached the end of the list"
	feedSelector       = `div[role="feed"]`
)

// Query is one neighborhood search run against the map surface.
type Query struct {
	Neighborhood string
	Term         string
}

// Queries are the fixed neighborhood searches performed each run.
var Queries = []Query{
	{Neighborhood: "LoDo", Term: "bars in LoDo Denver"},
	{Neighborhood: "RiNo", Term: "bars in RiNo Denver"},
}

// Source produces venues from some discovery surface.
type Source interface {
	Discover(ctx context.Context) ([]*venue.Venue, error)
}

// Venues runs discovery against src, substituting the curated fallback list
// when the live path fails or returns fewer than MinLiveResults venues.
func Venues(ctx context.Context, src Source) []*venue.Venue {
	found, err := src.Discover(ctx)
	switch {
	case err != nil:
		log.Warn("live discovery failed, using curated fallback", "error", err)
		found = Fallback()
	case len(found) < MinLiveResults:
		log.Warn("live discovery came back thin, using curated fallback",
			"venues", len(found), "min", MinLiveResults)
		found = Fallback()
	}
	return venue.Dedupe(found)
}

// Browser is the live discovery source. It renders the map search feed in a
// headless browser and parses the result cards with a pluggable CardParser.
type Browser struct {
	parser      CardParser
	timeout     time.Duration
	maxScrolls  int
	scrollPause time.Duration
}

// NewBrowser creates a Browser with the default feed card parser and bounds.
func NewBrowser() *Browser {
	return &Browser{
		parser:      FeedCardParser{},
		timeout:     NavigationTimeout,
		maxScrolls:  MaxScrolls,
		scrollPause: ScrollPause,
	}
}

// Discover runs every configured query and returns the combined venue list.
// A failed query is logged and skipped; only when all queries fail does
// Discover return an error.
func (b *Browser) Discover(ctx context.Context) ([]*venue.Venue, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var venues []*venue.Venue
	failures := 0
	for _, q := range Queries {
		html, err := b.renderFeed(browserCtx, q)
		if err != nil {
			log.Warn("search query failed", "neighborhood", q.Neighborhood, "error", err)
			failures++
			continue
		}
		cards := ParseFeed(html, q.Neighborhood, b.parser)
		log.Debug("parsed result cards", "neighborhood", q.Neighborhood, "venues", len(cards))
		venues = append(venues, cards...)
	}

	if failures == len(Queries) {
		return nil, fmt.Errorf("all %d search queries failed", failures)
	}
	return venues, nil
}

// renderFeed navigates one query, scrolls the results feed until the
// end-of-results marker appears or the scroll budget runs out, and returns
// the feed's rendered markup.
func (b *Browser) renderFeed(ctx context.Context, q Query) (string, error) {
	tabCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()
	timeoutCtx, timeoutCancel := context.WithTimeout(tabCtx, b.timeout)
	defer timeoutCancel()

	searchURL := SearchURL + url.PathEscape(q.Term)
	if err := chromedp.Run(timeoutCtx,
		chromedp.Navigate(searchURL),
		chromedp.WaitVisible(feedSelector, chromedp.ByQuery),
	); err != nil {
		return "", fmt.Errorf("loading results feed: %w", err)
	}

	for i := 0; i < b.maxScrolls; i++ {
		var done bool
		if err := chromedp.Run(timeoutCtx,
			chromedp.Evaluate(scrollFeedJS, nil),
			chromedp.Sleep(b.scrollPause),
			chromedp.Evaluate(endOfResultsJS, &done),
		); err != nil {
			return "", fmt.Errorf("scrolling results feed: %w", err)
		}
		if done {
			break
		}
	}

	var html string
	if err := chromedp.Run(timeoutCtx,
		chromedp.OuterHTML(feedSelector, &html, chromedp.ByQuery),
	); err != nil {
		return "", fmt.Errorf("capturing feed markup: %w", err)
	}
	return html, nil
}

const scrollFeedJS = `(() => {
	const feed = document.querySelector('div[role="feed"]');
	if (feed) {
		feed.scrollBy(0, feed.scrollHeight);
	}
})()`

var endOfResultsJS = fmt.Sprintf(`document.body.innerText.includes(%q)`, endOfResultsMarker)
