package crawler

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"

	"github.com/denverhappyhour/pipeline/internal/venue"
)

const (
	// FetchTimeout bounds a single page load. A timeout is terminal for
	// that page; there is no retry.
	FetchTimeout = 15 * time.Second

	// MaxSubpages caps how many keyword-matched links are followed per venue.
	MaxSubpages = 5

	UserAgent = "denver-happyhour-pipeline/1.0 (github.com/denverhappyhour/pipeline)"

	// Marker phrases recognized by the extractor's sentinel short-circuit.
	NoWebsiteMarker   = "No website available"
	CrawlFailedMarker = "Unable to crawl website"
)

// Crawler fetches venue websites and assembles capture text
type Crawler struct {
	client *http.Client
}

// New creates a new Crawler instance
func New() *Crawler {
	return &Crawler{
		client: &http.Client{
			Timeout: FetchTimeout,
		},
	}
}

// Capture produces the single text artifact for a venue. It never fails:
// venues without a website, and venues whose site cannot be fetched, get a
// fixed sentinel body instead of page text.
func (c *Crawler) Capture(v *venue.Venue) string {
	var b strings.Builder
	writeHeader(&b, v)

	if v.Website == "" {
		b.WriteString(NoWebsiteMarker + "\n")
		return b.String()
	}

	home, err := url.Parse(v.Website)
	if err != nil {
		fmt.Fprintf(&b, "%s: %v\n", CrawlFailedMarker, err)
		return b.String()
	}

	doc, err := c.fetch(v.Website)
	if err != nil {
		log.Debug("homepage fetch failed", "venue", v.Slug, "error", err)
		fmt.Fprintf(&b, "%s: %v\n", CrawlFailedMarker, err)
		return b.String()
	}

	writeSection(&b, v.Website, VisibleText(doc))

	// A subpage failure is recorded inline and does not abort the rest
	for _, link := range SelectSubpages(doc, home) {
		sub, err := c.fetch(link)
		if err != nil {
			log.Debug("subpage fetch failed", "venue", v.Slug, "url", link, "error", err)
			writeSection(&b, link, fmt.Sprintf("[fetch failed: %v]", err))
			continue
		}
		writeSection(&b, link, VisibleText(sub))
	}

	return b.String()
}

// Sentinel synthesizes a capture body for a venue that has no usable page
// text, using the no-website marker when the venue has no site and the
// crawl-failed marker otherwise.
func Sentinel(v *venue.Venue, reason string) string {
	var b strings.Builder
	writeHeader(&b, v)
	if v.Website == "" {
		b.WriteString(NoWebsiteMarker + "\n")
		return b.String()
	}
	fmt.Fprintf(&b, "%s: %s\n", CrawlFailedMarker, reason)
	return b.String()
}

func writeHeader(b *strings.Builder, v *venue.Venue) {
	fmt.Fprintf(b, "VENUE: %s\nADDRESS: %s\nNEIGHBORHOOD: %s\n\n", v.Name, v.Address, v.Neighborhood)
}

func writeSection(b *strings.Builder, source, text string) {
	fmt.Fprintf(b, "=== SOURCE: %s ===\n%s\n\n", source, text)
}

// fetch retrieves a page and parses its HTML
func (c *Crawler) fetch(pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}
