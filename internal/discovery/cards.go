package discovery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/denverhappyhour/pipeline/internal/venue"
)

// CardParser turns one rendered result card into a venue. Implementations
// tolerate a missing address or website; a card with no readable name
// yields nil and is skipped.
type CardParser interface {
	Parse(neighborhood string, card *goquery.Selection) *venue.Venue
}

// ParseFeed extracts venues from rendered feed markup using the given parser.
func ParseFeed(html, neighborhood string, parser CardParser) []*venue.Venue {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var venues []*venue.Venue
	doc.Find(`div[role="article"]`).Each(func(i int, card *goquery.Selection) {
		if v := parser.Parse(neighborhood, card); v != nil {
			venues = append(venues, v)
		}
	})
	return venues
}

// FeedCardParser is the default CardParser for the map search feed. The
// selectors here track the rendered feed markup and are best-effort; swap
// the parser out rather than threading new selectors through the pipeline.
type FeedCardParser struct{}

// Parse reads name, address, and website from a result card. The name comes
// from the card's aria-label (or its first labeled link); the address is the
// first span that looks like a street address; the website is the first
// outbound link that leaves the map surface.
func (FeedCardParser) Parse(neighborhood string, card *goquery.Selection) *venue.Venue {
	name := strings.TrimSpace(card.AttrOr("aria-label", ""))
	if name == "" {
		name = strings.TrimSpace(card.Find("a[href]").First().AttrOr("aria-label", ""))
	}
	if name == "" {
		return nil
	}

	var address string
	card.Find("span").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); looksLikeAddress(text) {
			address = text
			return false
		}
		return true
	})

	var website string
	card.Find("a[href]").EachWithBreak(func(i int, a *goquery.Selection) bool {
		if href := a.AttrOr("href", ""); isOutboundWebsite(href) {
			website = href
			return false
		}
		return true
	})

	return venue.New(name, address, neighborhood, website)
}

var addressPattern = regexp.MustCompile(`^\d+\s+\S+`)

func looksLikeAddress(text string) bool {
	return len(text) < 80 && addressPattern.MatchString(text)
}

// isOutboundWebsite reports whether href points off the map surface, which
// is how a card links the venue's own site.
func isOutboundWebsite(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if host == "" || host == "google.com" || strings.HasSuffix(host, ".google.com") {
		return false
	}
	return true
}
