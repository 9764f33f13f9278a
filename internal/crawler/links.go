package crawler

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Keywords that mark a link as worth following for happy hour details
var linkKeywords = []string{"happy", "hour", "special", "menu", "drink", "food", "deal", "event"}

// SelectSubpages returns up to MaxSubpages links from doc whose URL or
// anchor text mentions one of the crawl keywords, restricted to the
// homepage's host (or a subdomain of it), deduplicated in discovery order.
func SelectSubpages(doc *goquery.Document, home *url.URL) []string {
	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").EachWithBreak(func(i int, a *goquery.Selection) bool {
		resolved, err := home.Parse(a.AttrOr("href", ""))
		if err != nil {
			return true
		}
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return true
		}
		if !sameSite(resolved.Hostname(), home.Hostname()) {
			return true
		}
		if !matchesKeyword(resolved.String(), a.Text()) {
			return true
		}

		resolved.Fragment = ""
		link := resolved.String()
		if link == home.String() || seen[link] {
			return true
		}
		seen[link] = true
		links = append(links, link)
		return len(links) < MaxSubpages
	})

	return links
}

func matchesKeyword(href, anchor string) bool {
	href = strings.ToLower(href)
	anchor = strings.ToLower(anchor)
	for _, kw := range linkKeywords {
		if strings.Contains(href, kw) || strings.Contains(anchor, kw) {
			return true
		}
	}
	return false
}

// sameSite reports whether host is base itself or one of its subdomains
func sameSite(host, base string) bool {
	host = strings.ToLower(host)
	base = strings.ToLower(base)
	return host == base || strings.HasSuffix(host, "."+base)
}
