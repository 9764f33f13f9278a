package crawler

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFromString(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing test HTML: %v", err)
	}
	return doc
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parsing URL %q: %v", raw, err)
	}
	return u
}

func TestSelectSubpagesKeywordsAndScope(t *testing.T) {
	html := `<html><body>
		<a href="/happy-hour">Happy Hour</a>
		<a href="/about">About Us</a>
		<a href="/visit">Specials</a>
		<a href="https://other.example.net/menu">Menu elsewhere</a>
		<a href="https://events.starbar.example.com/">Events calendar</a>
		<a href="mailto:hello@starbar.example.com">Email our specials desk</a>
	</body></html>`
	home := mustParseURL(t, "https://starbar.example.com/")

	links := SelectSubpages(docFromString(t, html), home)

	want := []string{
		"https://starbar.example.com/happy-hour",
		"https://starbar.example.com/visit",
		"https://events.starbar.example.com/",
	}
	if len(links) != len(want) {
		t.Fatalf("expected %d links, got %d: %v", len(want), len(links), links)
	}
	for i, w := range want {
		if links[i] != w {
			t.Errorf("link %d = %q, want %q", i, links[i], w)
		}
	}

	for _, link := range links {
		host := mustParseURL(t, link).Hostname()
		if host != "starbar.example.com" && !strings.HasSuffix(host, ".starbar.example.com") {
			t.Errorf("link %q escapes the venue's site", link)
		}
	}
}

func TestSelectSubpagesCapAndDedup(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 10; i++ {
		b.WriteString(`<a href="/menu-` + string(rune('a'+i)) + `">Menu</a>`)
	}
	// Duplicates of the first link, one via fragment
	b.WriteString(`<a href="/menu-a">Menu again</a>`)
	b.WriteString(`<a href="/menu-a#drinks">Menu drinks</a>`)
	b.WriteString("</body></html>")

	home := mustParseURL(t, "https://starbar.example.com/")
	links := SelectSubpages(docFromString(t, b.String()), home)

	if len(links) != MaxSubpages {
		t.Fatalf("expected %d links, got %d: %v", MaxSubpages, len(links), links)
	}
	seen := make(map[string]bool)
	for _, link := range links {
		if seen[link] {
			t.Errorf("duplicate link selected: %q", link)
		}
		seen[link] = true
	}
}

func TestSelectSubpagesSkipsHomepage(t *testing.T) {
	html := `<html><body><a href="/">Home of Happy Hour</a><a href="/specials">Specials</a></body></html>`
	home := mustParseURL(t, "https://starbar.example.com/")

	links := SelectSubpages(docFromString(t, html), home)

	if len(links) != 1 || links[0] != "https://starbar.example.com/specials" {
		t.Fatalf("unexpected links: %v", links)
	}
}

func TestSameSite(t *testing.T) {
	tests := []struct {
		host     string
		base     string
		expected bool
	}{
		{"starbar.example.com", "starbar.example.com", true},
		{"events.starbar.example.com", "starbar.example.com", true},
		{"starbar.example.com", "events.starbar.example.com", false},
		{"other.example.net", "starbar.example.com", false},
		{"notstarbar.example.com", "starbar.example.com", false},
	}

	for _, tt := range tests {
		if got := sameSite(tt.host, tt.base); got != tt.expected {
			t.Errorf("sameSite(%q, %q) = %v, want %v", tt.host, tt.base, got, tt.expected)
		}
	}
}
