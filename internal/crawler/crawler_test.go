package crawler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/denverhappyhour/pipeline/internal/venue"
)

func testVenue(website string) *venue.Venue {
	v := venue.New("Star Bar", "2137 Larimer St", "LoDo", website)
	return v
}

func TestCaptureNoWebsite(t *testing.T) {
	text := New().Capture(testVenue(""))

	if !strings.Contains(text, NoWebsiteMarker) {
		t.Errorf("expected capture to contain %q, got:\n%s", NoWebsiteMarker, text)
	}
	if !strings.Contains(text, "VENUE: Star Bar") {
		t.Error("expected capture to carry venue metadata")
	}
	if strings.Contains(text, "=== SOURCE:") {
		t.Error("no-website capture should have no page sections")
	}
}

func TestCaptureUnreachableSite(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	website := srv.URL
	srv.Close()

	text := New().Capture(testVenue(website))

	if !strings.Contains(text, CrawlFailedMarker) {
		t.Errorf("expected capture to contain %q, got:\n%s", CrawlFailedMarker, text)
	}
	if !strings.Contains(text, "VENUE: Star Bar") {
		t.Error("expected capture to carry venue metadata")
	}
}

func TestCaptureHomepageAndSubpages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<html><body>
			<nav><a href="/happy-hour">Happy Hour</a><a href="/about">About</a></nav>
			<p>Welcome to Star Bar.</p>
			<a href="/menu">Menu</a>
			<a href="/broken-specials">Specials</a>
			<script>console.log("hidden")</script>
		</body></html>`))
	})
	mux.HandleFunc("/happy-hour", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>Happy Hour 3-6pm every day</p></body></html>`))
	})
	mux.HandleFunc("/menu", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>$5 wings and $4 drafts</p></body></html>`))
	})
	mux.HandleFunc("/broken-specials", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	text := New().Capture(testVenue(srv.URL))

	if !strings.Contains(text, "Welcome to Star Bar.") {
		t.Error("expected homepage text in capture")
	}
	if !strings.Contains(text, "Happy Hour 3-6pm every day") {
		t.Error("expected happy-hour subpage text in capture")
	}
	if !strings.Contains(text, "$5 wings and $4 drafts") {
		t.Error("expected menu subpage text in capture")
	}
	if strings.Contains(text, "console.log") {
		t.Error("script content leaked into capture")
	}

	// The failing subpage is recorded inline without aborting its siblings
	if !strings.Contains(text, "[fetch failed:") {
		t.Errorf("expected inline failure note for broken subpage, got:\n%s", text)
	}

	sections := strings.Count(text, "=== SOURCE:")
	if sections < 2 || sections > 1+MaxSubpages {
		t.Errorf("expected between 2 and %d sections, got %d", 1+MaxSubpages, sections)
	}

	// Homepage section comes first
	first := strings.Index(text, "=== SOURCE: "+srv.URL)
	if first == -1 {
		t.Fatal("missing homepage section label")
	}
}

func TestSentinel(t *testing.T) {
	noSite := Sentinel(testVenue(""), "skipped")
	if !strings.Contains(noSite, NoWebsiteMarker) {
		t.Errorf("expected %q in sentinel, got:\n%s", NoWebsiteMarker, noSite)
	}

	failed := Sentinel(testVenue("https://starbar.example.com"), "interrupted")
	if !strings.Contains(failed, CrawlFailedMarker) || !strings.Contains(failed, "interrupted") {
		t.Errorf("expected crawl-failed sentinel with reason, got:\n%s", failed)
	}
}

func TestVisibleTextStripsChrome(t *testing.T) {
	doc := docFromString(t, `<html><body>
		<nav>Site Nav</nav>
		<header>Banner</header>
		<p>Happy   Hour
		daily</p>
		<style>.x{color:red}</style>
		<footer>Footer</footer>
	</body></html>`)

	text := VisibleText(doc)

	for _, gone := range []string{"Site Nav", "Banner", "Footer", "color:red"} {
		if strings.Contains(text, gone) {
			t.Errorf("expected %q to be stripped, got:\n%s", gone, text)
		}
	}
	if !strings.Contains(text, "Happy Hour") {
		t.Errorf("expected collapsed visible text, got:\n%s", text)
	}
}
