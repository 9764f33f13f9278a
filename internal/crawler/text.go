package crawler

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Elements carrying scripting, chrome, or icon glyphs rather than venue copy
const strippedSelector = "script, style, noscript, nav, header, footer, iframe, svg, i"

// VisibleText extracts a page's human-readable text. Stripped elements are
// removed from a clone of the body, whitespace runs collapse to single
// spaces, and blank lines are dropped.
func VisibleText(doc *goquery.Document) string {
	body := doc.Find("body").Clone()
	body.Find(strippedSelector).Remove()

	var kept []string
	for _, line := range strings.Split(body.Text(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
