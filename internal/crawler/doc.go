// Package crawler gathers raw website text for each venue.
//
// For a venue with a website the crawler fetches the homepage, extracts its
// visible text, and follows up to MaxSubpages same-site links whose URL or
// anchor text mentions a happy-hour-adjacent keyword. Every fetched page
// becomes one labeled section of the venue's capture text. Venues without a
// website, and venues whose site cannot be fetched, get a fixed sentinel
// body instead; no failure ever escapes a single venue's capture.
package crawler
