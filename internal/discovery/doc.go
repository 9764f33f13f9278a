// Package discovery produces the venue list for a pipeline run.
//
// The primary path drives a headless browser against the public map search
// surface for a fixed pair of neighborhood queries, scrolling the results
// feed to load additional cards and parsing each card with best-effort
// selector heuristics. When the live path fails, or returns fewer venues
// than the acceptable minimum, a hand-curated fallback list is substituted.
// Either way the result is deduplicated by slug, first occurrence wins.
package discovery
