// Package extract derives structured happy hour records from raw capture
// text.
//
// Extraction is deterministic and purely textual: an ordered battery of
// independent matchers recovers the applicable weekdays, the start and end
// of the happy hour window, and any food and drink deal phrases. Every
// field that finds no textual evidence is set to the explicit "unknown"
// sentinel, and captures carrying the crawler's sentinel markers skip the
// matchers entirely.
package extract
