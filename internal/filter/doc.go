// Package filter narrows the final happy hour records the way the frontend
// does: by neighborhood, by weekday membership, and by case-insensitive
// substring match on the venue name. An empty or "all" criterion matches
// everything.
package filter
