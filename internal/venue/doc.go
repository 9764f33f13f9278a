// Package venue provides types and functions for the bars and restaurants
// tracked by the happy hour pipeline.
//
// Each venue is assigned a slug derived from its display name, which serves
// as its identifier across all pipeline artifacts. Slugs must be unique
// within a run; duplicates are dropped first-seen-wins.
package venue
