package venue

import (
	"strings"
	"time"
)

// Venue represents a bar or restaurant tracked by the pipeline
type Venue struct {
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Neighborhood string    `json:"neighborhood"`
	Website      string    `json:"website,omitempty"`
	DiscoveredAt time.Time `json:"discovered_at"`
}

// Slugify derives a venue identifier from its display name.
// Letters and digits are lowercased, every other run of characters
// collapses to a single hyphen, and leading/trailing hyphens are trimmed.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// New creates a new Venue with Slug and DiscoveredAt populated
func New(name, address, neighborhood, website string) *Venue {
	return &Venue{
		Slug:         Slugify(name),
		Name:         name,
		Address:      address,
		Neighborhood: neighborhood,
		Website:      website,
		DiscoveredAt: time.Now().UTC(),
	}
}

// Dedupe removes venues whose slug was already seen, preserving order.
// The first occurrence of a slug wins.
func Dedupe(venues []*Venue) []*Venue {
	seen := make(map[string]bool)
	unique := make([]*Venue, 0, len(venues))
	for _, v := range venues {
		if v.Slug == "" || seen[v.Slug] {
			continue
		}
		seen[v.Slug] = true
		unique = append(unique, v)
	}
	return unique
}
