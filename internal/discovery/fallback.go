package discovery

import (
	"sort"

	"github.com/denverhappyhour/pipeline/internal/venue"
)

type seed struct {
	name    string
	address string
	website string
}

// fallbackSeeds is a hand-curated stand-in dataset used when the live map
// search is unavailable or comes back suspiciously thin. It is not an
// authoritative venue registry.
var fallbackSeeds = map[string][]seed{
	"LoDo": {
		{"Wynkoop Brewing Company", "1634 18th St", "https://www.wynkoop.com"},
		{"Terminal Bar", "1701 Wynkoop St", "https://www.terminalbardenver.com"},
		{"Tap Fourteen", "1920 Blake St", "https://www.tapfourteen.com"},
		{"Blake Street Tavern", "2301 Blake St", "https://www.blakestreettavern.com"},
		{"Jackson's", "1520 20th St", "https://www.jacksonslodo.com"},
		{"ViewHouse Ballpark", "2015 Market St", "https://www.viewhouse.com"},
		{"Denver ChopHouse & Brewery", "1735 19th St", "https://www.chophouse.com"},
		{"The Celtic on Market", "1400 Market St", "https://www.celticonmarket.com"},
		{"Rhein Haus", "1415 Market St", "https://www.rheinhausdenver.com"},
		{"Star Bar", "2137 Larimer St", ""},
	},
	"RiNo": {
		{"Ratio Beerworks", "2920 Larimer St", "https://www.ratiobeerworks.com"},
		{"Our Mutual Friend Brewing", "2810 Larimer St", "https://www.omfbeer.com"},
		{"Epic Brewing Company", "3001 Walnut St", "https://www.epicbrewing.com"},
		{"Barcelona Wine Bar", "2900 Larimer St", "https://www.barcelonawinebar.com"},
		{"Odell Brewing RiNo", "2945 Larimer St", "https://www.odellbrewing.com"},
		{"Bierstadt Lagerhaus", "2875 Blake St", "https://www.bierstadtlager.com"},
		{"Improper City", "3201 Walnut St", "https://www.impropercity.com"},
		{"Finn's Manor", "2927 Larimer St", ""},
		{"The Matchbox", "2625 Larimer St", ""},
	},
}

// Fallback returns the curated venue list, neighborhoods in sorted order,
// seeds in curated order within each neighborhood.
func Fallback() []*venue.Venue {
	neighborhoods := make([]string, 0, len(fallbackSeeds))
	for n := range fallbackSeeds {
		neighborhoods = append(neighborhoods, n)
	}
	sort.Strings(neighborhoods)

	var venues []*venue.Venue
	for _, n := range neighborhoods {
		for _, s := range fallbackSeeds[n] {
			venues = append(venues, venue.New(s.name, s.address, n, s.website))
		}
	}
	return venues
}
