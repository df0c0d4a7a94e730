// Package cities holds the static directory of cities a transfer may be
// posted between.
package cities

import "sort"

var majorCities = []string{
	"New York", "London", "Tokyo", "Paris", "Berlin", "Moscow", "Beijing",
	"Shanghai", "Mumbai", "Delhi", "Bangkok", "Singapore", "Hong Kong",
	"Dubai", "Istanbul", "Cairo", "Lagos", "Johannesburg", "São Paulo",
	"Rio de Janeiro", "Buenos Aires", "Mexico City", "Toronto", "Sydney",
	"Melbourne", "Seoul", "Osaka", "Kuala Lumpur", "Jakarta", "Manila",
	"Ho Chi Minh City", "Hanoi", "Dhaka", "Karachi", "Tehran", "Baghdad",
	"Riyadh", "Tel Aviv", "Athens", "Rome", "Madrid", "Barcelona",
	"Amsterdam", "Brussels", "Vienna", "Prague", "Warsaw", "Stockholm",
	"Copenhagen", "Helsinki", "Oslo", "Zurich", "Geneva", "Milan",
	"Naples", "Lisbon", "Dublin", "Edinburgh", "Manchester", "Liverpool",
	"Birmingham", "Glasgow", "Cardiff", "Montreal", "Vancouver", "Calgary",
	"Chicago", "Los Angeles", "San Francisco", "Miami", "Boston",
	"Washington D.C.", "Atlanta", "Dallas", "Houston", "Phoenix",
	"Philadelphia", "San Diego", "Seattle", "Las Vegas", "Detroit",
}

// All returns the directory alphabetically sorted.
func All() []string {
	out := make([]string, len(majorCities))
	copy(out, majorCities)
	sort.Strings(out)
	return out
}
