// Package locations holds the static shipping destination hierarchy backing
// the cascading country, state and city selects.
package locations

// Selection is the current country/state/city choice. Changing a parent
// resets every dependent child, so a selection can never point at a city
// outside its state or a state outside its country.
type Selection struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
}

// SetCountry replaces the country and resets state and city.
func (s Selection) SetCountry(country string) Selection {
	if country == s.Country {
		return s
	}
	return Selection{Country: country}
}

// SetState replaces the state and resets the city. The country is kept.
func (s Selection) SetState(state string) Selection {
	if state == s.State {
		return s
	}
	return Selection{Country: s.Country, State: state}
}

// SetCity replaces the city only.
func (s Selection) SetCity(city string) Selection {
	s.City = city
	return s
}

// Complete reports whether all three levels are chosen.
func (s Selection) Complete() bool {
	return s.Country != "" && s.State != "" && s.City != ""
}

// Countries lists all supported countries in display order.
func Countries() []string {
	out := make([]string, len(countryOrder))
	copy(out, countryOrder)
	return out
}

// StatesFor lists the states of a country in display order. Unknown
// countries yield an empty list.
func StatesFor(country string) []string {
	entry, ok := hierarchy[country]
	if !ok {
		return []string{}
	}
	out := make([]string, len(entry.stateOrder))
	copy(out, entry.stateOrder)
	return out
}

// CitiesFor lists the cities of a state in display order. Unknown pairs
// yield an empty list.
func CitiesFor(country, state string) []string {
	entry, ok := hierarchy[country]
	if !ok {
		return []string{}
	}
	cities, ok := entry.cities[state]
	if !ok {
		return []string{}
	}
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}

// Valid reports whether the selection names a real path through the
// hierarchy.
func Valid(s Selection) bool {
	entry, ok := hierarchy[s.Country]
	if !ok {
		return false
	}
	cities, ok := entry.cities[s.State]
	if !ok {
		return false
	}
	for _, city := range cities {
		if city == s.City {
			return true
		}
	}
	return false
}
