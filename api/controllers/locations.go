package controllers

import (
	"net/http"

	"github.com/calabarlabs/storefront-backend/api/responses"
	"github.com/calabarlabs/storefront-backend/internal/locations"
)

// LocationCountries lists shipping destination countries.
func LocationCountries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"countries": locations.Countries()})
	}
}

// LocationStates lists the states of ?country=. Unknown countries get an
// empty list, matching a select with nothing to offer.
func LocationStates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		country := r.URL.Query().Get("country")
		responses.WriteSuccess(w, map[string]any{
			"country": country,
			"states":  locations.StatesFor(country),
		})
	}
}

// LocationCities lists the cities of ?country=&state=.
func LocationCities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		country := r.URL.Query().Get("country")
		state := r.URL.Query().Get("state")
		responses.WriteSuccess(w, map[string]any{
			"country": country,
			"state":   state,
			"cities":  locations.CitiesFor(country, state),
		})
	}
}
