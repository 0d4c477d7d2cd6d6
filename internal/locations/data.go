package locations

type countryEntry struct {
	stateOrder []string
	cities     map[string][]string
}

var countryOrder = []string{"Nigeria", "Ghana", "United Kingdom", "United States"}

var hierarchy = map[string]countryEntry{
	"Nigeria": {
		stateOrder: []string{"Lagos", "FCT Abuja", "Rivers", "Cross River", "Oyo", "Kano"},
		cities: map[string][]string{
			"Lagos":       {"Ikeja", "Lekki", "Victoria Island", "Surulere", "Yaba"},
			"FCT Abuja":   {"Garki", "Wuse", "Maitama", "Gwarinpa"},
			"Rivers":      {"Port Harcourt", "Obio-Akpor", "Bonny"},
			"Cross River": {"Calabar", "Ikom", "Ogoja"},
			"Oyo":         {"Ibadan", "Ogbomosho", "Oyo"},
			"Kano":        {"Kano", "Wudil"},
		},
	},
	"Ghana": {
		stateOrder: []string{"Greater Accra", "Ashanti", "Western"},
		cities: map[string][]string{
			"Greater Accra": {"Accra", "Tema", "Madina"},
			"Ashanti":       {"Kumasi", "Obuasi"},
			"Western":       {"Takoradi", "Tarkwa"},
		},
	},
	"United Kingdom": {
		stateOrder: []string{"England", "Scotland", "Wales"},
		cities: map[string][]string{
			"England":  {"London", "Manchester", "Birmingham", "Liverpool"},
			"Scotland": {"Glasgow", "Edinburgh"},
			"Wales":    {"Cardiff", "Swansea"},
		},
	},
	"United States": {
		stateOrder: []string{"New York", "Texas", "Georgia", "Maryland"},
		cities: map[string][]string{
			"New York": {"New York City", "Buffalo"},
			"Texas":    {"Houston", "Dallas", "Austin"},
			"Georgia":  {"Atlanta", "Savannah"},
			"Maryland": {"Baltimore", "Silver Spring"},
		},
	},
}
