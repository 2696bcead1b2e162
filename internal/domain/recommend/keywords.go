package recommend

// venueKeywords per-venue-type keyword table. A product survives the venue
// filter when its category, name or description contains any keyword for the
// declared venue type.
var venueKeywords = map[string][]string{
	"bar":         {"spirits", "beer", "cocktail", "liquor"},
	"restaurant":  {"wine", "champagne", "sparkling"},
	"fine dining": {"wine", "champagne", "sparkling", "premium"},
	"bistro":      {"wine", "beer", "sparkling"},
	"cafe":        {"coffee", "non alcoholic", "non_alcoholic", "soft"},
	"pub":         {"beer", "spirits", "cider", "liquor"},
	"club":        {"spirits", "cocktail", "champagne", "vodka"},
	"hotel":       {"wine", "spirits", "beer", "champagne"},
}

// cuisineKeywords per-cuisine-style keyword table, same mechanism as the
// venue filter.
var cuisineKeywords = map[string][]string{
	"italian":           {"wine", "prosecco", "vermouth", "amaro"},
	"french":            {"wine", "champagne", "cognac", "brandy"},
	"modern australian": {"wine", "gin", "craft"},
	"asian":             {"sake", "beer", "whisky", "rice"},
	"japanese":          {"sake", "whisky", "beer", "plum"},
	"mexican":           {"tequila", "mezcal", "beer", "agave"},
	"pub food":          {"beer", "cider", "spirits", "lager"},
	"seafood":           {"white wine", "sparkling", "champagne", "riesling"},
	"steakhouse":        {"red wine", "shiraz", "cabernet", "whisky"},
	"fine dining":       {"champagne", "wine", "premium", "vintage"},
}

// localityKeywords fixed additions to the location keyword set, alongside
// the profile's own city and state.
var localityKeywords = []string{"australian", "local", "regional"}
