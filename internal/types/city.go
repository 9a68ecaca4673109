package types

// CityOverview is the general travel guide for a city. The overview, food and
// monuments tabs all render from the same record.
type CityOverview struct {
	Description    string        `json:"description"`
	TypicalFoods   []TypicalFood `json:"typicalFoods"`
	Monuments      []Monument    `json:"monuments"`
	TransportTips  string        `json:"transportTips"`
	LocalEtiquette string        `json:"localEtiquette"`
	BestTime       string        `json:"bestTime"`
	HiddenGems     []HiddenGem   `json:"hiddenGems"`
}

// TypicalFood is a local dish with a few real places serving it.
type TypicalFood struct {
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	History           string             `json:"history"`
	PriceRange        string             `json:"priceRange"`
	RecommendedPlaces []RecommendedPlace `json:"recommendedPlaces"`
}

type RecommendedPlace struct {
	PlaceName string `json:"placeName"`
	MapsURL   string `json:"mapsUrl"`
}

// Monument is a must-see landmark.
type Monument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	WhyVisit    string `json:"whyVisit"`
	Transport   string `json:"transport"`
	Price       string `json:"price"`
}

type HiddenGem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
