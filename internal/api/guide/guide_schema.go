package guide

import "google.golang.org/genai"

func stringField() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

// objectOf builds an object schema whose listed string fields are all
// required. extra adds non-string properties; callers mark them required.
func objectOf(fields []string, extra map[string]*genai.Schema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(fields)+len(extra))
	required := make([]string, 0, len(fields)+len(extra))
	for _, f := range fields {
		props[f] = stringField()
		required = append(required, f)
	}
	for name, s := range extra {
		props[name] = s
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   required,
	}
}

func arrayOf(items *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: items}
}

// ItinerarySchema describes the array of itinerary stops.
func ItinerarySchema() *genai.Schema {
	return arrayOf(objectOf([]string{
		"time", "activity", "location", "description",
		"historicalContext", "costEstimate", "proTip", "bestPhotoSpot",
	}, nil))
}

// SafetySchema describes the array of neighborhood safety records. rating is
// the only numeric field.
func SafetySchema() *genai.Schema {
	s := arrayOf(objectOf([]string{
		"neighborhood", "tip", "safeZones", "cautionAreas",
		"commonScams", "nightSafety", "emergencyInfo",
	}, map[string]*genai.Schema{
		"rating": {Type: genai.TypeNumber},
	}))
	s.Items.Required = []string{
		"neighborhood", "rating", "tip", "safeZones", "cautionAreas",
		"commonScams", "nightSafety", "emergencyInfo",
	}
	return s
}

func BitesSchema() *genai.Schema {
	return arrayOf(objectOf([]string{
		"name", "price", "mustTry", "dishHistory", "reason",
		"address", "mapsUrl", "bestTime", "type",
	}, nil))
}

func SocialSchema() *genai.Schema {
	return arrayOf(objectOf([]string{
		"activity", "vibe", "description", "totalCost", "groupSize",
		"meetingPoint", "duration", "included", "whatToBring",
	}, nil))
}

// OverviewSchema describes the single city overview object with its nested
// dishes, monuments and hidden gems.
func OverviewSchema() *genai.Schema {
	place := objectOf([]string{"placeName", "mapsUrl"}, nil)

	food := objectOf([]string{"name", "description", "history", "priceRange"},
		map[string]*genai.Schema{"recommendedPlaces": arrayOf(place)})
	food.Required = append(food.Required, "recommendedPlaces")

	monument := objectOf([]string{"name", "description", "whyVisit", "transport", "price"}, nil)
	gem := objectOf([]string{"name", "description"}, nil)

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"description":    stringField(),
			"typicalFoods":   arrayOf(food),
			"monuments":      arrayOf(monument),
			"transportTips":  stringField(),
			"localEtiquette": stringField(),
			"bestTime":       stringField(),
			"hiddenGems":     arrayOf(gem),
		},
		Required: []string{
			"description", "typicalFoods", "monuments", "transportTips",
			"localEtiquette", "bestTime", "hiddenGems",
		},
	}
}
