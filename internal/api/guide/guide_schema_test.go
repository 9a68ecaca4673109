package guide

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func propertyNames(s *genai.Schema) []string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Every property a record exposes must be required, recursively.
func assertAllRequired(t *testing.T, s *genai.Schema) {
	t.Helper()
	switch s.Type {
	case genai.TypeArray:
		require.NotNil(t, s.Items)
		assertAllRequired(t, s.Items)
	case genai.TypeObject:
		assert.ElementsMatch(t, propertyNames(s), s.Required)
		for _, p := range s.Properties {
			assertAllRequired(t, p)
		}
	}
}

func TestItinerarySchema(t *testing.T) {
	s := ItinerarySchema()
	require.Equal(t, genai.TypeArray, s.Type)
	require.Equal(t, genai.TypeObject, s.Items.Type)
	assert.ElementsMatch(t, []string{
		"time", "activity", "location", "description",
		"historicalContext", "costEstimate", "proTip", "bestPhotoSpot",
	}, s.Items.Required)
	for _, p := range s.Items.Properties {
		assert.Equal(t, genai.TypeString, p.Type)
	}
}

func TestSafetySchema(t *testing.T) {
	s := SafetySchema()
	require.Equal(t, genai.TypeArray, s.Type)
	assert.Len(t, s.Items.Required, 8)
	assert.Contains(t, s.Items.Required, "rating")
	assert.Equal(t, genai.TypeNumber, s.Items.Properties["rating"].Type)
	assert.Equal(t, genai.TypeString, s.Items.Properties["neighborhood"].Type)
}

func TestOverviewSchema(t *testing.T) {
	s := OverviewSchema()
	require.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, []string{
		"description", "typicalFoods", "monuments", "transportTips",
		"localEtiquette", "bestTime", "hiddenGems",
	}, s.Required)

	food := s.Properties["typicalFoods"].Items
	assert.Contains(t, food.Required, "recommendedPlaces")
	assert.ElementsMatch(t, []string{"placeName", "mapsUrl"}, food.Properties["recommendedPlaces"].Items.Required)
}

func TestSchemas_EveryFieldRequired(t *testing.T) {
	for name, s := range map[string]*genai.Schema{
		"itinerary": ItinerarySchema(),
		"safety":    SafetySchema(),
		"bites":     BitesSchema(),
		"social":    SocialSchema(),
		"overview":  OverviewSchema(),
	} {
		t.Run(name, func(t *testing.T) {
			assertAllRequired(t, s)
		})
	}
}
