package types

// ItineraryStop is one time slot of a generated city itinerary.
type ItineraryStop struct {
	Time              string `json:"time"`
	Activity          string `json:"activity"`
	Location          string `json:"location"`
	Description       string `json:"description"`
	HistoricalContext string `json:"historicalContext"`
	CostEstimate      string `json:"costEstimate"`
	ProTip            string `json:"proTip"`
	BestPhotoSpot     string `json:"bestPhotoSpot"`
}
