package types

import (
	"encoding/json"
	"errors"
)

var (
	ErrCityRequired = errors.New("city is required")
	ErrInvalidHours = errors.New("duration in hours must be a positive integer")
)

// DefaultDurationHours is used when an itinerary query carries no duration.
const DefaultDurationHours = 4

// Tab identifies a screen of the guide. Detail tabs map onto a QueryKind.
type Tab string

const (
	TabExplore   Tab = "explore"
	TabMenu      Tab = "menu"
	TabOverview  Tab = "overview-detail"
	TabFood      Tab = "food-detail"
	TabMonuments Tab = "monuments-detail"
	TabItinerary Tab = "itinerary"
	TabSafety    Tab = "safety"
	TabBites     Tab = "bites"
	TabSocial    Tab = "social"
)

// QueryKind is one of the model queries backing the detail tabs.
type QueryKind string

const (
	KindItinerary QueryKind = "itinerary"
	KindSafety    QueryKind = "safety"
	KindBites     QueryKind = "bites"
	KindSocial    QueryKind = "social"
	KindOverview  QueryKind = "overview"
)

// GuideQuery is the input of every guide query. DurationHours is only read
// by itinerary queries.
type GuideQuery struct {
	City          string `json:"city"`
	DurationHours int    `json:"durationHours,omitempty"`
}

// Hours returns the requested duration, falling back to DefaultDurationHours.
func (q GuideQuery) Hours() int {
	if q.DurationHours <= 0 {
		return DefaultDurationHours
	}
	return q.DurationHours
}

// SourceCitation is a web source that grounded a model answer.
type SourceCitation struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// GuideResponse is the {data, sources} envelope every query funnels through.
type GuideResponse[T any] struct {
	Data    T                `json:"data"`
	Sources []SourceCitation `json:"sources"`
}

// QueryResult is the tagged union of all guide responses. Exactly one of the
// record fields matching Kind is set.
type QueryResult struct {
	Kind      QueryKind
	Itinerary []ItineraryStop
	Safety    []NeighborhoodSafety
	Bites     []Eatery
	Social    []SocialActivity
	Overview  *CityOverview
	Sources   []SourceCitation
}

// Data returns the record set selected by Kind.
func (r *QueryResult) Data() any {
	switch r.Kind {
	case KindItinerary:
		return r.Itinerary
	case KindSafety:
		return r.Safety
	case KindBites:
		return r.Bites
	case KindSocial:
		return r.Social
	case KindOverview:
		return r.Overview
	default:
		return nil
	}
}

func (r *QueryResult) MarshalJSON() ([]byte, error) {
	sources := r.Sources
	if sources == nil {
		sources = []SourceCitation{}
	}
	return json.Marshal(struct {
		Kind    QueryKind        `json:"kind"`
		Data    any              `json:"data"`
		Sources []SourceCitation `json:"sources"`
	}{
		Kind:    r.Kind,
		Data:    r.Data(),
		Sources: sources,
	})
}
