package types

import (
	"bytes"
	"fmt"
	"strconv"
)

// Spot is a static point of interest served by the demo endpoint.
type Spot struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Price       string  `json:"price"`
	Safety      int     `json:"safety"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lng"`
	Description string  `json:"description"`
}

// NeighborhoodSafety is the safety breakdown of a single area of a city.
// Rating goes from 1 (avoid) to 10 (very safe).
type NeighborhoodSafety struct {
	Neighborhood  string  `json:"neighborhood"`
	Rating        Rating  `json:"rating"`
	Tip           string  `json:"tip"`
	SafeZones     string  `json:"safeZones"`
	CautionAreas  string  `json:"cautionAreas"`
	CommonScams   string  `json:"commonScams"`
	NightSafety   string  `json:"nightSafety"`
	EmergencyInfo string  `json:"emergencyInfo"`
}

// Rating is a numeric score. Models sometimes quote it, so both 7 and "7"
// decode to the same value; it always encodes as a number.
type Rating float64

func (r *Rating) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(b, `"`))
	if s == "" {
		*r = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid rating %s: %w", b, err)
	}
	*r = Rating(f)
	return nil
}

// Eatery is a cheap, non-touristic place where locals eat.
type Eatery struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	MustTry     string `json:"mustTry"`
	DishHistory string `json:"dishHistory"`
	Reason      string `json:"reason"`
	Address     string `json:"address"`
	MapsURL     string `json:"mapsUrl"`
	BestTime    string `json:"bestTime"`
	Type        string `json:"type"`
}

// SocialActivity is a group tour or social event.
type SocialActivity struct {
	Activity     string `json:"activity"`
	Vibe         string `json:"vibe"`
	Description  string `json:"description"`
	TotalCost    string `json:"totalCost"`
	GroupSize    string `json:"groupSize"`
	MeetingPoint string `json:"meetingPoint"`
	Duration     string `json:"duration"`
	Included     string `json:"included"`
	WhatToBring  string `json:"whatToBring"`
}
