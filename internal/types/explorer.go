package types

import "github.com/google/uuid"

// ExplorerView is a read-only snapshot of a browsing session.
type ExplorerView struct {
	SessionID      uuid.UUID        `json:"session_id"`
	Tab            Tab              `json:"tab"`
	City           string           `json:"city"`
	Hours          int              `json:"hours"`
	Loading        bool             `json:"loading"`
	LoadingMessage string           `json:"loading_message,omitempty"`
	Result         *QueryResult     `json:"result"`
	Sources        []SourceCitation `json:"sources"`
	Error          string           `json:"error,omitempty"`
	Generation     uint64           `json:"generation"`
	Suggestions    []string         `json:"suggestions,omitempty"`
}

// CityRequest is the body of a city submission.
type CityRequest struct {
	City string `json:"city"`
}

// HoursRequest is the body of an itinerary duration update.
type HoursRequest struct {
	Hours int `json:"hours"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
