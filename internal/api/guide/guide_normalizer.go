package guide

import (
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/FACorreiaa/go-viberoute/internal/types"
)

// ResponseText joins the text parts of the first candidate. Thought parts are
// skipped. A nil response yields "".
func ResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// ExtractSources flattens the web grounding chunks of the first candidate
// into citations, keeping their order. It never returns nil.
func ExtractSources(resp *genai.GenerateContentResponse) []types.SourceCitation {
	sources := []types.SourceCitation{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return sources
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return sources
	}
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		sources = append(sources, types.SourceCitation{
			URI:   chunk.Web.URI,
			Title: chunk.Web.Title,
		})
	}
	return sources
}

// cleanJSON trims whitespace and a surrounding Markdown code fence.
func cleanJSON(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// NormalizeList parses a JSON array of records. The returned slice is never
// nil: missing, empty or non-array text yields an empty slice. Elements that
// do not decode into T are dropped and the rest are kept; the error then
// reports how many were lost.
func NormalizeList[T any](text string) ([]T, error) {
	s := cleanJSON(text)
	if s == "" {
		return []T{}, nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return []T{}, fmt.Errorf("failed to parse JSON array: %w", err)
	}
	out := make([]T, 0, len(raw))
	var firstErr error
	for _, elem := range raw {
		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = append(out, v)
	}
	if firstErr != nil {
		return out, fmt.Errorf("dropped %d of %d records: %w", len(raw)-len(out), len(raw), firstErr)
	}
	return out, nil
}

// NormalizeObject parses a single JSON record. Missing, empty or unparseable
// text yields the zero record.
func NormalizeObject[T any](text string) (T, error) {
	var out T
	s := cleanJSON(text)
	if s == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to parse JSON object: %w", err)
	}
	return out, nil
}
