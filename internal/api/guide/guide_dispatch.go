package guide

import (
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-viberoute/internal/types"
)

// PromptSpec pairs an instruction with the schema its answer must follow.
type PromptSpec struct {
	Kind   types.QueryKind
	Prompt string
	Schema *genai.Schema
}

var tabKinds = map[types.Tab]types.QueryKind{
	types.TabItinerary: types.KindItinerary,
	types.TabSafety:    types.KindSafety,
	types.TabBites:     types.KindBites,
	types.TabSocial:    types.KindSocial,
	types.TabOverview:  types.KindOverview,
	types.TabFood:      types.KindOverview,
	types.TabMonuments: types.KindOverview,
}

var specBuilders = map[types.QueryKind]func(q types.GuideQuery) PromptSpec{
	types.KindItinerary: func(q types.GuideQuery) PromptSpec {
		return PromptSpec{types.KindItinerary, BuildItineraryPrompt(q.City, q.Hours()), ItinerarySchema()}
	},
	types.KindSafety: func(q types.GuideQuery) PromptSpec {
		return PromptSpec{types.KindSafety, BuildSafetyPrompt(q.City), SafetySchema()}
	},
	types.KindBites: func(q types.GuideQuery) PromptSpec {
		return PromptSpec{types.KindBites, BuildBitesPrompt(q.City), BitesSchema()}
	},
	types.KindSocial: func(q types.GuideQuery) PromptSpec {
		return PromptSpec{types.KindSocial, BuildSocialPrompt(q.City), SocialSchema()}
	},
	types.KindOverview: func(q types.GuideQuery) PromptSpec {
		return PromptSpec{types.KindOverview, BuildOverviewPrompt(q.City), OverviewSchema()}
	},
}

// KindForTab resolves the query behind a tab. Navigation tabs (explore,
// menu) and unknown identifiers report false.
func KindForTab(tab types.Tab) (types.QueryKind, bool) {
	kind, ok := tabKinds[tab]
	return kind, ok
}

// IsDetailTab reports whether selecting tab triggers a model query.
func IsDetailTab(tab types.Tab) bool {
	_, ok := tabKinds[tab]
	return ok
}

// BuildSpec renders the prompt and schema for a query kind.
func BuildSpec(kind types.QueryKind, q types.GuideQuery) (PromptSpec, bool) {
	build, ok := specBuilders[kind]
	if !ok {
		return PromptSpec{}, false
	}
	return build(q), true
}
