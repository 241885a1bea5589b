package router

import (
	"strings"

	"github.com/charley4805/project-pretzel/pkg/assistant/session"
)

// Intent is the classified category of a user utterance. It determines which
// handler processes the turn.
type Intent string

const (
	IntentProjectInfo Intent = "project_info"
	IntentDocSearch   Intent = "doc_search"
	IntentCost        Intent = "cost"
	IntentBoardFoot   Intent = "board_foot"
	IntentSheet       Intent = "sheet"
	IntentMeasure     Intent = "measure"
	IntentChat        Intent = "chat"
)

// rule pairs a keyword set with the intent it selects. Rules are evaluated
// top-to-bottom and the first hit wins, so earlier rules dominate overlapping
// vocabulary ("cost of 40 sheets" is cost, not sheet).
type rule struct {
	intent   Intent
	keywords []string
}

var rules = []rule{
	{
		intent: IntentProjectInfo,
		keywords: []string{
			"project overview",
			"project summary",
			"about this project",
			"what is this project",
			"project info",
			"team",
			"members",
			"who is on this project",
			"who is on the team",
		},
	},
	{
		intent: IntentDocSearch,
		keywords: []string{
			"spec",
			"specs",
			"specification",
			"document",
			"documents",
			"docs",
			"plans",
			"blueprint",
			"rfi",
			"rfis",
			"change order",
			"submittal",
		},
	},
	{
		intent: IntentCost,
		keywords: []string{
			"cost",
			"price",
			"total",
			"material",
			"per sheet",
			"per board",
			"per bf",
			"$",
		},
	},
	{
		intent: IntentBoardFoot,
		keywords: []string{
			"board foot",
			"board feet",
			"bf",
		},
	},
	{
		intent: IntentSheet,
		keywords: []string{
			"sheet",
			"sheets",
			"drywall",
			"plywood",
			"osb",
			"panel",
			"panels",
			"sq ft",
			"sqft",
			"square feet",
			"sf",
		},
	},
	{
		intent: IntentMeasure,
		keywords: []string{
			"ft", "feet", "foot",
			"in", "inch", "inches",
			"'", "\"",
			"measurement",
			"convert",
			"stud",
			"2x4",
			"framing",
		},
	},
}

// Route classifies the latest user message. Matching is case-insensitive
// substring membership against each rule's keyword list, in strict priority
// order; anything that matches nothing falls through to chat.
func Route(text string) Intent {
	t := strings.ToLower(session.StripLabel(text))

	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(t, k) {
				return r.intent
			}
		}
	}
	return IntentChat
}
