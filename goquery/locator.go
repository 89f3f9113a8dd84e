// Package goquery provides the CSS-selector-based implementation of content
// location and structured extraction.
package goquery

import (
	"github.com/PuerkitoBio/goquery"
)

// contentSelectors is the ordered fallback chain for locating the primary
// content region. The first matching selector wins. The order runs from
// semantic markup to known content class names; it trades occasional
// boilerplate inclusion for recall across heterogeneous page templates and
// is intentionally not configurable per call.
var contentSelectors = []string{
	"main",
	"article",
	`[role="main"]`,
	".content",
	".policy-content",
	".main-content",
}

// boilerplateSelector matches navigational substructures that are removed
// from the located region before extraction.
const boilerplateSelector = "nav, header, footer, aside"

// Locate finds the primary content region of the document by walking the
// selector fallback chain. When no selector matches it falls back to the
// document body; a document without a body yields an empty selection.
func Locate(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if region := doc.Find(selector).First(); region.Length() > 0 {
			return region
		}
	}
	return doc.Find("body").First()
}

// stripBoilerplate removes navigation, header, footer, and side-panel
// elements from the region so their text is excluded from extraction.
func stripBoilerplate(region *goquery.Selection) {
	region.Find(boilerplateSelector).Remove()
}
