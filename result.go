package policyscan

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// Status indicates whether a page was fetched and extracted.
// It reflects the fetch outcome only: a page that fetched fine but parsed to
// near-nothing is still StatusSuccess here. Aggregate success accounting is
// a separate concern (see session.Runner).
type Status string

// Status values for ExtractionResult metadata.
const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Metadata describes the provenance of an extraction result.
type Metadata struct {
	TargetName  string    `json:"targetName"`
	URL         string    `json:"url"`
	ExtractedAt time.Time `json:"extractedAt"`
	Status      Status    `json:"status"`
	Error       string    `json:"error,omitempty"`
	ContentHash string    `json:"contentHash,omitempty"`
}

// Heading is a heading element found inside the content region.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Tag   string `json:"tag"`
}

// ListKind distinguishes unordered from ordered lists. The values match the
// source tag names so serialized output stays recognizable.
type ListKind string

// ListKind values.
const (
	ListUnordered ListKind = "ul"
	ListOrdered   ListKind = "ol"
)

// List is a list element with its non-empty item texts.
type List struct {
	Kind  ListKind `json:"kind"`
	Items []string `json:"items"`
}

// Link is a hyperlink with both visible text and a destination.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Content is the typed decomposition of a page's content region.
// All sequences are in document order.
type Content struct {
	Title      string    `json:"title"`
	RawText    string    `json:"rawText"`
	Headings   []Heading `json:"headings"`
	Paragraphs []string  `json:"paragraphs"`
	Lists      []List    `json:"lists"`
	Links      []Link    `json:"links"`
}

// Statistics holds counts derived from Content. They are always computed via
// Content.Statistics and never set independently.
type Statistics struct {
	CharacterCount int `json:"characterCount"`
	WordCount      int `json:"wordCount"`
	ParagraphCount int `json:"paragraphCount"`
	HeadingCount   int `json:"headingCount"`
}

// Statistics derives the statistics for the content. CharacterCount counts
// Unicode characters, not bytes, so thresholds behave the same on non-ASCII
// pages.
func (c *Content) Statistics() Statistics {
	return Statistics{
		CharacterCount: utf8.RuneCountInString(c.RawText),
		WordCount:      len(strings.Fields(c.RawText)),
		ParagraphCount: len(c.Paragraphs),
		HeadingCount:   len(c.Headings),
	}
}

// ExtractionResult is the outcome of processing a single target. It is
// created once per target per session and never mutated afterwards.
type ExtractionResult struct {
	Metadata   Metadata   `json:"metadata"`
	Content    Content    `json:"content"`
	Statistics Statistics `json:"statistics"`
}

// NewResult builds a successful extraction result for the target.
// Statistics are derived from the content.
func NewResult(target Target, at time.Time, content *Content) *ExtractionResult {
	return &ExtractionResult{
		Metadata: Metadata{
			TargetName:  target.Name,
			URL:         target.URL,
			ExtractedAt: at,
			Status:      StatusSuccess,
			ContentHash: contentHash(content.RawText),
		},
		Content:    *content,
		Statistics: content.Statistics(),
	}
}

// NewFailedResult builds the terminal failed result for the target. All
// structured fields stay empty and all statistics stay zero.
func NewFailedResult(target Target, at time.Time, err error) *ExtractionResult {
	return &ExtractionResult{
		Metadata: Metadata{
			TargetName:  target.Name,
			URL:         target.URL,
			ExtractedAt: at,
			Status:      StatusFailed,
			Error:       err.Error(),
		},
	}
}

// contentHash computes a hash of the raw text using xxhash.
func contentHash(text string) string {
	if text == "" {
		return ""
	}
	return fmt.Sprintf("%x", xxhash.Sum64String(text))
}
