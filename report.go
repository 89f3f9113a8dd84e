package policyscan

import "time"

// OverviewKey is the reserved result name for the optional overview page.
// It never collides with configured targets and is never counted in the
// aggregate target totals.
const OverviewKey = "main_page"

// SessionReport accumulates per-target results for one session and, once
// finalized, carries the aggregate success accounting. It is read-only after
// Finalize.
type SessionReport struct {
	SessionID        string              `json:"sessionId"`
	StartedAt        time.Time           `json:"startedAt"`
	TargetsTotal     int                 `json:"targetsTotal"`
	TargetsSucceeded int                 `json:"targetsSucceeded"`
	TargetsFailed    int                 `json:"targetsFailed"`
	SuccessRate      float64             `json:"successRate"`
	Overview         *ExtractionResult   `json:"overview,omitempty"`
	Results          []*ExtractionResult `json:"results"`
	SinkRefs         map[string]string   `json:"sinkRefs,omitempty"`

	byName map[string]int
}

// NewSessionReport creates an empty report for a session started at the
// given time.
func NewSessionReport(id string, startedAt time.Time) *SessionReport {
	return &SessionReport{
		SessionID: id,
		StartedAt: startedAt,
		SinkRefs:  make(map[string]string),
		byName:    make(map[string]int),
	}
}

// Append records a target result, preserving append order.
func (r *SessionReport) Append(result *ExtractionResult) {
	r.byName[result.Metadata.TargetName] = len(r.Results)
	r.Results = append(r.Results, result)
}

// Result returns the recorded result for a target name, or nil if the target
// was not processed. The overview page is addressable under OverviewKey.
func (r *SessionReport) Result(name string) *ExtractionResult {
	if name == OverviewKey {
		return r.Overview
	}
	i, ok := r.byName[name]
	if !ok {
		return nil
	}
	return r.Results[i]
}

// Succeeded reports whether a result counts as succeeded in the aggregate
// accounting: the fetch succeeded and the extracted content clears the
// minimum character threshold. This is deliberately distinct from the
// per-result Status, which reflects the fetch outcome alone.
func Succeeded(result *ExtractionResult, minChars int) bool {
	return result.Metadata.Status == StatusSuccess &&
		result.Statistics.CharacterCount > minChars
}

// Finalize computes the aggregate counters over the recorded results using
// the given success threshold. The overview result is not counted. A report
// with zero targets finalizes to a zero success rate.
func (r *SessionReport) Finalize(minChars int) {
	var succeeded int
	for _, result := range r.Results {
		if Succeeded(result, minChars) {
			succeeded++
		}
	}
	r.TargetsTotal = len(r.Results)
	r.TargetsSucceeded = succeeded
	r.TargetsFailed = r.TargetsTotal - succeeded
	if r.TargetsTotal > 0 {
		r.SuccessRate = float64(succeeded) / float64(r.TargetsTotal) * 100
	} else {
		r.SuccessRate = 0
	}
}

// SummaryEntry is the per-target slice of a summary projection. It carries
// status and statistics only, never content.
type SummaryEntry struct {
	Name           string `json:"name"`
	Status         Status `json:"status"`
	CharacterCount int    `json:"characterCount"`
	WordCount      int    `json:"wordCount"`
	ParagraphCount int    `json:"paragraphCount"`
	HeadingCount   int    `json:"headingCount"`
}

// SessionSummary is the summary projection of a report: aggregate counters
// plus per-target statistics, without raw text or structured content.
type SessionSummary struct {
	SessionID        string            `json:"sessionId"`
	StartedAt        time.Time         `json:"startedAt"`
	TargetsTotal     int               `json:"targetsTotal"`
	TargetsSucceeded int               `json:"targetsSucceeded"`
	TargetsFailed    int               `json:"targetsFailed"`
	SuccessRate      float64           `json:"successRate"`
	Overview         *SummaryEntry     `json:"overview,omitempty"`
	Results          []SummaryEntry    `json:"results"`
	SinkRefs         map[string]string `json:"sinkRefs,omitempty"`
}

// Summary returns the summary projection of the report. It is a read-only
// view: the underlying results are never pruned, so a later full view of the
// same report is still complete.
func (r *SessionReport) Summary() *SessionSummary {
	s := &SessionSummary{
		SessionID:        r.SessionID,
		StartedAt:        r.StartedAt,
		TargetsTotal:     r.TargetsTotal,
		TargetsSucceeded: r.TargetsSucceeded,
		TargetsFailed:    r.TargetsFailed,
		SuccessRate:      r.SuccessRate,
		Results:          make([]SummaryEntry, 0, len(r.Results)),
		SinkRefs:         r.SinkRefs,
	}
	if r.Overview != nil {
		entry := summaryEntry(r.Overview)
		s.Overview = &entry
	}
	for _, result := range r.Results {
		s.Results = append(s.Results, summaryEntry(result))
	}
	return s
}

func summaryEntry(result *ExtractionResult) SummaryEntry {
	return SummaryEntry{
		Name:           result.Metadata.TargetName,
		Status:         result.Metadata.Status,
		CharacterCount: result.Statistics.CharacterCount,
		WordCount:      result.Statistics.WordCount,
		ParagraphCount: result.Statistics.ParagraphCount,
		HeadingCount:   result.Statistics.HeadingCount,
	}
}
