// Package session drives fetching and extraction across a target set and
// aggregates per-target outcomes into a session report.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/policyscan"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultMinContentChars is the minimum extracted character count for a
// target to count as succeeded in the aggregate accounting. Pages that fetch
// fine but parse to near-nothing stay recorded as successful results while
// counting as failed in the session rate. The value is a heuristic carried
// over from the original deployment; override via Runner.MinContentChars.
const DefaultMinContentChars = 200

// DefaultConcurrency is the default worker pool size. Kept low to stay
// under the remote site's implicit rate tolerance.
const DefaultConcurrency = 4

// Runner orchestrates a session over a set of targets.
type Runner struct {
	Fetcher   policyscan.Fetcher
	Extractor policyscan.ContentExtractor

	// Sink, when set, receives every result as a JSON blob. Sink failures
	// are logged and never affect results or accounting.
	Sink policyscan.Sink

	// Limiter, when set, throttles fetches per host.
	Limiter policyscan.Limiter

	// Concurrency bounds the worker pool. Defaults to DefaultConcurrency.
	Concurrency int

	// MinContentChars overrides the aggregate success threshold.
	// Defaults to DefaultMinContentChars.
	MinContentChars int

	// Collection is the sink collection key. Defaults to the session ID.
	Collection string

	Logger *slog.Logger

	// Now is the clock used for timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Options configures a single session run.
type Options struct {
	// Overview, when set, is fetched before the targets and recorded under
	// policyscan.OverviewKey. It is never counted in the target totals.
	Overview *policyscan.Target
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a session run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Target    string
	Err       error
}

// ProgressFunc is a callback for reporting session progress.
type ProgressFunc func(event ProgressEvent)

// targetResult carries a worker's outcome back to the coordinator.
type targetResult struct {
	position int
	result   *policyscan.ExtractionResult
	sinkRef  string
}

// Run processes every target and returns the finalized report. Per-target
// failures degrade to failed results and never abort the run. Canceling the
// context stops scheduling new fetches; the returned report covers the
// targets processed so far.
func (r *Runner) Run(ctx context.Context, targets *policyscan.TargetSet, opts Options, progress ProgressFunc) (*policyscan.SessionReport, error) {
	if targets == nil || targets.Len() == 0 {
		return nil, policyscan.Errorf(policyscan.EINVALID, "no targets to process")
	}

	report := policyscan.NewSessionReport(uuid.New().String(), r.now())
	collection := r.Collection
	if collection == "" {
		collection = report.SessionID
	}

	if opts.Overview != nil {
		overview := *opts.Overview
		overview.Name = policyscan.OverviewKey
		result, ref := r.processTarget(ctx, overview, collection)
		if result != nil {
			report.Overview = result
			if ref != "" {
				report.SinkRefs[policyscan.OverviewKey] = ref
			}
		}
	}

	total := targets.Len()
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan targetResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, target := range targets.Targets() {
			// Stop issuing new fetches once the session is canceled;
			// in-flight workers finish on their own.
			if gctx.Err() != nil {
				break
			}
			i, target := i, target
			g.Go(func() error {
				result, ref := r.processTarget(gctx, target, collection)
				resultCh <- targetResult{position: i, result: result, sinkRef: ref}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results keyed by position so the report keeps input order
	// regardless of worker completion order.
	results := make([]*policyscan.ExtractionResult, total)
	refs := make([]string, total)
	var completed int
	for tr := range resultCh {
		completed++
		results[tr.position] = tr.result
		refs[tr.position] = tr.sinkRef

		if progress == nil || tr.result == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Target:    tr.result.Metadata.TargetName,
		}
		if tr.result.Metadata.Status == policyscan.StatusFailed {
			event.Type = ProgressFailed
		}
		progress(event)
	}

	for i, result := range results {
		if result == nil {
			continue // canceled before processing
		}
		report.Append(result)
		if refs[i] != "" {
			report.SinkRefs[result.Metadata.TargetName] = refs[i]
		}
	}

	report.Finalize(r.minContentChars())

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	return report, nil
}

// RunSingle processes one target through the same per-target path as Run and
// returns its result. Returns the context error if the run was canceled
// before the target was processed.
func (r *Runner) RunSingle(ctx context.Context, target policyscan.Target) (*policyscan.ExtractionResult, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	collection := r.Collection
	if collection == "" {
		collection = uuid.New().String()
	}
	result, _ := r.processTarget(ctx, target, collection)
	if result == nil {
		return nil, ctx.Err()
	}
	return result, nil
}

// processTarget fetches, extracts, and optionally sinks a single target.
// Returns a nil result only when the context was canceled before the fetch
// was issued.
func (r *Runner) processTarget(ctx context.Context, target policyscan.Target, collection string) (*policyscan.ExtractionResult, string) {
	now := r.now()

	if r.Limiter != nil {
		if host := urlHost(target.URL); host != "" {
			if err := r.Limiter.Wait(ctx, host); err != nil {
				return nil, ""
			}
		}
	}

	var result *policyscan.ExtractionResult
	body, err := r.Fetcher.Fetch(ctx, target.URL)
	if err != nil {
		result = policyscan.NewFailedResult(target, now, err)
	} else {
		content, err := r.Extractor.Extract(string(body))
		if err != nil {
			result = policyscan.NewFailedResult(target, now, err)
		} else {
			result = policyscan.NewResult(target, now, content)
		}
	}

	// The sink is a best-effort side channel invoked only after the result
	// is final; its outcome never feeds back into accounting.
	var ref string
	if r.Sink != nil {
		ref = r.sinkResult(ctx, collection, target, result)
	}

	return result, ref
}

// sinkResult forwards a result to the sink and returns the reference, or an
// empty string when the sink call failed.
func (r *Runner) sinkResult(ctx context.Context, collection string, target policyscan.Target, result *policyscan.ExtractionResult) string {
	payload, err := json.Marshal(result)
	if err != nil {
		r.logWarn("sink payload encoding failed", "target", target.Name, "error", err)
		return ""
	}
	ref, err := r.Sink.Put(ctx, collection, policyscan.ItemKey(target.Name), payload, "application/json")
	if err != nil {
		r.logWarn("sink put failed", "target", target.Name, "error", err)
		return ""
	}
	return ref
}

func (r *Runner) minContentChars() int {
	if r.MinContentChars > 0 {
		return r.MinContentChars
	}
	return DefaultMinContentChars
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *Runner) logWarn(msg string, args ...any) {
	if r.Logger == nil {
		return
	}
	r.Logger.Warn(msg, args...)
}

func urlHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
