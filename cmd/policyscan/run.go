package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/policyscan"
	"github.com/fwojciec/policyscan/fs"
	"github.com/fwojciec/policyscan/goquery"
	polhttp "github.com/fwojciec/policyscan/http"
	"github.com/fwojciec/policyscan/session"
	polslog "github.com/fwojciec/policyscan/slog"
	"github.com/fwojciec/policyscan/sqlite"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	cfg, err := LoadConfig(c.Targets)
	if err != nil {
		return err
	}

	targets, err := cfg.TargetSet()
	if err != nil {
		return err
	}
	targets, err = targets.Resolve(c.Sections)
	if err != nil {
		return err
	}

	sink, cleanup, err := c.sink(deps)
	if err != nil {
		return err
	}
	defer cleanup()

	runner := &session.Runner{
		Fetcher:     polslog.NewFetcher(polhttp.NewFetcher(polhttp.WithTimeout(c.Timeout)), deps.Logger),
		Extractor:   goquery.NewExtractor(),
		Sink:        sink,
		Limiter:     session.NewHostLimiter(c.RPS),
		Concurrency: c.Concurrency,
		Logger:      deps.Logger,
	}

	var opts session.Options
	if c.IncludeMain && cfg.OverviewURL != "" {
		opts.Overview = &policyscan.Target{Name: policyscan.OverviewKey, URL: cfg.OverviewURL}
	}

	progress := func(event session.ProgressEvent) {
		switch event.Type {
		case session.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", event.Completed, event.Total, event.Target)
		case session.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: failed\n", event.Completed, event.Total, event.Target)
		}
	}

	report, err := runner.Run(deps.Ctx, targets, opts, progress)
	if err != nil {
		return err
	}

	var payload any = report
	if c.Format == "summary" {
		payload = report.Summary()
	}
	return writeJSON(deps, payload)
}

// sink builds the configured sink, if any. The returned cleanup releases
// sink resources and is safe to call unconditionally.
func (c *RunCmd) sink(deps *Dependencies) (policyscan.Sink, func(), error) {
	noop := func() {}
	switch {
	case c.Out != "" && c.DB != "":
		return nil, noop, policyscan.Errorf(policyscan.EINVALID, "--out and --db are mutually exclusive")
	case c.Out != "":
		return polslog.NewSink(fs.NewSink(c.Out), deps.Logger), noop, nil
	case c.DB != "":
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			return nil, noop, err
		}
		return polslog.NewSink(sqlite.NewSink(db), deps.Logger), func() { _ = db.Close() }, nil
	default:
		return nil, noop, nil
	}
}

func writeJSON(deps *Dependencies, payload any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(payload)
}
