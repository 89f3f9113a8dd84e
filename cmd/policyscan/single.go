package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/policyscan"
	"github.com/fwojciec/policyscan/goquery"
	polhttp "github.com/fwojciec/policyscan/http"
	"github.com/fwojciec/policyscan/session"
	polslog "github.com/fwojciec/policyscan/slog"
)

// Run executes the single command.
func (c *SingleCmd) Run(deps *Dependencies) error {
	cfg, err := LoadConfig(c.Targets)
	if err != nil {
		return err
	}

	targets, err := cfg.TargetSet()
	if err != nil {
		return err
	}

	var target policyscan.Target
	if c.URL != "" {
		target = policyscan.Target{Name: c.Section, URL: c.URL}
	} else {
		target, err = targets.Get(c.Section)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "available sections:\n  %s\n", strings.Join(targets.Names(), "\n  "))
			return err
		}
	}

	runner := &session.Runner{
		Fetcher:   polslog.NewFetcher(polhttp.NewFetcher(polhttp.WithTimeout(c.Timeout)), deps.Logger),
		Extractor: goquery.NewExtractor(),
		Logger:    deps.Logger,
	}

	result, err := runner.RunSingle(deps.Ctx, target)
	if err != nil {
		return err
	}

	return writeJSON(deps, result)
}
