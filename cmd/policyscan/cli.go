package main

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Dependencies holds shared services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run      RunCmd      `cmd:"" help:"Fetch and extract every configured section"`
	Single   SingleCmd   `cmd:"" help:"Fetch and extract one section"`
	Sections SectionsCmd `cmd:"" help:"List configured section names"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Targets     string        `short:"t" help:"Targets YAML file (defaults to the embedded section set)"`
	Sections    []string      `short:"s" help:"Limit the run to these section names (repeatable)"`
	IncludeMain bool          `default:"true" negatable:"" help:"Also fetch the overview page"`
	Format      string        `enum:"full,summary" default:"full" help:"Output projection"`
	Out         string        `short:"o" help:"Directory to store per-section JSON blobs"`
	DB          string        `help:"SQLite database path to store per-section JSON blobs"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64       `default:"1" help:"Max requests per second per host"`
	Timeout     time.Duration `default:"30s" help:"Per-fetch timeout"`
}

// SingleCmd is the "single" subcommand.
type SingleCmd struct {
	Section string        `arg:"" help:"Section name"`
	URL     string        `help:"Custom URL overriding the configured one"`
	Targets string        `short:"t" help:"Targets YAML file (defaults to the embedded section set)"`
	Timeout time.Duration `default:"30s" help:"Per-fetch timeout"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	Targets string `short:"t" help:"Targets YAML file (defaults to the embedded section set)"`
}
