package main

import "fmt"

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	cfg, err := LoadConfig(c.Targets)
	if err != nil {
		return err
	}

	targets, err := cfg.TargetSet()
	if err != nil {
		return err
	}

	for _, t := range targets.Targets() {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", t.Name, t.URL)
	}

	return nil
}
