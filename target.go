package policyscan

// Target identifies a single named page to retrieve. The name is the
// target's identity within a session; the URL is where its content lives.
type Target struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Validate returns an error if the target contains invalid fields.
func (t Target) Validate() error {
	if t.Name == "" {
		return Errorf(EINVALID, "target name required")
	}
	if t.URL == "" {
		return Errorf(EINVALID, "target URL required for %q", t.Name)
	}
	return nil
}

// TargetSet is an ordered collection of targets with unique names.
// Order is caller-defined and preserved in reports.
type TargetSet struct {
	targets []Target
	byName  map[string]int
}

// NewTargetSet builds a TargetSet from the given targets, preserving order.
// Returns EINVALID if any target is invalid or a name repeats.
func NewTargetSet(targets []Target) (*TargetSet, error) {
	s := &TargetSet{
		targets: make([]Target, 0, len(targets)),
		byName:  make(map[string]int, len(targets)),
	}
	for _, t := range targets {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, ok := s.byName[t.Name]; ok {
			return nil, Errorf(EINVALID, "duplicate target name %q", t.Name)
		}
		s.byName[t.Name] = len(s.targets)
		s.targets = append(s.targets, t)
	}
	return s, nil
}

// Len returns the number of targets in the set.
func (s *TargetSet) Len() int {
	return len(s.targets)
}

// Targets returns the targets in their original order.
// The returned slice must not be modified.
func (s *TargetSet) Targets() []Target {
	return s.targets
}

// Get returns the target with the given name.
// Returns ENOTFOUND if no such target exists.
func (s *TargetSet) Get(name string) (Target, error) {
	i, ok := s.byName[name]
	if !ok {
		return Target{}, Errorf(ENOTFOUND, "target %q not found", name)
	}
	return s.targets[i], nil
}

// Names returns the target names in their original order.
func (s *TargetSet) Names() []string {
	names := make([]string, len(s.targets))
	for i, t := range s.targets {
		names[i] = t.Name
	}
	return names
}

// Resolve returns the subset of targets matching the requested names, in the
// set's original order. Unknown names are ignored, but if none of the
// requested names resolve the whole request is rejected with EINVALID so a
// misspelled subset fails loudly instead of producing an empty session.
func (s *TargetSet) Resolve(names []string) (*TargetSet, error) {
	if len(names) == 0 {
		return s, nil
	}
	requested := make(map[string]bool, len(names))
	for _, name := range names {
		requested[name] = true
	}
	var subset []Target
	for _, t := range s.targets {
		if requested[t.Name] {
			subset = append(subset, t)
		}
	}
	if len(subset) == 0 {
		return nil, Errorf(EINVALID, "no valid targets found in request")
	}
	return NewTargetSet(subset)
}
