// Package policyscan retrieves a fixed set of named policy pages, extracts a
// normalized structured representation of each page's textual content, and
// aggregates per-page outcomes into a session report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package policyscan
