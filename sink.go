package policyscan

import (
	"context"
	"strings"
	"unicode"
)

// Sink accepts named blobs and returns durable references. It is a
// best-effort side channel: sink failures are logged by the caller and never
// affect extraction results or session accounting.
type Sink interface {
	// Put stores data under collection/item and returns an opaque reference
	// to the stored blob.
	Put(ctx context.Context, collection, item string, data []byte, contentType string) (string, error)
}

// ItemKey derives a sink item key from a target name. Runes that are not
// letters, digits, underscores, spaces, or hyphens are dropped; runs of
// spaces and hyphens collapse to a single underscore; leading and trailing
// underscores are trimmed.
//
// "Fraud, Scams and Deceptive Practices" -> "Fraud_Scams_and_Deceptive_Practices"
func ItemKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteRune(' ')
		}
	}
	fields := strings.Fields(b.String())
	return strings.Trim(strings.Join(fields, "_"), "_")
}
