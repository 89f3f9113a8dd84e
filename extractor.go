package policyscan

// ContentExtractor turns a raw HTML document into the typed content
// structure. Implementations locate the primary content region, strip
// boilerplate, and decompose what remains.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the structured content.
	// It is a pure function of its input: the same HTML always yields the
	// same content. A document with no usable content region yields
	// all-empty content, not an error.
	Extract(html string) (*Content, error)
}
