package mock

import "github.com/fwojciec/policyscan"

var _ policyscan.ContentExtractor = (*Extractor)(nil)

// Extractor is a mock implementation of policyscan.ContentExtractor.
type Extractor struct {
	ExtractFn func(html string) (*policyscan.Content, error)
}

func (e *Extractor) Extract(html string) (*policyscan.Content, error) {
	return e.ExtractFn(html)
}
