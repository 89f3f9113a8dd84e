package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/policyscan"
	"github.com/fwojciec/policyscan/mock"
	polslog "github.com/fwojciec/policyscan/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		fetcher := polslog.NewFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) ([]byte, error) {
				return []byte("body"), nil
			},
		}, logger)

		body, err := fetcher.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "body", string(body))
		assert.Contains(t, buf.String(), "fetch")
		assert.Contains(t, buf.String(), "example.com")
	})

	t.Run("logs failure and passes the typed error through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		fetcher := polslog.NewFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) ([]byte, error) {
				return nil, &policyscan.FetchError{Kind: policyscan.FetchTimeout, URL: url}
			},
		}, logger)

		_, err := fetcher.Fetch(context.Background(), "https://example.com")

		var fetchErr *policyscan.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, policyscan.FetchTimeout, fetchErr.Kind)
		assert.Contains(t, buf.String(), "fetch failed")
	})
}
