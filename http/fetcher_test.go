package http_test

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/policyscan"
	polhttp "github.com/fwojciec/policyscan/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body and sends identifying header", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("<html><body>ok</body></html>"))
		}))
		defer srv.Close()

		fetcher := polhttp.NewFetcher()
		body, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>ok</body></html>", string(body))
		assert.Contains(t, gotUA, "Mozilla/5.0")
	})

	t.Run("non-success status is a typed failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			nethttp.NotFound(w, r)
		}))
		defer srv.Close()

		fetcher := polhttp.NewFetcher()
		_, err := fetcher.Fetch(context.Background(), srv.URL)

		var fetchErr *policyscan.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, policyscan.FetchNonSuccessStatus, fetchErr.Kind)
		assert.Equal(t, 404, fetchErr.StatusCode)
		assert.Contains(t, err.Error(), "NonSuccessStatus")
	})

	t.Run("slow server yields a timeout", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			time.Sleep(500 * time.Millisecond)
		}))
		defer srv.Close()

		fetcher := polhttp.NewFetcher(polhttp.WithTimeout(50 * time.Millisecond))
		_, err := fetcher.Fetch(context.Background(), srv.URL)

		var fetchErr *policyscan.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, policyscan.FetchTimeout, fetchErr.Kind)
	})

	t.Run("canceled context yields a timeout", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			time.Sleep(500 * time.Millisecond)
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		fetcher := polhttp.NewFetcher()
		_, err := fetcher.Fetch(ctx, srv.URL)

		var fetchErr *policyscan.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, policyscan.FetchTimeout, fetchErr.Kind)
	})

	t.Run("unreachable server is a transport error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
		url := srv.URL
		srv.Close()

		fetcher := polhttp.NewFetcher()
		_, err := fetcher.Fetch(context.Background(), url)

		var fetchErr *policyscan.FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, policyscan.FetchTransportError, fetchErr.Kind)
	})

	t.Run("invalid URL is a programmer error, not a fetch error", func(t *testing.T) {
		t.Parallel()

		fetcher := polhttp.NewFetcher()
		_, err := fetcher.Fetch(context.Background(), "http://bad url with spaces")

		require.Error(t, err)
		var fetchErr *policyscan.FetchError
		assert.False(t, errors.As(err, &fetchErr))
		assert.Equal(t, policyscan.EINVALID, policyscan.ErrorCode(err))
	})
}
