package slog_test

import (
	"bytes"
	"context"
	"errors"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/policyscan/mock"
	polslog "github.com/fwojciec/policyscan/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_Put(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		sink := polslog.NewSink(&mock.Sink{
			PutFn: func(_ context.Context, collection, item string, _ []byte, _ string) (string, error) {
				return collection + "/" + item, nil
			},
		}, logger)

		ref, err := sink.Put(context.Background(), "c", "item", []byte("x"), "text/plain")
		require.NoError(t, err)
		assert.Equal(t, "c/item", ref)
		assert.Contains(t, buf.String(), "sink put")
		assert.Contains(t, buf.String(), "item")
	})

	t.Run("logs failure and passes the error through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		sink := polslog.NewSink(&mock.Sink{
			PutFn: func(context.Context, string, string, []byte, string) (string, error) {
				return "", errors.New("storage unavailable")
			},
		}, logger)

		_, err := sink.Put(context.Background(), "c", "item", []byte("x"), "text/plain")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "sink put failed")
		assert.Contains(t, buf.String(), "storage unavailable")
	})
}
