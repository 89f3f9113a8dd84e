package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments prints help and errors", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := NewMain().Run(context.Background(), nil, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help flag succeeds", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := NewMain().Run(context.Background(), []string{"--help"}, &stdout, &stderr)

		assert.NoError(t, err)
	})

	t.Run("sections lists the embedded target set", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := NewMain().Run(context.Background(), []string{"sections"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Spam")
		assert.Contains(t, stdout.String(), "Misinformation")
		assert.Contains(t, stdout.String(), "transparency.meta.com")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		err := NewMain().Run(context.Background(), []string{"bogus"}, &stdout, &stderr)

		assert.Error(t, err)
	})
}
